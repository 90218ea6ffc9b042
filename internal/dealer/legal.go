package dealer

import "fmt"

// maxRaises is the per-street raise cap. Once more raises than this have been
// made, only an all-in raise remains, and only for a seat that cannot cover a
// full pot raise.
const maxRaises = 4

// LegalActions returns the action kinds open to the current actor. It never
// changes state.
func (d *Dealer) LegalActions() ([]ActionKind, error) {
	if !d.started {
		return nil, ErrHandNotStarted
	}
	if d.stage == Showdown {
		return nil, fmt.Errorf("%w: no actions at showdown", ErrHandConcluded)
	}

	p, _ := d.ledger.player(d.current)
	owed := d.tracker.callAmount(p.Seat)
	pot := d.ledger.pot

	if owed == 0 {
		if p.Chips <= pot {
			return []ActionKind{Check, BetAI}, nil
		}
		return []ActionKind{Check, Bet}, nil
	}

	actions := []ActionKind{Fold}
	if owed >= p.Chips {
		return append(actions, CallAI), nil
	}
	actions = append(actions, Call)

	if d.ledger.eligibleCount() <= 1 {
		return actions, nil
	}
	short := p.Chips < owed+pot
	switch {
	case d.tracker.raises(&d.history, d.stage) > maxRaises:
		if short {
			actions = append(actions, RaiseAI)
		}
	case short:
		actions = append(actions, RaiseAI)
	default:
		actions = append(actions, Raise)
	}
	return actions, nil
}
