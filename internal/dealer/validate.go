package dealer

import "fmt"

// validate checks an action against the current state without touching it.
// It returns the acting player and the amount that player owes.
func (d *Dealer) validate(seat int, kind ActionKind, value int) (*Player, int, error) {
	if !d.started {
		return nil, 0, ErrHandNotStarted
	}
	if d.stage == Showdown {
		return nil, 0, fmt.Errorf("%w: no actions accepted at showdown", ErrHandConcluded)
	}
	p, ok := d.ledger.player(seat)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrSeatNotFound, seat)
	}
	if seat != d.current {
		return nil, 0, fmt.Errorf("%w: seat %d acted, seat %d to act", ErrOutOfTurn, seat, d.current)
	}
	if value < 0 {
		return nil, 0, fmt.Errorf("%w: negative value %d", ErrMalformedAction, value)
	}
	if kind.HasValue() && value == 0 {
		return nil, 0, fmt.Errorf("%w: %s needs an amount", ErrMalformedAction, kind)
	}
	if !kind.HasValue() && value != 0 {
		return nil, 0, fmt.Errorf("%w: %s takes no amount, got %d", ErrMalformedAction, kind, value)
	}

	owed := d.tracker.callAmount(seat)
	chips := p.Chips
	pot := d.ledger.pot

	switch kind {
	case Fold:
		if owed == 0 {
			return nil, 0, fmt.Errorf("%w: nothing to fold to, check instead", ErrNoOutstandingBet)
		}
	case Check:
		if owed > 0 {
			return nil, 0, fmt.Errorf("%w: cannot check facing %d", ErrMalformedAction, owed)
		}
	case Call:
		switch {
		case owed == 0:
			return nil, 0, fmt.Errorf("%w: nothing to call", ErrNoOutstandingBet)
		case owed > chips:
			return nil, 0, fmt.Errorf("%w: call of %d with %d chips", ErrInsufficientChips, owed, chips)
		case owed == chips:
			return nil, 0, fmt.Errorf("%w: call of %d uses every chip, use %s", ErrIllegalAllIn, owed, CallAI)
		}
	case CallAI:
		switch {
		case owed == 0:
			return nil, 0, fmt.Errorf("%w: nothing to call", ErrNoOutstandingBet)
		case owed < chips:
			return nil, 0, fmt.Errorf("%w: call of %d leaves chips behind, use %s", ErrIllegalAllIn, owed, Call)
		}
	case Bet:
		switch {
		case owed > 0:
			return nil, 0, fmt.Errorf("%w: cannot bet facing %d", ErrMalformedAction, owed)
		case value > chips:
			return nil, 0, fmt.Errorf("%w: bet of %d with %d chips", ErrInsufficientChips, value, chips)
		case value == chips:
			return nil, 0, fmt.Errorf("%w: bet of %d uses every chip, use %s", ErrIllegalAllIn, value, BetAI)
		}
	case BetAI:
		switch {
		case owed > 0:
			return nil, 0, fmt.Errorf("%w: cannot bet facing %d", ErrMalformedAction, owed)
		case value != chips:
			return nil, 0, fmt.Errorf("%w: all-in bet of %d with %d chips", ErrIllegalAllIn, value, chips)
		}
	case Raise:
		switch {
		case owed == 0:
			return nil, 0, fmt.Errorf("%w: nothing to raise", ErrNoOutstandingBet)
		case owed+value > chips:
			return nil, 0, fmt.Errorf("%w: raise of %d over %d with %d chips", ErrInsufficientChips, value, owed, chips)
		case owed+value == chips:
			return nil, 0, fmt.Errorf("%w: raise of %d uses every chip, use %s", ErrIllegalAllIn, value, RaiseAI)
		case value > owed+pot:
			return nil, 0, fmt.Errorf("%w: raise of %d, limit %d", ErrRaiseTooLarge, value, owed+pot)
		}
	case RaiseAI:
		switch {
		case owed == 0:
			return nil, 0, fmt.Errorf("%w: nothing to raise", ErrNoOutstandingBet)
		case owed+value != chips:
			return nil, 0, fmt.Errorf("%w: all-in raise of %d over %d with %d chips", ErrIllegalAllIn, value, owed, chips)
		case value > owed+pot:
			return nil, 0, fmt.Errorf("%w: raise of %d, limit %d", ErrRaiseTooLarge, value, owed+pot)
		}
	default:
		return nil, 0, fmt.Errorf("%w: unknown action kind %d", ErrMalformedAction, int(kind))
	}
	return p, owed, nil
}
