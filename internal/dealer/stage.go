package dealer

import "github.com/lox/flopdealer/poker"

// advance moves the turn or the stage after an applied action.
func (d *Dealer) advance(last ActionRecord) {
	if len(d.tracker.open) > 0 {
		d.current = d.ledger.next(d.current)
		return
	}

	eligible := d.ledger.eligibleCount()
	switch d.stage {
	case PreFlop:
		bb := d.history.StartingBalances[1].Seat
		if d.bigBlindOption(last, bb, eligible) {
			d.current = bb
			d.logger.Debug("big blind option", "seat", bb)
			return
		}
		d.dealFlop()
		if eligible <= 1 {
			d.setStage(Showdown)
			return
		}
		d.setStage(Flop)
		d.current = d.ledger.next(d.button)

	case Flop:
		if eligible <= 1 || last.Kind != Check {
			d.setStage(Showdown)
			return
		}
		checks := 0
		for _, rec := range d.history.Street(Flop) {
			if rec.Kind == Check {
				checks++
			}
		}
		switch {
		case checks > eligible:
			violation("stage", "%d checks on the flop with %d eligible seats", checks, eligible)
		case checks == eligible:
			d.setStage(Showdown)
		default:
			d.current = d.ledger.next(d.current)
		}

	default:
		violation("stage", "advance called at %s", d.stage)
	}
}

// bigBlindOption reports whether pre-flop should stay open for the big blind:
// only the two blind bets were ever matched, the big blind has not checked it
// down, and the big blind can still act.
func (d *Dealer) bigBlindOption(last ActionRecord, bb, eligible int) bool {
	if len(d.tracker.finalized) != 2 || eligible <= 1 {
		return false
	}
	if last.Kind == Check && last.Seat == bb {
		return false
	}
	p, _ := d.ledger.player(bb)
	return p.Eligible()
}

func (d *Dealer) dealFlop() {
	board, err := d.deck.Draw3()
	if err != nil {
		violation("flop", "%v", err)
	}
	d.board = board
	d.boardDealt = true
	d.logger.Debug("flop dealt", "board", poker.FormatCards(board[:]))
}

func (d *Dealer) setStage(s Stage) {
	d.logger.Debug("stage", "from", d.stage, "to", s, "pot", d.ledger.pot)
	d.stage = s
}
