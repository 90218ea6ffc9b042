package dealer

import (
	"fmt"
	"slices"

	"github.com/lox/flopdealer/internal/equity"
	"github.com/lox/flopdealer/poker"
)

// Refund is chips returned to the last aggressor because nobody matched the
// top of their bet.
type Refund struct {
	Seat   int
	Amount int
	Origin int
}

// PotAward is how one side pot was split. Equity holds integer percentages
// aligned with Eligible.
type PotAward struct {
	SidePot
	Eligible []int
	Equity   []int
	Shares   map[int]int
}

// Settlement is the outcome of Settle.
type Settlement struct {
	Refund      *Refund
	Pots        []PotAward
	Payouts     map[int]int // pot winnings per seat, refund excluded
	Uncontested bool
}

// Net returns each seat's finishing balance minus its starting balance.
func (d *Dealer) Net() map[int]int {
	out := make(map[int]int, len(d.history.StartingBalances))
	for _, sb := range d.history.StartingBalances {
		p, _ := d.ledger.player(sb.Seat)
		out[sb.Seat] = p.Chips - sb.Chips
	}
	return out
}

// Settle distributes the pot. It is valid once, at showdown. Settlement works
// on copies of the finalized bets; the bets and history stay as recorded.
//
// An evaluator error leaves every balance untouched.
func (d *Dealer) Settle() (*Settlement, error) {
	switch {
	case !d.started:
		return nil, ErrHandNotStarted
	case d.settled:
		return nil, fmt.Errorf("%w: already settled", ErrHandConcluded)
	case d.stage != Showdown:
		return nil, fmt.Errorf("%w: cannot settle at %s", ErrHandConcluded, d.stage)
	}

	bets := cloneBets(d.tracker.finalized)
	bets, refund := refundExcess(bets)

	pot := d.ledger.pot
	if refund != nil {
		pot -= refund.Amount
	}

	var live []int
	for _, p := range d.ledger.players {
		if !p.Folded {
			live = append(live, p.Seat)
		}
	}

	res := &Settlement{Refund: refund, Payouts: make(map[int]int)}
	switch len(live) {
	case 0:
		violation("settle", "every seat folded")
	case 1:
		res.Uncontested = true
		res.Payouts[live[0]] = pot
	default:
		pots := BuildSidePots(bets)
		total := 0
		for _, sp := range pots {
			total += sp.Value
		}
		if total != pot {
			violation("settle", "side pots hold %d, pot holds %d", total, pot)
		}

		shares := make(map[string][]int)
		for _, sp := range pots {
			award, err := d.split(sp, live, shares)
			if err != nil {
				return nil, fmt.Errorf("dealer: settle: %w", err)
			}
			for seat, chips := range award.Shares {
				res.Payouts[seat] += chips
			}
			res.Pots = append(res.Pots, award)
		}
	}

	if refund != nil {
		p, _ := d.ledger.player(refund.Seat)
		d.ledger.award(p, refund.Amount)
	}
	for _, p := range d.ledger.players {
		if chips := res.Payouts[p.Seat]; chips > 0 {
			d.ledger.award(p, chips)
		}
	}
	if d.ledger.pot != 0 {
		violation("settle", "%d chips left in the pot", d.ledger.pot)
	}
	d.ledger.checkBalanced("settle")
	d.settled = true

	d.logger.Info("hand settled", "payouts", res.Payouts, "refund", refund != nil, "pots", len(res.Pots))
	return res, nil
}

// refundExcess returns the unmatched top of the last finalized bet to its
// bettor when no other seat paid it in full. With no partial payers the whole
// bet goes back; otherwise the bet drops to the largest partial and those
// partial payers count as full payers.
func refundExcess(bets []*OutstandingBet) ([]*OutstandingBet, *Refund) {
	if len(bets) == 0 {
		return bets, nil
	}
	last := bets[len(bets)-1]
	if len(last.Paid) > 0 {
		return bets, nil
	}
	if len(last.Partials) == 0 {
		return bets[:len(bets)-1], &Refund{Seat: last.Bettor, Amount: last.Value, Origin: last.Origin}
	}

	top := last.MaxPartial()
	refund := &Refund{Seat: last.Bettor, Amount: last.Value - top, Origin: last.Origin}
	last.Value = top
	kept := last.Partials[:0]
	for _, pp := range last.Partials {
		if pp.Amount == top {
			last.Paid = append(last.Paid, pp.Seat)
		} else {
			kept = append(kept, pp)
		}
	}
	last.Partials = kept
	slices.Sort(last.Paid)
	return bets, refund
}

// split awards one side pot by equity. Eligible seats are the pot's
// contributors still in the hand, or every live seat when none of them are.
// Chips lost to rounding go to the first eligible seat in acting order.
func (d *Dealer) split(sp SidePot, live []int, cache map[string][]int) (PotAward, error) {
	var eligible []int
	for _, seat := range live {
		if slices.Contains(sp.Contributors, seat) {
			eligible = append(eligible, seat)
		}
	}
	if len(eligible) == 0 {
		eligible = slices.Clone(live)
	}

	key := PotKey(eligible)
	pct, ok := cache[key]
	if !ok {
		var err error
		if pct, err = d.equities(eligible); err != nil {
			return PotAward{}, err
		}
		cache[key] = pct
	}

	award := PotAward{SidePot: sp, Eligible: eligible, Equity: pct, Shares: make(map[int]int, len(eligible))}
	paid := 0
	for i, seat := range eligible {
		chips := pct[i] * sp.Value / 100
		award.Shares[seat] = chips
		paid += chips
	}
	award.Shares[eligible[0]] += sp.Value - paid
	return award, nil
}

func (d *Dealer) equities(seats []int) ([]int, error) {
	if len(seats) == 1 {
		return []int{100}, nil
	}
	if !d.boardDealt {
		violation("settle", "contested showdown without a board")
	}
	hands := make([][4]poker.Card, len(seats))
	for i, seat := range seats {
		p, _ := d.ledger.player(seat)
		hands[i] = p.Hand
	}
	raw, err := d.evaluator.Equity(hands, d.board)
	if err != nil {
		return nil, fmt.Errorf("equity for seats %v: %w", seats, err)
	}
	if len(raw) != len(seats) {
		return nil, fmt.Errorf("equity for seats %v: got %d results", seats, len(raw))
	}
	return equity.Normalize(raw), nil
}
