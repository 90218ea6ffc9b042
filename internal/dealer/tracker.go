package dealer

import (
	"slices"
	"sort"
)

// PartialPayment records a seat that went all-in short of a bet's value.
type PartialPayment struct {
	Seat   int
	Amount int
}

// OutstandingBet is a bet or raise and the seats that owe it.
//
// Owers is fixed at creation. Paid, Unpaid, the partial payers and Forfeited
// (seats that folded while owing, or were already emptied by older bets)
// always partition Owers, and Unpaid only shrinks. The bet is finalized once
// Unpaid is empty.
type OutstandingBet struct {
	Origin    int // index into History.Actions
	Bettor    int
	Value     int
	Owers     []int
	Paid      []int
	Unpaid    []int
	Partials  []PartialPayment
	Forfeited []int
}

// Owes reports whether seat still owes this bet.
func (b *OutstandingBet) Owes(seat int) bool {
	return slices.Contains(b.Unpaid, seat)
}

// MaxPartial returns the largest partial payment, or 0.
func (b *OutstandingBet) MaxPartial() int {
	m := 0
	for _, pp := range b.Partials {
		m = max(m, pp.Amount)
	}
	return m
}

// Partitioned reports whether Paid, Unpaid, partial payers and Forfeited are
// disjoint and together equal Owers.
func (b *OutstandingBet) Partitioned() bool {
	seen := make(map[int]int, len(b.Owers))
	for _, s := range b.Paid {
		seen[s]++
	}
	for _, s := range b.Unpaid {
		seen[s]++
	}
	for _, pp := range b.Partials {
		seen[pp.Seat]++
	}
	for _, s := range b.Forfeited {
		seen[s]++
	}
	if len(seen) != len(b.Owers) {
		return false
	}
	for _, s := range b.Owers {
		if seen[s] != 1 {
			return false
		}
	}
	return true
}

func (b *OutstandingBet) clone() *OutstandingBet {
	return &OutstandingBet{
		Origin:    b.Origin,
		Bettor:    b.Bettor,
		Value:     b.Value,
		Owers:     slices.Clone(b.Owers),
		Paid:      slices.Clone(b.Paid),
		Unpaid:    slices.Clone(b.Unpaid),
		Partials:  slices.Clone(b.Partials),
		Forfeited: slices.Clone(b.Forfeited),
	}
}

// tracker holds open bets oldest first, and the finalized ones in the order
// they were fully matched.
type tracker struct {
	open      []*OutstandingBet
	finalized []*OutstandingBet
}

// callAmount is the total of every open bet seat still owes.
func (t *tracker) callAmount(seat int) int {
	total := 0
	for _, b := range t.open {
		if b.Owes(seat) {
			total += b.Value
		}
	}
	return total
}

func (t *tracker) place(origin, bettor, value int, owers []int) {
	t.open = append(t.open, &OutstandingBet{
		Origin: origin,
		Bettor: bettor,
		Value:  value,
		Owers:  slices.Clone(owers),
		Unpaid: slices.Clone(owers),
	})
}

// pay settles what seat owes, oldest bet first, from balance. A bet the
// remaining balance cannot cover gets a partial payment instead. It returns
// the chips to move into the pot.
func (t *tracker) pay(seat, balance int) int {
	collected := 0
	for _, b := range t.open {
		if !b.Owes(seat) {
			continue
		}
		b.Unpaid = slices.DeleteFunc(b.Unpaid, func(s int) bool { return s == seat })
		if balance >= b.Value {
			balance -= b.Value
			collected += b.Value
			b.Paid = append(b.Paid, seat)
			continue
		}
		if balance > 0 {
			b.Partials = append(b.Partials, PartialPayment{Seat: seat, Amount: balance})
			collected += balance
			balance = 0
		} else {
			// Nothing left to contribute; the seat drops out of this bet.
			b.Forfeited = append(b.Forfeited, seat)
		}
	}
	return collected
}

// forfeit removes a folding seat from every open bet.
func (t *tracker) forfeit(seat int) {
	for _, b := range t.open {
		if b.Owes(seat) {
			b.Unpaid = slices.DeleteFunc(b.Unpaid, func(s int) bool { return s == seat })
			b.Forfeited = append(b.Forfeited, seat)
		}
	}
}

// sweep moves every fully matched bet to the finalized list, keeping order.
func (t *tracker) sweep() []int {
	var done []int
	remaining := t.open[:0]
	for _, b := range t.open {
		if !b.Partitioned() {
			violation("tracker", "bet at action %d no longer partitions its owers", b.Origin)
		}
		if len(b.Unpaid) > 0 {
			remaining = append(remaining, b)
			continue
		}
		sort.Ints(b.Paid)
		t.finalized = append(t.finalized, b)
		done = append(done, b.Origin)
	}
	clear(t.open[len(remaining):])
	t.open = remaining
	return done
}

// raises counts open and finalized raises; on the flop, pre-flop raises are
// left out.
func (t *tracker) raises(h *History, stage Stage) int {
	count := func(bets []*OutstandingBet) int {
		n := 0
		for _, b := range bets {
			if !h.Actions[b.Origin].Kind.isRaise() {
				continue
			}
			if stage == Flop && h.StageOf(b.Origin) == PreFlop {
				continue
			}
			n++
		}
		return n
	}
	return count(t.open) + count(t.finalized)
}

func cloneBets(bets []*OutstandingBet) []*OutstandingBet {
	out := make([]*OutstandingBet, len(bets))
	for i, b := range bets {
		out[i] = b.clone()
	}
	return out
}
