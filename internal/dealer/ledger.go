package dealer

import (
	"sort"

	"github.com/lox/flopdealer/poker"
)

// Player is one seat at the table.
type Player struct {
	Seat   int
	Chips  int
	Folded bool
	AllIn  bool
	Hand   [4]poker.Card
}

// Eligible reports whether the player can still act: not folded, not all-in.
func (p Player) Eligible() bool {
	return !p.Folded && !p.AllIn
}

// ledger holds balances and the pot. Every move changes one balance and the
// pot by opposite amounts, so the total never drifts.
type ledger struct {
	players []*Player // acting order once the hand starts
	bySeat  map[int]*Player
	seats   []int // ascending, for turn scans
	pot     int
	total   int
}

func newLedger(players []Player) *ledger {
	l := &ledger{bySeat: make(map[int]*Player, len(players))}
	for _, p := range players {
		l.players = append(l.players, &p)
		l.bySeat[p.Seat] = &p
		l.seats = append(l.seats, p.Seat)
		l.total += p.Chips
	}
	sort.Ints(l.seats)
	return l
}

// rotate orders players so the seat after button acts first and the button
// acts last.
func (l *ledger) rotate(button int) {
	ordered := make([]*Player, 0, len(l.players))
	idx := sort.SearchInts(l.seats, button)
	for i := 1; i <= len(l.seats); i++ {
		ordered = append(ordered, l.bySeat[l.seats[(idx+i)%len(l.seats)]])
	}
	l.players = ordered
}

func (l *ledger) player(seat int) (*Player, bool) {
	p, ok := l.bySeat[seat]
	return p, ok
}

// collect moves amount from p into the pot.
func (l *ledger) collect(p *Player, amount int) {
	if amount < 0 || amount > p.Chips {
		violation("collect", "seat %d cannot put %d into the pot from %d", p.Seat, amount, p.Chips)
	}
	p.Chips -= amount
	l.pot += amount
}

// award moves amount from the pot to p.
func (l *ledger) award(p *Player, amount int) {
	if amount < 0 || amount > l.pot {
		violation("award", "cannot pay %d to seat %d from pot of %d", amount, p.Seat, l.pot)
	}
	p.Chips += amount
	l.pot -= amount
}

func (l *ledger) eligibleCount() int {
	n := 0
	for _, p := range l.players {
		if p.Eligible() {
			n++
		}
	}
	return n
}

// eligibleExcept lists eligible seats other than seat, in acting order.
func (l *ledger) eligibleExcept(seat int) []int {
	var seats []int
	for _, p := range l.players {
		if p.Seat != seat && p.Eligible() {
			seats = append(seats, p.Seat)
		}
	}
	return seats
}

// next returns the first eligible seat after from in ascending seat order,
// wrapping around.
func (l *ledger) next(from int) int {
	idx := sort.SearchInts(l.seats, from)
	for i := 1; i < len(l.seats); i++ {
		seat := l.seats[(idx+i)%len(l.seats)]
		if l.bySeat[seat].Eligible() {
			return seat
		}
	}
	violation("turn", "no eligible seat after %d", from)
	return 0
}

func (l *ledger) checkBalanced(op string) {
	sum := l.pot
	for _, p := range l.players {
		if p.Chips < 0 {
			violation(op, "seat %d has negative balance %d", p.Seat, p.Chips)
		}
		sum += p.Chips
	}
	if l.pot < 0 || sum != l.total {
		violation(op, "chips %d + pot %d != %d", sum-l.pot, l.pot, l.total)
	}
}
