package dealer

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/flopdealer/poker"
)

// evenEvaluator gives every hand the same equity.
type evenEvaluator struct{}

func (evenEvaluator) Equity(hands [][4]poker.Card, _ [3]poker.Card) ([]float64, error) {
	out := make([]float64, len(hands))
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

// failingEvaluator always errors.
type failingEvaluator struct{}

func (failingEvaluator) Equity([][4]poker.Card, [3]poker.Card) ([]float64, error) {
	return nil, errors.New("evaluator offline")
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// newHand creates and starts a seed-123 hand with seats 1..n holding stacks.
func newHand(t *testing.T, stacks ...int) *Dealer {
	t.Helper()
	players := make([]Player, len(stacks))
	for i, chips := range stacks {
		players[i] = Player{Seat: i + 1, Chips: chips}
	}
	d, err := New(123, players, WithLogger(quietLogger()), WithEvaluator(evenEvaluator{}))
	require.NoError(t, err)
	require.NoError(t, d.StartHand())
	return d
}

func act(t *testing.T, d *Dealer, seat int, kind ActionKind, value int) {
	t.Helper()
	require.NoError(t, d.Submit(seat, kind, value), "seat %d %s %d", seat, kind, value)
}

func legal(t *testing.T, d *Dealer) []ActionKind {
	t.Helper()
	actions, err := d.LegalActions()
	require.NoError(t, err)
	return actions
}

func seats(d *Dealer) []int {
	var out []int
	for _, p := range d.Players() {
		out = append(out, p.Seat)
	}
	return out
}

func balances(d *Dealer) []int {
	var out []int
	for _, p := range d.Players() {
		out = append(out, p.Chips)
	}
	return out
}

func chipsOf(t *testing.T, d *Dealer, seat int) int {
	t.Helper()
	p, err := d.Player(seat)
	require.NoError(t, err)
	return p.Chips
}

func totalChips(d *Dealer) int {
	total := d.Pot()
	for _, p := range d.Players() {
		total += p.Chips
	}
	return total
}

func origins(bets []OutstandingBet) []int {
	out := make([]int, len(bets))
	for i, b := range bets {
		out[i] = b.Origin
	}
	return out
}
