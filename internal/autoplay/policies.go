package autoplay

import (
	rand "math/rand/v2"

	"github.com/lox/flopdealer/internal/dealer"
)

// Passive checks when it can and otherwise calls.
type Passive struct{}

func (Passive) Decide(s State) Decision {
	for _, kind := range []dealer.ActionKind{dealer.Check, dealer.Call, dealer.CallAI} {
		if s.Can(kind) {
			return Decision{Kind: kind}
		}
	}
	return Decision{Kind: dealer.Fold}
}

// Aggressive bets and raises the pot whenever it may, shoving when the pot
// is out of reach.
type Aggressive struct{}

func (Aggressive) Decide(s State) Decision {
	switch {
	case s.Can(dealer.Raise):
		return Decision{Kind: dealer.Raise, Value: s.MaxRaise()}
	case s.Can(dealer.RaiseAI):
		return Decision{Kind: dealer.RaiseAI, Value: s.Chips - s.Owed}
	case s.Can(dealer.Bet):
		return Decision{Kind: dealer.Bet, Value: s.MaxBet()}
	case s.Can(dealer.BetAI):
		return Decision{Kind: dealer.BetAI, Value: s.Chips}
	}
	return Passive{}.Decide(s)
}

// Fold folds to any bet and checks otherwise.
type Fold struct{}

func (Fold) Decide(s State) Decision {
	if s.Can(dealer.Check) {
		return Decision{Kind: dealer.Check}
	}
	return Decision{Kind: dealer.Fold}
}

// Random picks a uniform legal action and a uniform valid amount.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random policy drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Decide(s State) Decision {
	kind := s.Legal[r.rng.IntN(len(s.Legal))]
	switch kind {
	case dealer.Bet:
		return Decision{Kind: kind, Value: 1 + r.rng.IntN(s.MaxBet())}
	case dealer.BetAI:
		return Decision{Kind: kind, Value: s.Chips}
	case dealer.Raise:
		return Decision{Kind: kind, Value: 1 + r.rng.IntN(s.MaxRaise())}
	case dealer.RaiseAI:
		return Decision{Kind: kind, Value: s.Chips - s.Owed}
	default:
		return Decision{Kind: kind}
	}
}
