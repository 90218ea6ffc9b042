// Package autoplay chooses actions for seats nobody is driving: scripted
// hands that stop early, and simulated hands.
package autoplay

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/flopdealer/internal/dealer"
)

// ErrUnknownPolicy is returned by New for an unrecognised policy name.
var ErrUnknownPolicy = errors.New("autoplay: unknown policy")

// maxSteps bounds Finish. The raise cap keeps real hands far below it.
const maxSteps = 1000

// State is what a policy sees of the seat to act.
type State struct {
	Seat  int
	Stage dealer.Stage
	Chips int
	Owed  int
	Pot   int
	Legal []dealer.ActionKind
}

// Can reports whether kind is legal.
func (s State) Can(kind dealer.ActionKind) bool {
	return slices.Contains(s.Legal, kind)
}

// MaxBet is the largest non-all-in opening bet: the pot, kept below the stack.
func (s State) MaxBet() int {
	return min(s.Pot, s.Chips-1)
}

// MaxRaise is the largest non-all-in raise over the call: a pot raise, kept
// below the stack.
func (s State) MaxRaise() int {
	return min(s.Owed+s.Pot, s.Chips-s.Owed-1)
}

// Decision is an action kind and its declared value.
type Decision struct {
	Kind  dealer.ActionKind
	Value int
}

func (d Decision) String() string {
	if d.Kind.HasValue() {
		return fmt.Sprintf("%s %d", d.Kind, d.Value)
	}
	return d.Kind.String()
}

// Policy picks one legal action.
type Policy interface {
	Decide(s State) Decision
}

// Names lists the policies New accepts.
var Names = []string{"passive", "aggressive", "random", "fold"}

// New returns the named policy. rng is only used by "random"; nil seeds one
// from zero.
func New(name string, rng *rand.Rand) (Policy, error) {
	switch strings.ToLower(name) {
	case "passive", "call":
		return Passive{}, nil
	case "aggressive", "maniac":
		return Aggressive{}, nil
	case "random", "rand":
		if rng == nil {
			rng = rand.New(rand.NewPCG(0, 0))
		}
		return &Random{rng: rng}, nil
	case "fold":
		return Fold{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPolicy, name, strings.Join(Names, ", "))
	}
}

// Observe builds the State for the seat to act.
func Observe(d *dealer.Dealer) (State, error) {
	legal, err := d.LegalActions()
	if err != nil {
		return State{}, err
	}
	p, err := d.Player(d.Current())
	if err != nil {
		return State{}, err
	}
	owed, err := d.CallAmount(p.Seat)
	if err != nil {
		return State{}, err
	}
	return State{
		Seat:  p.Seat,
		Stage: d.Stage(),
		Chips: p.Chips,
		Owed:  owed,
		Pot:   d.Pot(),
		Legal: legal,
	}, nil
}

// Step asks policy for the current seat's action and submits it.
func Step(d *dealer.Dealer, policy Policy) (int, Decision, error) {
	s, err := Observe(d)
	if err != nil {
		return 0, Decision{}, err
	}
	dec := policy.Decide(s)
	if err := d.Submit(s.Seat, dec.Kind, dec.Value); err != nil {
		return s.Seat, dec, fmt.Errorf("autoplay: seat %d %s: %w", s.Seat, dec, err)
	}
	return s.Seat, dec, nil
}

// Finish plays the hand out to showdown and returns how many actions it
// submitted.
func Finish(d *dealer.Dealer, policy Policy, logger *log.Logger) (int, error) {
	steps := 0
	for d.Stage() != dealer.Showdown {
		if steps >= maxSteps {
			return steps, fmt.Errorf("autoplay: no showdown after %d actions", steps)
		}
		seat, dec, err := Step(d, policy)
		if err != nil {
			return steps, err
		}
		steps++
		if logger != nil {
			logger.Debug("autoplay", "seat", seat, "action", dec)
		}
	}
	return steps, nil
}
