package dealer

import (
	"fmt"
	"strings"
)

// Stage is the betting street.
type Stage int

const (
	PreFlop Stage = iota
	Flop
	Showdown
)

func (s Stage) String() string {
	switch s {
	case PreFlop:
		return "preflop"
	case Flop:
		return "flop"
	case Showdown:
		return "showdown"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// ActionKind is the type of a submitted action.
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	CallAI
	Bet
	BetAI
	Raise
	RaiseAI
)

var kindNames = [...]string{"fold", "check", "call", "callai", "bet", "betai", "raise", "raiseai"}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseActionKind parses the lowercase name of an action kind. Underscores
// and hyphens are ignored, so "call_ai" and "raise-ai" work too.
func ParseActionKind(s string) (ActionKind, error) {
	norm := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(strings.TrimSpace(s)))
	for i, name := range kindNames {
		if name == norm {
			return ActionKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown action kind %q", ErrMalformedAction, s)
}

// AllIn reports whether the kind commits the whole balance.
func (k ActionKind) AllIn() bool {
	return k == CallAI || k == BetAI || k == RaiseAI
}

// HasValue reports whether the kind carries a declared amount. These are also
// the kinds that open a new outstanding bet.
func (k ActionKind) HasValue() bool {
	return k == Bet || k == BetAI || k == Raise || k == RaiseAI
}

func (k ActionKind) isRaise() bool {
	return k == Raise || k == RaiseAI
}

// ActionRecord is one applied action. Committed is the number of chips the
// action moved into the pot, including any owed amount it paid.
type ActionRecord struct {
	Seat      int
	Kind      ActionKind
	Value     int
	Committed int
}

func (r ActionRecord) String() string {
	if r.Kind.HasValue() {
		return fmt.Sprintf("seat %d %s %d", r.Seat, r.Kind, r.Value)
	}
	return fmt.Sprintf("seat %d %s", r.Seat, r.Kind)
}

// SeatBalance is a seat's balance at hand start.
type SeatBalance struct {
	Seat  int
	Chips int
}

// History is the append-only action log. PreFlop and Flop hold indexes into
// Actions for each street. StartingBalances is in acting order: index 0 is
// the small blind, index 1 the big blind.
type History struct {
	StartingBalances []SeatBalance
	Actions          []ActionRecord
	PreFlop          []int
	Flop             []int
}

func (h *History) append(stage Stage, rec ActionRecord) int {
	idx := len(h.Actions)
	h.Actions = append(h.Actions, rec)
	switch stage {
	case PreFlop:
		h.PreFlop = append(h.PreFlop, idx)
	case Flop:
		h.Flop = append(h.Flop, idx)
	default:
		violation("history", "action %v recorded at %s", rec, stage)
	}
	return idx
}

// Street returns the actions recorded on stage, in order.
func (h History) Street(stage Stage) []ActionRecord {
	var idx []int
	switch stage {
	case PreFlop:
		idx = h.PreFlop
	case Flop:
		idx = h.Flop
	}
	out := make([]ActionRecord, 0, len(idx))
	for _, i := range idx {
		out = append(out, h.Actions[i])
	}
	return out
}

// StageOf reports which street the action at index i was recorded on.
func (h History) StageOf(i int) Stage {
	for _, j := range h.Flop {
		if j == i {
			return Flop
		}
	}
	return PreFlop
}

func (h History) clone() History {
	return History{
		StartingBalances: append([]SeatBalance(nil), h.StartingBalances...),
		Actions:          append([]ActionRecord(nil), h.Actions...),
		PreFlop:          append([]int(nil), h.PreFlop...),
		Flop:             append([]int(nil), h.Flop...),
	}
}
