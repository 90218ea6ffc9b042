package dealer

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"
)

func TestSubmitRejectsFacingBlinds(t *testing.T) {
	t.Parallel()
	// Seat 1 owes 2 with 15 chips and a pot of 3.
	tests := []struct {
		name  string
		seat  int
		kind  ActionKind
		value int
		want  error
	}{
		{"out of turn", 2, Call, 0, ErrOutOfTurn},
		{"unknown seat", 9, Call, 0, ErrSeatNotFound},
		{"check while owing", 1, Check, 0, ErrMalformedAction},
		{"call with amount", 1, Call, 3, ErrMalformedAction},
		{"raise without amount", 1, Raise, 0, ErrMalformedAction},
		{"negative raise", 1, Raise, -1, ErrMalformedAction},
		{"raise over pot", 1, Raise, 6, ErrRaiseTooLarge},
		{"raise to every chip", 1, Raise, 13, ErrIllegalAllIn},
		{"raise past stack", 1, Raise, 14, ErrInsufficientChips},
		{"all-in raise short of stack", 1, RaiseAI, 5, ErrIllegalAllIn},
		{"all-in call with chips behind", 1, CallAI, 0, ErrIllegalAllIn},
		{"bet while owing", 1, Bet, 5, ErrMalformedAction},
		{"all-in bet while owing", 1, BetAI, 15, ErrMalformedAction},
		{"unknown kind", 1, ActionKind(42), 0, ErrMalformedAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := newHand(t, 15, 12, 10)
			before := d.History()
			pot := d.Pot()

			err := d.Submit(tt.seat, tt.kind, tt.value)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Submit() error = %v, want %v", err, tt.want)
			}

			if !reflect.DeepEqual(d.History(), before) {
				t.Error("rejected action changed the history")
			}
			if d.Pot() != pot {
				t.Errorf("pot = %d, want %d", d.Pot(), pot)
			}
			if d.Current() != 1 {
				t.Errorf("current = %d, want 1", d.Current())
			}
			if got := balances(d); !slices.Equal(got, []int{11, 8, 15}) {
				t.Errorf("balances = %v, want [11 8 15]", got)
			}
		})
	}
}

func TestSubmitRejectsOnBigBlindOption(t *testing.T) {
	t.Parallel()
	// Seat 3 holds the option with 8 chips, nothing owed and a pot of 6.
	tests := []struct {
		name  string
		kind  ActionKind
		value int
		want  error
	}{
		{"fold with nothing owed", Fold, 0, ErrNoOutstandingBet},
		{"call with nothing owed", Call, 0, ErrNoOutstandingBet},
		{"raise with nothing owed", Raise, 1, ErrNoOutstandingBet},
		{"bet every chip", Bet, 8, ErrIllegalAllIn},
		{"bet past stack", Bet, 9, ErrInsufficientChips},
		{"all-in bet short of stack", BetAI, 7, ErrIllegalAllIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := newHand(t, 15, 12, 10)
			act(t, d, 1, Call, 0)
			act(t, d, 2, Call, 0)
			if d.Current() != 3 {
				t.Fatalf("current = %d, want the big blind", d.Current())
			}

			err := d.Submit(3, tt.kind, tt.value)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Submit() error = %v, want %v", err, tt.want)
			}
			if d.Pot() != 6 || d.Current() != 3 || d.Stage() != PreFlop {
				t.Errorf("pot %d current %d stage %s after a rejected action", d.Pot(), d.Current(), d.Stage())
			}
		})
	}
}

func TestAccountingErrorMessage(t *testing.T) {
	t.Parallel()
	err := &AccountingError{Op: "settle", Detail: "3 chips left in the pot"}
	if !strings.Contains(err.Error(), "settle") || !strings.Contains(err.Error(), "3 chips left in the pot") {
		t.Fatalf("unexpected message %q", err.Error())
	}

	defer func() {
		got, ok := recover().(*AccountingError)
		if !ok {
			t.Fatal("violation did not panic with an *AccountingError")
		}
		if got.Error() != err.Error() {
			t.Errorf("panic message %q, want %q", got.Error(), err.Error())
		}
	}()
	violation("settle", "%d chips left in the pot", 3)
}

func TestParseActionKind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want ActionKind
	}{
		{"fold", Fold},
		{"CHECK", Check},
		{"call_ai", CallAI},
		{"bet-ai", BetAI},
		{"raiseai", RaiseAI},
	}
	for _, tt := range tests {
		got, err := ParseActionKind(tt.in)
		if err != nil {
			t.Fatalf("ParseActionKind(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseActionKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseActionKind("shove"); !errors.Is(err, ErrMalformedAction) {
		t.Errorf("ParseActionKind(shove) error = %v", err)
	}
}
