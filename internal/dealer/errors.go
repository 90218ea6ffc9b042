package dealer

import (
	"errors"
	"fmt"
)

// Validation errors. Submit wraps these with the offending seat and values;
// match them with errors.Is.
var (
	ErrOutOfTurn         = errors.New("dealer: not this seat's turn")
	ErrHandConcluded     = errors.New("dealer: hand concluded")
	ErrMalformedAction   = errors.New("dealer: malformed action")
	ErrInsufficientChips = errors.New("dealer: insufficient chips")
	ErrIllegalAllIn      = errors.New("dealer: illegal all-in")
	ErrRaiseTooLarge     = errors.New("dealer: raise exceeds pot limit")
	ErrSeatNotFound      = errors.New("dealer: seat not found")
	ErrNoOutstandingBet  = errors.New("dealer: no outstanding bet")
)

// Lifecycle errors.
var (
	ErrInvalidSetup   = errors.New("dealer: invalid setup")
	ErrHandStarted    = errors.New("dealer: hand already started")
	ErrHandNotStarted = errors.New("dealer: hand not started")
)

// AccountingError reports a broken chip-accounting or turn-order invariant.
// It is never returned; the dealer panics with it because continuing would
// misattribute chips.
type AccountingError struct {
	Op     string
	Detail string
}

func (e *AccountingError) Error() string {
	return fmt.Sprintf("dealer: accounting invariant violated in %s: %s", e.Op, e.Detail)
}

func violation(op, format string, args ...any) {
	panic(&AccountingError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
