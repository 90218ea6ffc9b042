package phh

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lox/flopdealer/internal/dealer"
	"github.com/lox/flopdealer/internal/fileutil"
)

var errNilHand = errors.New("phh: hand history is nil")

// Encode writes the hand history to w as PHH TOML.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return errNilHand
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a PHH TOML document.
func Decode(r io.Reader) (*HandHistory, error) {
	var hand HandHistory
	if _, err := toml.NewDecoder(r).Decode(&hand); err != nil {
		return nil, fmt.Errorf("phh: decode: %w", err)
	}
	return &hand, nil
}

// WriteFile encodes hand and replaces path with it atomically.
func WriteFile(path string, hand *HandHistory) error {
	if hand == nil {
		return errNilHand
	}
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, hand)
	})
	if err != nil {
		return fmt.Errorf("phh: write %s: %w", path, err)
	}
	return nil
}

// FormatAction renders one recorded action for player index i. streetTotal is
// what the player has put in on the current street, including this action.
// Check and call both render as "cc"; every bet and raise renders as "cbr" to
// the street total. Blind posts are reported as not emitted.
func FormatAction(i int, rec dealer.ActionRecord, streetTotal int, blind bool) (string, bool) {
	if blind {
		return "", false
	}
	switch rec.Kind {
	case dealer.Fold:
		return player(i) + " f", true
	case dealer.Check, dealer.Call, dealer.CallAI:
		return player(i) + " cc", true
	case dealer.Bet, dealer.BetAI, dealer.Raise, dealer.RaiseAI:
		return fmt.Sprintf("%s cbr %d", player(i), streetTotal), true
	default:
		return fmt.Sprintf("# %s %s %d", player(i), rec.Kind, rec.Value), true
	}
}

