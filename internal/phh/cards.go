package phh

import (
	"fmt"

	"github.com/lox/flopdealer/poker"
)

// DealHole renders the hole-card deal for player index i (zero-based).
func DealHole(i int, hand [4]poker.Card) string {
	return fmt.Sprintf("d dh %s %s", player(i), poker.FormatCards(hand[:]))
}

// DealBoard renders the flop.
func DealBoard(board [3]poker.Card) string {
	return "d db " + poker.FormatCards(board[:])
}

func player(i int) string {
	return fmt.Sprintf("p%d", i+1)
}
