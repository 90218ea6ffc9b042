package equity

import (
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/lox/flopdealer/poker"
)

// holeCombos lists the six ways to choose two of four hole cards.
var holeCombos = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// boardCombos lists the ten ways to choose three of five board cards.
var boardCombos = [10][3]int{
	{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4},
	{0, 3, 4}, {1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
}

// toScorer converts a card to the scoring library's representation.
func toScorer(c poker.Card) (ph.Card, error) {
	if !c.IsValid() {
		return 0, fmt.Errorf("equity: invalid card %d", c)
	}
	var suit ph.Suit
	switch c.Suit() {
	case poker.Clubs:
		suit = ph.Club
	case poker.Diamonds:
		suit = ph.Diamond
	case poker.Hearts:
		suit = ph.Heart
	default:
		suit = ph.Spade
	}
	rank := ph.Rank(c.Rank() + 2)
	if c.Rank() == poker.Ace {
		rank = 1
	}
	return ph.MakeCard(suit, rank)
}

func convertHand(hand [4]poker.Card) ([4]ph.Card, error) {
	var out [4]ph.Card
	for i, c := range hand {
		pc, err := toScorer(c)
		if err != nil {
			return out, err
		}
		out[i] = pc
	}
	return out, nil
}

// BestScore returns the best five-card score using exactly two hole cards and
// three cards from a three-card board. Higher is stronger.
func BestScore(hand [4]poker.Card, board [3]poker.Card) (int16, error) {
	h, err := convertHand(hand)
	if err != nil {
		return 0, err
	}
	var b [3]ph.Card
	for i, c := range board {
		if b[i], err = toScorer(c); err != nil {
			return 0, err
		}
	}
	return bestOnFlop(&h, &b), nil
}

// Describe names the best flop hand, e.g. "pair of kings".
func Describe(hand [4]poker.Card, board [3]poker.Card) (string, error) {
	h, err := convertHand(hand)
	if err != nil {
		return "", err
	}
	var b [3]ph.Card
	for i, c := range board {
		if b[i], err = toScorer(c); err != nil {
			return "", err
		}
	}
	var best [5]ph.Card
	bestScore := int16(-1)
	for _, hc := range holeCombos {
		five := [5]ph.Card{h[hc[0]], h[hc[1]], b[0], b[1], b[2]}
		if s := ph.Eval5(&five); s > bestScore {
			bestScore = s
			best = five
		}
	}
	return ph.Describe(best[:])
}

func bestOnFlop(h *[4]ph.Card, b *[3]ph.Card) int16 {
	best := int16(-1)
	for _, hc := range holeCombos {
		five := [5]ph.Card{h[hc[0]], h[hc[1]], b[0], b[1], b[2]}
		if s := ph.Eval5(&five); s > best {
			best = s
		}
	}
	return best
}

func bestOnRiver(h *[4]ph.Card, b *[5]ph.Card) int16 {
	best := int16(-1)
	for _, hc := range holeCombos {
		for _, bc := range boardCombos {
			five := [5]ph.Card{h[hc[0]], h[hc[1]], b[bc[0]], b[bc[1]], b[bc[2]]}
			if s := ph.Eval5(&five); s > best {
				best = s
			}
		}
	}
	return best
}
