package poker

import (
	"fmt"
	"slices"
	"strings"
)

// Rank is a card rank, Two (0) through Ace (12).
type Rank uint8

// Suit is a card suit.
type Suit uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// Card is a single playing card. The zero value is "no card".
type Card uint8

// NewCard builds a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(uint8(suit)*13 + uint8(rank) + 1)
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank((uint8(c) - 1) % 13)
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit((uint8(c) - 1) / 13)
}

// IsValid reports whether c is one of the 52 real cards.
func (c Card) IsValid() bool {
	return c >= 1 && c <= 52
}

// String renders the card as rank+suit, e.g. "As" or "Td".
func (c Card) String() string {
	if !c.IsValid() {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// ParseCard parses a two-character card such as "As" or "tc".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q: want 2 characters", s)
	}
	r := strings.IndexByte(rankChars, upper(s[0]))
	if r < 0 {
		return 0, fmt.Errorf("invalid rank %q in card %q", s[0], s)
	}
	su := strings.IndexByte(suitChars, lower(s[1]))
	if su < 0 {
		return 0, fmt.Errorf("invalid suit %q in card %q", s[1], s)
	}
	return NewCard(Rank(r), Suit(su)), nil
}

// ParseCards parses a run of cards like "AsKsQsJs", ignoring spaces.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards joins cards without separators, e.g. "AsKdQh".
func FormatCards(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}

// SortCards orders cards by descending rank, then descending suit.
func SortCards(cards []Card) {
	slices.SortFunc(cards, func(a, b Card) int {
		if a.Rank() != b.Rank() {
			return int(b.Rank()) - int(a.Rank())
		}
		return int(b.Suit()) - int(a.Suit())
	})
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
