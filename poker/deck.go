package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrDeckExhausted is returned when a draw asks for more cards than remain.
var ErrDeckExhausted = errors.New("poker: not enough cards in deck")

const goldenRatio64 = 0x9e3779b97f4a7c15

// Deck is a seeded, deterministically shuffled 52-card deck.
type Deck struct {
	cards [52]Card
	next  int
	seed  uint64
}

// NewDeck creates a deck shuffled from seed. The same seed always yields the
// same card order.
func NewDeck(seed uint64) *Deck {
	d := &Deck{seed: seed}
	d.Shuffle()
	return d
}

// NewRand returns a PCG source derived from seed. Both PCG words are mixed so
// that nearby seeds produce unrelated sequences.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(mix(seed), mix(seed+goldenRatio64)))
}

// Shuffle restores the deck to the seeded order. Reshuffling replays the same
// permutation; a deck never produces a second, different shuffle.
func (d *Deck) Shuffle() {
	i := 0
	for suit := range Suit(4) {
		for rank := range Rank(13) {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
	rng := NewRand(d.seed)
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	d.next = 0
}

// Draw deals n cards off the top of the deck.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrDeckExhausted, n, d.Remaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Draw4 deals a four-card hand, sorted high to low.
func (d *Deck) Draw4() ([4]Card, error) {
	var hand [4]Card
	cards, err := d.Draw(4)
	if err != nil {
		return hand, err
	}
	SortCards(cards)
	copy(hand[:], cards)
	return hand, nil
}

// Draw3 deals a three-card board, sorted high to low.
func (d *Deck) Draw3() ([3]Card, error) {
	var board [3]Card
	cards, err := d.Draw(3)
	if err != nil {
		return board, err
	}
	SortCards(cards)
	copy(board[:], cards)
	return board, nil
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Seed returns the seed the deck was shuffled with.
func (d *Deck) Seed() uint64 {
	return d.seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
