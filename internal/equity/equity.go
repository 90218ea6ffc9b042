// Package equity computes showdown equity for four-card hands on a three-card
// board and converts raw equities into integer percentage shares.
package equity

import (
	"errors"
	"fmt"
	"runtime"

	ph "github.com/paulhankin/poker"
	"golang.org/x/sync/errgroup"

	"github.com/lox/flopdealer/poker"
)

// ErrDuplicateCard is returned when the same card appears twice among the
// hands and board.
var ErrDuplicateCard = errors.New("equity: duplicate card")

// Evaluator returns a raw, non-negative equity score per hand, in input order.
type Evaluator interface {
	Equity(hands [][4]poker.Card, board [3]poker.Card) ([]float64, error)
}

// Runout scores hands by exhaustively dealing every turn and river from the
// unseen cards. Each runout awards one unit split between the best hands.
type Runout struct {
	// Workers bounds parallel turn-card workers; zero means NumCPU.
	Workers int
}

// Flop scores hands on the three-card board alone, with no further cards.
type Flop struct{}

// Equity implements Evaluator.
func (r Runout) Equity(hands [][4]poker.Card, board [3]poker.Card) ([]float64, error) {
	hs, bs, unseen, err := prepare(hands, board)
	if err != nil {
		return nil, err
	}
	if len(hands) == 1 {
		return []float64{1}, nil
	}
	if len(unseen) < 2 {
		return flopShares(hs, bs), nil
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// One partial-sum row per turn card keeps workers free of shared writes.
	partial := make([][]float64, len(unseen)-1)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < len(unseen)-1; i++ {
		g.Go(func() error {
			row := make([]float64, len(hs))
			scores := make([]int16, len(hs))
			full := [5]ph.Card{bs[0], bs[1], bs[2], unseen[i]}
			for j := i + 1; j < len(unseen); j++ {
				full[4] = unseen[j]
				award(row, scores, func(k int) int16 { return bestOnRiver(&hs[k], &full) })
			}
			partial[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	runouts := float64(len(unseen) * (len(unseen) - 1) / 2)
	out := make([]float64, len(hs))
	for _, row := range partial {
		for k, v := range row {
			out[k] += v
		}
	}
	for k := range out {
		out[k] /= runouts
	}
	return out, nil
}

// Equity implements Evaluator.
func (Flop) Equity(hands [][4]poker.Card, board [3]poker.Card) ([]float64, error) {
	hs, bs, _, err := prepare(hands, board)
	if err != nil {
		return nil, err
	}
	return flopShares(hs, bs), nil
}

func flopShares(hs [][4]ph.Card, bs [3]ph.Card) []float64 {
	row := make([]float64, len(hs))
	scores := make([]int16, len(hs))
	award(row, scores, func(k int) int16 { return bestOnFlop(&hs[k], &bs) })
	return row
}

// award scores every hand and splits one unit between the best of them.
func award(row []float64, scores []int16, score func(k int) int16) {
	best := int16(-1)
	for k := range scores {
		scores[k] = score(k)
		if scores[k] > best {
			best = scores[k]
		}
	}
	winners := 0
	for _, s := range scores {
		if s == best {
			winners++
		}
	}
	share := 1 / float64(winners)
	for k, s := range scores {
		if s == best {
			row[k] += share
		}
	}
}

func prepare(hands [][4]poker.Card, board [3]poker.Card) ([][4]ph.Card, [3]ph.Card, []ph.Card, error) {
	var bs [3]ph.Card
	if len(hands) == 0 {
		return nil, bs, nil, fmt.Errorf("equity: no hands")
	}

	var used [53]bool
	mark := func(c poker.Card) error {
		if !c.IsValid() {
			return fmt.Errorf("equity: invalid card %d", c)
		}
		if used[c] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		used[c] = true
		return nil
	}

	hs := make([][4]ph.Card, len(hands))
	for k, h := range hands {
		for _, c := range h {
			if err := mark(c); err != nil {
				return nil, bs, nil, err
			}
		}
		converted, err := convertHand(h)
		if err != nil {
			return nil, bs, nil, err
		}
		hs[k] = converted
	}
	for i, c := range board {
		if err := mark(c); err != nil {
			return nil, bs, nil, err
		}
		pc, err := toScorer(c)
		if err != nil {
			return nil, bs, nil, err
		}
		bs[i] = pc
	}

	unseen := make([]ph.Card, 0, 52)
	for suit := range poker.Suit(4) {
		for rank := range poker.Rank(13) {
			c := poker.NewCard(rank, suit)
			if used[c] {
				continue
			}
			pc, err := toScorer(c)
			if err != nil {
				return nil, bs, nil, err
			}
			unseen = append(unseen, pc)
		}
	}
	return hs, bs, unseen, nil
}
