package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/lox/flopdealer/internal/equity"
	"github.com/lox/flopdealer/poker"
)

type OddsCmd struct {
	Hands    []string `arg:"" help:"Four-card hands, e.g. AsKsQdJd 7c7h2s3s"`
	Board    string   `short:"b" required:"" help:"Three-card flop, e.g. Td9s2c"`
	FlopOnly bool     `help:"Score the flop as final instead of running out turn and river"`
	Workers  int      `help:"Runout workers (default NumCPU)"`
}

// parseOddsInput turns the command line cards into fixed-size hands and board.
func parseOddsInput(hands []string, board string) ([][4]poker.Card, [3]poker.Card, error) {
	var b [3]poker.Card
	if len(hands) < 2 {
		return nil, b, fmt.Errorf("need at least two hands, got %d", len(hands))
	}
	out := make([][4]poker.Card, len(hands))
	for i, s := range hands {
		cards, err := poker.ParseCards(s)
		if err != nil {
			return nil, b, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(cards) != 4 {
			return nil, b, fmt.Errorf("hand %d: want 4 cards, got %d", i+1, len(cards))
		}
		out[i] = [4]poker.Card(cards)
	}
	cards, err := poker.ParseCards(board)
	if err != nil {
		return nil, b, fmt.Errorf("board: %w", err)
	}
	if len(cards) != 3 {
		return nil, b, fmt.Errorf("board: want 3 cards, got %d", len(cards))
	}
	return out, [3]poker.Card(cards), nil
}

func (c *OddsCmd) Run(logger *log.Logger, out io.Writer) error {
	hands, board, err := parseOddsInput(c.Hands, c.Board)
	if err != nil {
		return err
	}

	var eval equity.Evaluator = equity.Runout{Workers: c.Workers}
	mode := "turn and river runout"
	if c.FlopOnly {
		eval = equity.Flop{}
		mode = "flop only"
	}
	logger.Debug("computing equity", "hands", len(hands), "board", poker.FormatCards(board[:]), "mode", mode)

	raw, err := eval.Equity(hands, board)
	if err != nil {
		return err
	}
	shares := equity.Normalize(raw)

	fmt.Fprintln(out, titleStyle.Render("Equity"))
	fmt.Fprintf(out, "Board: %s (%s)\n", cardStyle.Render(poker.FormatCards(board[:])), mode)
	t := newTable("Hand", "Cards", "Made", "Equity %")
	for i, h := range hands {
		made, err := equity.Describe(h, board)
		if err != nil {
			return err
		}
		t.Row(strconv.Itoa(i+1), cardStyle.Render(poker.FormatCards(h[:])), made, strconv.Itoa(shares[i]))
	}
	fmt.Fprintln(out, t)
	return nil
}
