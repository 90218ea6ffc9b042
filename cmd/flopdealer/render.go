package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/flopdealer/internal/dealer"
	"github.com/lox/flopdealer/poker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func signed(n int) string {
	switch {
	case n > 0:
		return winStyle.Render("+" + strconv.Itoa(n))
	case n < 0:
		return lossStyle.Render(strconv.Itoa(n))
	default:
		return "0"
	}
}

func seatList(seats []int) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// renderHand writes the settled hand: players, actions, pots and payouts.
func renderHand(w io.Writer, d *dealer.Dealer, res *dealer.Settlement, name func(int) string) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Hand %s", d.ID())))
	if board, ok := d.Board(); ok {
		fmt.Fprintf(w, "Board: %s\n", cardStyle.Render(poker.FormatCards(board[:])))
	}
	fmt.Fprintln(w)

	h := d.History()
	net := d.Net()
	players := newTable("Seat", "Player", "Hand", "Start", "Finish", "Net", "")
	for _, sb := range h.StartingBalances {
		p, _ := d.Player(sb.Seat)
		status := ""
		switch {
		case p.Folded:
			status = dimStyle.Render("folded")
		case p.AllIn:
			status = "all-in"
		}
		players.Row(
			strconv.Itoa(sb.Seat),
			name(sb.Seat),
			cardStyle.Render(poker.FormatCards(p.Hand[:])),
			strconv.Itoa(sb.Chips),
			strconv.Itoa(p.Chips),
			signed(net[sb.Seat]),
			status,
		)
	}
	fmt.Fprintln(w, players)

	fmt.Fprintln(w, headerStyle.Render("Actions"))
	for i, rec := range h.Actions {
		street := "pre-flop"
		if h.StageOf(i) == dealer.Flop {
			street = "flop"
		}
		fmt.Fprintf(w, "  %2d %-8s %s (%d in)\n", i, street, rec, rec.Committed)
	}
	fmt.Fprintln(w)

	if res.Refund != nil {
		fmt.Fprintf(w, "Refund: %d to seat %d (unmatched action %d)\n", res.Refund.Amount, res.Refund.Seat, res.Refund.Origin)
	}
	if res.Uncontested {
		for seat, chips := range res.Payouts {
			fmt.Fprintf(w, "Uncontested: seat %d takes %d\n", seat, chips)
		}
		return
	}

	pots := newTable("Pot", "Contributors", "Value", "Eligible", "Equity %", "Shares")
	for i, pa := range res.Pots {
		label := "main"
		if i > 0 {
			label = fmt.Sprintf("side %d", i)
		}
		equity := make([]string, len(pa.Equity))
		for j, pct := range pa.Equity {
			equity[j] = strconv.Itoa(pct)
		}
		seats := make([]int, 0, len(pa.Shares))
		for seat := range pa.Shares {
			seats = append(seats, seat)
		}
		slices.Sort(seats)
		shares := make([]string, len(seats))
		for j, seat := range seats {
			shares[j] = fmt.Sprintf("%d:%d", seat, pa.Shares[seat])
		}
		pots.Row(label, seatList(pa.Contributors), strconv.Itoa(pa.Value), seatList(pa.Eligible),
			strings.Join(equity, "/"), strings.Join(shares, " "))
	}
	fmt.Fprintln(w, pots)
}
