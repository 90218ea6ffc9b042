package phh

import (
	"fmt"
	"time"

	"github.com/lox/flopdealer/internal/dealer"
)

// FromHand builds the history of a settled hand.
func FromHand(d *dealer.Dealer, res *dealer.Settlement) (*HandHistory, error) {
	if !d.Settled() || res == nil {
		return nil, fmt.Errorf("phh: hand %q is not settled", d.ID())
	}
	h := d.History()
	n := len(h.StartingBalances)

	index := make(map[int]int, n)
	hand := &HandHistory{
		Variant:           Variant,
		SeatCount:         n,
		Seats:             make([]int, n),
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            2,
		StartingStacks:    make([]int, n),
		FinishingStacks:   make([]int, n),
		Winnings:          make([]int, n),
		HandID:            d.ID(),
		Metadata: map[string]any{
			"seed":   fmt.Sprint(d.Seed()),
			"button": d.Button(),
		},
	}
	for i, sb := range h.StartingBalances {
		index[sb.Seat] = i
		hand.Seats[i] = sb.Seat
		hand.StartingStacks[i] = sb.Chips
		hand.Winnings[i] = res.Payouts[sb.Seat]
		p, err := d.Player(sb.Seat)
		if err != nil {
			return nil, fmt.Errorf("phh: %w", err)
		}
		hand.FinishingStacks[i] = p.Chips
		hand.Actions = append(hand.Actions, DealHole(i, p.Hand))
	}
	if res.Refund != nil {
		hand.Metadata["refund"] = map[string]any{"seat": res.Refund.Seat, "amount": res.Refund.Amount}
	}

	// Blinds are the first two actions; both count towards the pre-flop total.
	street := make(map[int]int, n)
	for k, idx := range h.PreFlop {
		rec := h.Actions[idx]
		street[rec.Seat] += rec.Committed
		if k < 2 {
			hand.BlindsOrStraddles[index[rec.Seat]] = rec.Committed
		}
		if line, ok := FormatAction(index[rec.Seat], rec, street[rec.Seat], k < 2); ok {
			hand.Actions = append(hand.Actions, line)
		}
	}
	if board, ok := d.Board(); ok {
		hand.Actions = append(hand.Actions, DealBoard(board))
	}
	clear(street)
	for _, idx := range h.Flop {
		rec := h.Actions[idx]
		street[rec.Seat] += rec.Committed
		if line, ok := FormatAction(index[rec.Seat], rec, street[rec.Seat], false); ok {
			hand.Actions = append(hand.Actions, line)
		}
	}

	if at := d.StartedAt(); !at.IsZero() {
		stampTime(hand, at)
	}
	return hand, nil
}

func stampTime(hand *HandHistory, at time.Time) {
	at = at.UTC()
	hand.Time = at.Format(time.TimeOnly)
	hand.TimeZone = "UTC"
	hand.Day = at.Day()
	hand.Month = int(at.Month())
	hand.Year = at.Year()
}
