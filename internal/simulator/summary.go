package simulator

import (
	"fmt"
	"io"

	"github.com/lox/flopdealer/internal/statistics"
)

// PrintSummary writes a plain-text report of a run.
func PrintSummary(w io.Writer, stats *statistics.Statistics, config Config) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== %s vs %s, %d seats, %d chips ===\n", config.Hero, config.Opponents, config.Seats, config.Stack)
	fmt.Fprintf(w, "Hands played: %d\n", stats.Hands)

	fmt.Fprintf(w, "\n=== RESULTS (chips/hand) ===\n")
	fmt.Fprintf(w, "Mean: %.3f\n", stats.Mean())
	fmt.Fprintf(w, "Median: %.3f\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.3f\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.3f, %.3f]\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== SETTLEMENT ===\n")
	fmt.Fprintf(w, "Wins: %d at showdown, %d uncontested\n", stats.ContestedWins, stats.UncontestedWins)
	fmt.Fprintf(w, "Showdown: %.2f chips/hand, uncontested: %.2f chips/hand\n",
		stats.ContestedNet/float64(stats.Hands), stats.UncontestedNet/float64(stats.Hands))
	fmt.Fprintf(w, "Hands seeing the flop: %d (%.1f%%)\n", stats.FlopHands, pct(stats.FlopHands, stats.Hands))
	fmt.Fprintf(w, "Hands with side pots: %d (%.1f%%)\n", stats.SidePotHands, pct(stats.SidePotHands, stats.Hands))
	fmt.Fprintf(w, "Refunds: %d hands, %d chips\n", stats.Refunds, stats.RefundChips)
	fmt.Fprintf(w, "Largest pot: %d chips\n", stats.MaxPot)
	fmt.Fprintf(w, "Actions: %.1f per hand\n", float64(stats.Actions)/float64(stats.Hands))

	fmt.Fprintf(w, "\n=== POSITION ===\n")
	for pos := 1; pos <= statistics.MaxPositions; pos++ {
		if ps := stats.PositionResults[pos]; ps.Hands > 0 {
			fmt.Fprintf(w, "Position %d: %d hands, %.3f chips/hand\n", pos, ps.Hands, stats.PositionMean(pos))
		}
	}
}

func pct(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return float64(n) / float64(of) * 100
}
