// Package statistics aggregates simulated hand results for one tracked seat.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MaxPositions is the largest acting position tracked.
const MaxPositions = 10

// HandResult is the outcome of one simulated hand from the tracked seat's
// point of view.
type HandResult struct {
	Seed        uint64
	Position    int // acting position of the tracked seat, 1 = small blind
	Net         int // chips won or lost by the tracked seat
	Pot         int // pot at showdown
	Uncontested bool
	Refund      int
	SidePots    int
	SawFlop     bool
	Actions     int
}

// PositionStats tracks results for one acting position.
type PositionStats struct {
	Hands  int
	SumNet float64
	SumSq  float64
}

// Statistics tracks results across many hands. Values are in chips.
type Statistics struct {
	Hands  int
	SumNet float64
	SumSq  float64
	Values []float64

	ContestedWins   int
	UncontestedWins int
	ContestedNet    float64 // wins and losses
	UncontestedNet  float64
	AllNet          float64

	PositionResults [MaxPositions + 1]PositionStats // index 0 unused

	MaxPot       int
	Refunds      int
	RefundChips  int
	SidePotHands int
	FlopHands    int
	Actions      int
}

// Mean returns the mean result per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumNet / float64(s.Hands)
}

// Variance returns the sample variance.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(max(s.Variance(), 0))
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add records one hand.
func (s *Statistics) Add(r HandResult) {
	net := float64(r.Net)
	s.Hands++
	s.SumNet += net
	s.SumSq += net * net
	s.Values = append(s.Values, net)

	if r.Uncontested {
		s.UncontestedNet += net
		if net > 0 {
			s.UncontestedWins++
		}
	} else {
		s.ContestedNet += net
		if net > 0 {
			s.ContestedWins++
		}
	}
	s.AllNet += net

	if r.Position >= 1 && r.Position <= MaxPositions {
		ps := &s.PositionResults[r.Position]
		ps.Hands++
		ps.SumNet += net
		ps.SumSq += net * net
	}

	s.MaxPot = max(s.MaxPot, r.Pot)
	if r.Refund > 0 {
		s.Refunds++
		s.RefundChips += r.Refund
	}
	if r.SidePots > 1 {
		s.SidePotHands++
	}
	if r.SawFlop {
		s.FlopHands++
	}
	s.Actions += r.Actions
}

func (s *Statistics) sorted() []float64 {
	out := make([]float64, len(s.Values))
	copy(out, s.Values)
	sort.Float64s(out)
	return out
}

// Median returns the median result.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the interpolated value at p, from 0.0 to 1.0.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PositionMean returns the mean result for one acting position.
func (s *Statistics) PositionMean(position int) float64 {
	if position < 1 || position > MaxPositions {
		return 0
	}
	ps := s.PositionResults[position]
	if ps.Hands == 0 {
		return 0
	}
	return ps.SumNet / float64(ps.Hands)
}

// IsLedgerBalanced reports whether the contested and uncontested buckets add
// up to the total.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllNet-s.ContestedNet-s.UncontestedNet) <= 1e-6
}

// Validate checks the aggregates for internal consistency.
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: all=%.2f contested=%.2f uncontested=%.2f",
			s.AllNet, s.ContestedNet, s.UncontestedNet)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values length (%d) does not match hands (%d)", len(s.Values), s.Hands)
	}
	if wins := s.ContestedWins + s.UncontestedWins; wins > s.Hands {
		return fmt.Errorf("wins (%d) exceed hands (%d)", wins, s.Hands)
	}
	positions := 0
	for _, ps := range s.PositionResults[1:] {
		positions += ps.Hands
	}
	if positions != s.Hands {
		return fmt.Errorf("position hands (%d) do not match hands (%d)", positions, s.Hands)
	}
	return nil
}
