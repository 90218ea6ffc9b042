package equity

import (
	"math"
	"sort"
)

// Normalize converts raw equities into integer percentages that sum to 100,
// in the same order as raw. Leftover points after flooring go to the largest
// fractional parts, earlier entries first on ties. All-zero input splits evenly.
func Normalize(raw []float64) []int {
	out := make([]int, len(raw))
	if len(raw) == 0 {
		return out
	}

	total := 0.0
	for _, v := range raw {
		if v > 0 {
			total += v
		}
	}

	exact := make([]float64, len(raw))
	for i, v := range raw {
		switch {
		case total == 0:
			exact[i] = 100 / float64(len(raw))
		case v > 0:
			exact[i] = v / total * 100
		}
	}

	assigned := 0
	for i, e := range exact {
		out[i] = int(math.Floor(e))
		assigned += out[i]
	}

	order := make([]int, len(raw))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		fa := exact[order[a]] - math.Floor(exact[order[a]])
		fb := exact[order[b]] - math.Floor(exact[order[b]])
		return fa > fb
	})
	for i := 0; assigned < 100; i++ {
		out[order[i%len(order)]]++
		assigned++
	}
	return out
}
