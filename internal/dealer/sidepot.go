package dealer

import (
	"slices"
	"sort"
	"strconv"
	"strings"
)

// SidePot is the chips contributed by one exact set of seats. Layer is the
// stake each contributor put in, so Value is Layer times the contributor count.
type SidePot struct {
	Key          string
	Layer        int
	Value        int
	Contributors []int
}

// PotKey is the canonical key for a set of seats: sorted, deduplicated and
// comma-joined.
func PotKey(seats []int) string {
	s := slices.Clone(seats)
	sort.Ints(s)
	s = slices.Compact(s)
	parts := make([]string, len(s))
	for i, seat := range s {
		parts[i] = strconv.Itoa(seat)
	}
	return strings.Join(parts, ",")
}

// BuildSidePots groups the chips of finalized bets by contributor set.
//
// A bet with partial payments is cut into layers at each distinct partial
// amount. Each layer belongs to the bettor, the full payers and every partial
// payer who reached it; whatever lies above the largest partial belongs to the
// bettor and full payers alone. Layers with the same contributors merge. The
// result is the same for any ordering of bets, and lists the main pot first.
func BuildSidePots(bets []*OutstandingBet) []SidePot {
	pots := make(map[string]*SidePot)
	add := func(layer int, seats []int) {
		if layer <= 0 {
			return
		}
		key := PotKey(seats)
		p, ok := pots[key]
		if !ok {
			contributors := slices.Clone(seats)
			sort.Ints(contributors)
			contributors = slices.Compact(contributors)
			p = &SidePot{Key: key, Contributors: contributors}
			pots[key] = p
		}
		p.Layer += layer
		p.Value += layer * len(p.Contributors)
	}

	for _, b := range bets {
		base := append([]int{b.Bettor}, b.Paid...)

		cuts := make([]int, 0, len(b.Partials))
		for _, pp := range b.Partials {
			cuts = append(cuts, pp.Amount)
		}
		sort.Ints(cuts)
		cuts = slices.Compact(cuts)

		prev := 0
		for _, cut := range cuts {
			seats := slices.Clone(base)
			for _, pp := range b.Partials {
				if pp.Amount >= cut {
					seats = append(seats, pp.Seat)
				}
			}
			add(cut-prev, seats)
			prev = cut
		}
		add(b.Value-prev, base)
	}

	out := make([]SidePot, 0, len(pots))
	for _, p := range pots {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Contributors) != len(out[j].Contributors) {
			return len(out[i].Contributors) > len(out[j].Contributors)
		}
		return slices.Compare(out[i].Contributors, out[j].Contributors) < 0
	})
	return out
}
