package equity

import (
	"errors"
	"math"
	"testing"

	"github.com/lox/flopdealer/poker"
)

func hand(s string) [4]poker.Card {
	var h [4]poker.Card
	copy(h[:], poker.MustParseCards(s))
	return h
}

func board(s string) [3]poker.Card {
	var b [3]poker.Card
	copy(b[:], poker.MustParseCards(s))
	return b
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		raw  []float64
		want []int
	}{
		{name: "even split", raw: []float64{0.5, 0.5}, want: []int{50, 50}},
		{name: "three way", raw: []float64{1, 1, 1}, want: []int{34, 33, 33}},
		{name: "all zero", raw: []float64{0, 0, 0, 0}, want: []int{25, 25, 25, 25}},
		{name: "largest remainder", raw: []float64{0.125, 0.875}, want: []int{13, 87}},
		{name: "single", raw: []float64{0.3}, want: []int{100}},
		{name: "zero entry", raw: []float64{0, 2}, want: []int{0, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.raw)
			sum := 0
			for i := range got {
				sum += got[i]
				if got[i] != tt.want[i] {
					t.Errorf("Normalize(%v) = %v, want %v", tt.raw, got, tt.want)
					break
				}
			}
			if sum != 100 {
				t.Errorf("sum = %d, want 100", sum)
			}
		})
	}
}

func TestFlopEquity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		hands [][4]poker.Card
		board [3]poker.Card
		want  []float64
	}{
		{
			name:  "set beats high card",
			hands: [][4]poker.Card{hand("Kh Kd 7c 2s"), hand("Qh Jd 5c 4s")},
			board: board("Ks 8d 3c"),
			want:  []float64{1, 0},
		},
		{
			name:  "identical strength splits",
			hands: [][4]poker.Card{hand("Ah Kh 7c 2s"), hand("Ad Kd 7h 2d")},
			board: board("Qs 9c 4c"),
			want:  []float64{0.5, 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Flop{}.Equity(tt.hands, tt.board)
			if err != nil {
				t.Fatalf("Equity: %v", err)
			}
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("Equity = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestRunoutEquity(t *testing.T) {
	t.Parallel()
	hands := [][4]poker.Card{hand("Kh Kd 7c 2s"), hand("Qh Jd 5c 4s")}
	got, err := Runout{Workers: 4}.Equity(hands, board("Ks 8d 3c"))
	if err != nil {
		t.Fatalf("Equity: %v", err)
	}
	if got[0] < 0.8 {
		t.Errorf("set equity = %.3f, want > 0.8", got[0])
	}
	if total := got[0] + got[1]; math.Abs(total-1) > 1e-9 {
		t.Errorf("equities sum to %.6f, want 1", total)
	}

	again, err := Runout{Workers: 1}.Equity(hands, board("Ks 8d 3c"))
	if err != nil {
		t.Fatalf("Equity: %v", err)
	}
	for i := range got {
		if math.Abs(got[i]-again[i]) > 1e-9 {
			t.Errorf("worker count changed result: %v vs %v", got, again)
		}
	}
}

func TestRunoutSingleHand(t *testing.T) {
	t.Parallel()
	got, err := Runout{}.Equity([][4]poker.Card{hand("As Ah 2c 3d")}, board("Ks 8d 3c"))
	if err != nil {
		t.Fatalf("Equity: %v", err)
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Equity = %v, want [1]", got)
	}
}

func TestEquityRejectsBadInput(t *testing.T) {
	t.Parallel()
	_, err := Flop{}.Equity([][4]poker.Card{hand("Kh Kd 7c 2s"), hand("Kh Jd 5c 4s")}, board("Ks 8d 3c"))
	if !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("duplicate hole card: got %v, want ErrDuplicateCard", err)
	}

	_, err = Runout{}.Equity([][4]poker.Card{hand("Kh Kd 7c 2s")}, board("Kh 8d 3c"))
	if !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("duplicate board card: got %v, want ErrDuplicateCard", err)
	}

	if _, err := (Flop{}).Equity(nil, board("Ks 8d 3c")); err == nil {
		t.Error("expected error for empty hands")
	}
}

func TestBestScoreAndDescribe(t *testing.T) {
	t.Parallel()
	b := board("Ks 8d 3c")
	set, err := BestScore(hand("Kh Kd 7c 2s"), b)
	if err != nil {
		t.Fatalf("BestScore: %v", err)
	}
	pair, err := BestScore(hand("Kc Qd 7h 2h"), b)
	if err != nil {
		t.Fatalf("BestScore: %v", err)
	}
	if set <= pair {
		t.Errorf("set score %d should beat pair score %d", set, pair)
	}

	desc, err := Describe(hand("Kh Kd 7c 2s"), b)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if desc == "" {
		t.Error("Describe returned empty string")
	}
}
