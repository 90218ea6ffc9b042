package poker

import (
	"errors"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}
	if !twoClubs.IsValid() {
		t.Error("2c should be a valid card")
	}
	if Card(0).IsValid() {
		t.Error("zero card should not be valid")
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(King, Diamonds)},
		{name: "ten with T notation", input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{name: "lowercase rank", input: "qS", wantCard: NewCard(Queen, Spades)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCard(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.wantCard {
				t.Errorf("ParseCard(%q) = %s, want %s", tt.input, got, tt.wantCard)
			}
		})
	}
}

func TestParseCardsRoundTrip(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("As Kd 7h 2c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatCards(cards); got != "AsKd7h2c" {
		t.Errorf("FormatCards = %s, want AsKd7h2c", got)
	}

	if _, err := ParseCards("AsK"); err == nil {
		t.Error("expected error for odd-length input")
	}
}

func TestSortCards(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("2c Ah 9d Ac")
	SortCards(cards)
	if got := FormatCards(cards); got != "AhAc9d2c" {
		t.Errorf("SortCards = %s, want AhAc9d2c", got)
	}
}

func TestDeckDeterministic(t *testing.T) {
	t.Parallel()
	d1 := NewDeck(123)
	d2 := NewDeck(123)
	a, err := d1.Draw(52)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	b, err := d2.Draw(52)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("card %d differs: %s vs %s", i, a[i], b[i])
		}
	}

	seen := make(map[Card]bool)
	for _, c := range a {
		if !c.IsValid() || seen[c] {
			t.Fatalf("invalid or duplicate card %s", c)
		}
		seen[c] = true
	}

	other, _ := NewDeck(124).Draw(52)
	same := true
	for i := range a {
		if a[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical decks")
	}
}

func TestDeckShuffleReplaysSeed(t *testing.T) {
	t.Parallel()
	d := NewDeck(7)
	first, _ := d.Draw(10)
	d.Shuffle()
	if d.Remaining() != 52 {
		t.Fatalf("Remaining after shuffle = %d, want 52", d.Remaining())
	}
	again, _ := d.Draw(10)
	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("reshuffle changed card %d", i)
		}
	}
}

func TestDeckExhausted(t *testing.T) {
	t.Parallel()
	d := NewDeck(1)
	for range 13 {
		if _, err := d.Draw4(); err != nil {
			t.Fatalf("Draw4: %v", err)
		}
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", d.Remaining())
	}
	if _, err := d.Draw3(); !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("Draw3 on empty deck: got %v, want ErrDeckExhausted", err)
	}
}

func TestDraw4Sorted(t *testing.T) {
	t.Parallel()
	hand, err := NewDeck(99).Draw4()
	if err != nil {
		t.Fatalf("Draw4: %v", err)
	}
	for i := 1; i < len(hand); i++ {
		if hand[i].Rank() > hand[i-1].Rank() {
			t.Errorf("hand not sorted: %v", hand)
		}
	}
}
