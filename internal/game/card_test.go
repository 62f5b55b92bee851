package game

import (
	"testing"
)

func TestCard_String(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want string
	}{
		{card: NewCard(Ace, Clubs), want: "AC"},
		{card: NewCard(Ten, Hearts), want: "TH"},
		{card: NewCard(King, Diamonds), want: "KD"},
		{card: NewCard(Seven, Spades), want: "7S"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.String(); got != tt.want {
				t.Errorf("String() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCard_Value(t *testing.T) {
	want := map[Rank]int{
		Ace: 11, Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7,
		Eight: 8, Nine: 9, Ten: 10, Jack: 10, Queen: 10, King: 10,
	}
	for _, s := range AllSuits {
		for _, r := range AllRanks {
			c := NewCard(r, s)
			if got := c.Value(); got != want[r] {
				t.Errorf("%s.Value() = %v, want %v", c, got, want[r])
			}
		}
	}
}

func TestCard_IsAce(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want bool
	}{
		{card: NewCard(Ace, Spades), want: true},
		{card: NewCard(King, Spades), want: false},
		{card: NewCard(Two, Hearts), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.IsAce(); got != tt.want {
				t.Errorf("IsAce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCards_String(t *testing.T) {
	cs := Cards{NewCard(Ace, Hearts), NewCard(Nine, Clubs), NewCard(Queen, Spades)}
	if got, want := cs.String(), "AH 9C QS"; got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
	if got := (Cards{}).String(); got != "" {
		t.Errorf("String() = %#v, want empty", got)
	}
}

func TestSuit_IsRed(t *testing.T) {
	tests := []struct {
		suit Suit
		want bool
	}{
		{suit: Clubs, want: false},
		{suit: Diamonds, want: true},
		{suit: Hearts, want: true},
		{suit: Spades, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.suit.String(), func(t *testing.T) {
			if got := tt.suit.IsRed(); got != tt.want {
				t.Errorf("IsRed() = %v, want %v", got, tt.want)
			}
		})
	}
}
