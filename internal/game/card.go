package game

import (
	"strings"
)

type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var (
	AllRanks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
	AllSuits = []Suit{Clubs, Diamonds, Hearts, Spades}

	RankNames = []rune("A23456789TJQK")
	SuitNames = []rune("CDHS")

	rankValues = [...]int{11, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10}
)

func (r Rank) String() string {
	return string(RankNames[r])
}

func (s Suit) String() string {
	return string(SuitNames[s])
}

// IsRed reports whether cards of the suit are printed in red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

type Card struct {
	Rank Rank
	Suit Suit
}

func NewCard(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

// Value returns the point value of the card, counting an ace as 11.
func (c Card) Value() int {
	return rankValues[c.Rank]
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

type Cards []Card

func (cs Cards) String() string {
	s := make([]string, len(cs))
	for i := range cs {
		s[i] = cs[i].String()
	}
	return strings.Join(s, " ")
}

// Strings returns the two-character code of every card.
func (cs Cards) Strings() []string {
	s := make([]string, len(cs))
	for i := range cs {
		s[i] = cs[i].String()
	}
	return s
}

func (cs Cards) Contains(c Card) bool {
	for i := range cs {
		if cs[i] == c {
			return true
		}
	}
	return false
}
