package game

import (
	"math/rand"
)

const DeckSize = 52

// Deck is a single 52-card deck dealt from the top. It is owned by one game.
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand
}

// NewDeck returns a deck in canonical order, suit by suit from ace to king.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	i := 0
	for _, s := range AllSuits {
		for _, r := range AllRanks {
			d.cards[i] = Card{Rank: r, Suit: s}
			i++
		}
	}
	return d
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(DeckSize, func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.next = 0
}

// DealCard removes the top card. Dealing from an empty deck panics with
// ErrDeckExhausted: one hand never needs more than a single deck.
func (d *Deck) DealCard() Card {
	if d.next >= DeckSize {
		panic(ErrDeckExhausted)
	}
	c := d.cards[d.next]
	d.next++
	return c
}

func (d *Deck) Remaining() int {
	return DeckSize - d.next
}

// Cards returns a copy of the whole deck in its current order.
func (d *Deck) Cards() Cards {
	cs := make(Cards, DeckSize)
	copy(cs, d.cards[:])
	return cs
}
