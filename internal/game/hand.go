package game

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

// Hand is the running score of one participant in one game.
type Hand struct {
	*Player
	rule     *Rule
	cards    Cards
	total    int
	softAces int
	status   atomic.Uint32

	mu sync.RWMutex
}

type HandStatus uint32

const (
	HandWaiting HandStatus = iota
	HandPlaying
	HandStood
	HandBusted
)

func (st HandStatus) String() string {
	switch st {
	case HandWaiting:
		return "waiting"
	case HandPlaying:
		return "playing"
	case HandStood:
		return "stood"
	case HandBusted:
		return "busted"
	default:
		return "unknown"
	}
}

func NewHand(player *Player, rule *Rule) *Hand {
	if rule == nil {
		rule = &DefaultRule
	}
	return &Hand{
		Player: player,
		rule:   rule,
	}
}

// AddCard counts c into the hand, then recounts soft aces as 1 one at a time
// while the total is over the bust limit.
func (h *Hand) AddCard(c Card) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cards = append(h.cards, c)
	h.total += c.Value()
	if c.IsAce() {
		h.softAces++
	}
	for h.total > h.rule.BustLimit && h.softAces > 0 {
		h.total -= h.rule.AceSoftening
		h.softAces--
	}
	return h.total
}

func (h *Hand) Total() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.total
}

func (h *Hand) SoftAces() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.softAces
}

func (h *Hand) Cards() Cards {
	h.mu.RLock()
	defer h.mu.RUnlock()
	cs := make(Cards, len(h.cards))
	copy(cs, h.cards)
	return cs
}

func (h *Hand) IsBust() bool {
	return h.Total() > h.rule.BustLimit
}

func (h *Hand) IsSoft() bool {
	return h.SoftAces() > 0
}

func (h *Hand) Status() HandStatus {
	return HandStatus(h.status.Load())
}

func (h *Hand) setStatus(st HandStatus) {
	h.status.Store(uint32(st))
}

func (h *Hand) String() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.softAces > 0 {
		return fmt.Sprintf("%s (soft %d)", h.cards.String(), h.total)
	}
	return fmt.Sprintf("%s (%d)", h.cards.String(), h.total)
}
