package game

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/rs/xid"
	"go.uber.org/atomic"
)

// Game is one hand of blackjack between a player and the dealer. It moves
// through Setup, PlayerTurn, DealerTurn and Resolved; a bust on either side
// goes straight to Resolved.
type Game struct {
	id     string
	round  int
	rule   *Rule
	deck   *Deck
	player *Hand
	dealer *Hand
	status atomic.Uint32
	result atomic.Uint32

	onCardDealtFunc OnCardDealtFunc

	mu sync.RWMutex
}

type Status uint32

const (
	Setup Status = iota
	PlayerTurn
	DealerTurn
	Resolved
)

func (st Status) String() string {
	switch st {
	case Setup:
		return "setup"
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Result is the outcome from the player's side.
type Result uint8

const (
	Win Result = iota
	Tie
	Lose
)

func (r Result) String() string {
	if r == Win {
		return "Win"
	} else if r == Tie {
		return "Tie"
	} else {
		return "Lose"
	}
}

type Decision uint8

const (
	Hit Decision = iota
	Stand
)

func (d Decision) String() string {
	switch d {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// Decider asks the player whether to take another card. Implementations
// block until they have a valid answer.
type Decider interface {
	HitOrStand(ctx context.Context, h *Hand) (Decision, error)
}

type DeciderFunc func(ctx context.Context, h *Hand) (Decision, error)

func (f DeciderFunc) HitOrStand(ctx context.Context, h *Hand) (Decision, error) {
	return f(ctx, h)
}

type OnCardDealtFunc func(g *Game, h *Hand, c Card)

// NewGame prepares a game on an already shuffled deck.
func NewGame(player *Player, deck *Deck, rule *Rule) *Game {
	if rule == nil {
		rule = &DefaultRule
	}
	return &Game{
		id:     xid.New().String(),
		rule:   rule,
		deck:   deck,
		player: NewHand(player, rule),
		dealer: NewHand(NewDealer(), rule),
	}
}

func (g *Game) ID() string {
	return g.id
}

// Round is the position of the game in its session, starting at 1.
func (g *Game) Round() int {
	return g.round
}

func (g *Game) Rule() *Rule {
	return g.rule
}

func (g *Game) Player() *Hand {
	return g.player
}

func (g *Game) Dealer() *Hand {
	return g.dealer
}

func (g *Game) Status() Status {
	return Status(g.status.Load())
}

func (g *Game) Finished() bool {
	return g.Status() == Resolved
}

// Result returns the outcome once the game is resolved.
func (g *Game) Result() (Result, bool) {
	if !g.Finished() {
		return Lose, false
	}
	return Result(g.result.Load()), true
}

func (g *Game) OnCardDealt(f OnCardDealtFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onCardDealtFunc = f
}

// Play deals the opening cards and runs both turns to a result. It can only
// be called once per game.
func (g *Game) Play(ctx context.Context, d Decider) (Result, error) {
	if d == nil {
		return Lose, ErrNoDecider
	}
	if !g.status.CompareAndSwap(uint32(Setup), uint32(PlayerTurn)) {
		return Lose, ErrGameFinished
	}

	g.deal(g.dealer)
	g.deal(g.player)
	g.deal(g.player)

	busted, err := g.playerTurn(ctx, d)
	if err != nil {
		return Lose, err
	}
	if busted {
		return g.finish(Lose), nil
	}

	g.status.Store(uint32(DealerTurn))
	if g.dealerTurn() {
		return g.finish(Win), nil
	}
	return g.finish(Resolve(g.player.Total(), g.dealer.Total())), nil
}

func (g *Game) deal(h *Hand) Card {
	c := g.deck.DealCard()
	h.AddCard(c)

	g.mu.RLock()
	f := g.onCardDealtFunc
	g.mu.RUnlock()
	if f != nil {
		f(g, h, c)
	}
	return c
}

// playerTurn asks for decisions while the player is under the bust limit, so
// a player sitting on exactly 21 stands without being asked.
func (g *Game) playerTurn(ctx context.Context, d Decider) (bool, error) {
	p := g.player
	p.setStatus(HandPlaying)
	for p.Total() < g.rule.BustLimit {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		dec, err := d.HitOrStand(ctx, p)
		if err != nil {
			return false, fmt.Errorf("request decision: %w", err)
		}
		switch dec {
		case Hit:
			g.deal(p)
		case Stand:
			p.setStatus(HandStood)
			return false, nil
		default:
			return false, fmt.Errorf("%w: %d", ErrUnknownDecision, dec)
		}
	}
	if p.IsBust() {
		p.setStatus(HandBusted)
		return true, nil
	}
	p.setStatus(HandStood)
	return false, nil
}

// dealerTurn reports whether the dealer busted.
func (g *Game) dealerTurn() bool {
	d := g.dealer
	d.setStatus(HandPlaying)
	for d.Total() < g.rule.DealerLimit {
		g.deal(d)
	}
	if d.IsBust() {
		d.setStatus(HandBusted)
		return true
	}
	d.setStatus(HandStood)
	return false
}

func (g *Game) finish(r Result) Result {
	g.result.Store(uint32(r))
	g.status.Store(uint32(Resolved))
	return r
}

func (g *Game) ResultBoard() string {
	bf := bytes.NewBuffer(nil)
	bf.WriteString(fmt.Sprintf("Dealer: %s\n", g.dealer.String()))
	bf.WriteString(fmt.Sprintf("%s: %s", g.player.Name(), g.player.String()))
	if r, ok := g.Result(); ok {
		bf.WriteString(fmt.Sprintf("\nResult: %s", r))
	}
	return bf.String()
}

// Resolve compares two totals that are both within the bust limit.
func Resolve(player, dealer int) Result {
	if player == dealer {
		return Tie
	} else if player > dealer {
		return Win
	}
	return Lose
}
