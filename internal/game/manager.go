package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"

	"github.com/psucodervn/blackjack/internal/model"
)

// Manager runs the games of one session and keeps its scoreboard.
type Manager struct {
	sessionID string
	rule      *Rule
	rng       *rand.Rand
	store     Storage

	round  atomic.Int64
	wins   atomic.Uint64
	losses atomic.Uint64
	ties   atomic.Uint64

	mu               sync.RWMutex
	onNewGameFunc    OnNewGameFunc
	onCardDealtFunc  OnCardDealtFunc
	onGameFinishFunc OnGameFinishFunc
}

type OnNewGameFunc func(g *Game)
type OnGameFinishFunc func(g *Game, r Result)

// NewManager creates a session. rng is the process-wide generator; every deck
// of the session is shuffled with it.
func NewManager(store Storage, rng *rand.Rand, rule *Rule) *Manager {
	if rule == nil {
		rule = &DefaultRule
	}
	return &Manager{
		sessionID: xid.New().String(),
		rule:      rule,
		rng:       rng,
		store:     store,
	}
}

func (m *Manager) SessionID() string {
	return m.sessionID
}

func (m *Manager) Rule() *Rule {
	return m.rule
}

func (m *Manager) OnNewGame(f OnNewGameFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onNewGameFunc = f
}

func (m *Manager) OnCardDealt(f OnCardDealtFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onCardDealtFunc = f
}

func (m *Manager) OnGameFinish(f OnGameFinishFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onGameFinishFunc = f
}

// NewGame builds a game on a freshly shuffled deck.
func (m *Manager) NewGame(p *Player) *Game {
	deck := NewDeck(m.rng)
	deck.Shuffle()
	return m.newGame(p, deck)
}

func (m *Manager) newGame(p *Player, deck *Deck) *Game {
	g := NewGame(p, deck, m.rule)
	g.round = int(m.round.Inc())

	m.mu.RLock()
	fNew := m.onNewGameFunc
	fDealt := m.onCardDealtFunc
	m.mu.RUnlock()

	g.OnCardDealt(fDealt)
	if fNew != nil {
		fNew(g)
	}
	return g
}

func (m *Manager) PlayGame(ctx context.Context, p *Player, d Decider) (*Game, error) {
	return m.playGame(ctx, m.NewGame(p), d)
}

func (m *Manager) playGame(ctx context.Context, g *Game, d Decider) (*Game, error) {
	log.Ctx(ctx).Debug().Str("game_id", g.ID()).Str("player", g.Player().Name()).Msg("game started")
	if _, err := g.Play(ctx, d); err != nil {
		return g, err
	}
	if err := m.FinishGame(ctx, g); err != nil {
		return g, err
	}
	return g, nil
}

// PlayRounds plays rounds games in a row for the same player and stops at the
// first error.
func (m *Manager) PlayRounds(ctx context.Context, p *Player, d Decider, rounds int) ([]*Game, error) {
	if rounds <= 0 {
		return nil, ErrInvalidRounds
	}
	games := make([]*Game, 0, rounds)
	for i := 0; i < rounds; i++ {
		g, err := m.PlayGame(ctx, p, d)
		if err != nil {
			return games, err
		}
		games = append(games, g)
	}
	return games, nil
}

// FinishGame records a resolved game and updates the scoreboard.
func (m *Manager) FinishGame(ctx context.Context, g *Game) error {
	r, ok := g.Result()
	if !ok {
		return fmt.Errorf("finish game %s: %s", g.ID(), g.Status())
	}

	if err := m.store.SaveRecord(ctx, &model.Record{
		SessionID:   m.sessionID,
		GameID:      g.ID(),
		Round:       g.Round(),
		PlayerName:  g.Player().Name(),
		PlayerCards: g.Player().Cards().Strings(),
		DealerCards: g.Dealer().Cards().Strings(),
		PlayerTotal: g.Player().Total(),
		DealerTotal: g.Dealer().Total(),
		Result:      r.String(),
		PlayedAt:    time.Now(),
	}); err != nil {
		log.Ctx(ctx).Err(err).Str("game_id", g.ID()).Msg("save record failed")
		return err
	}

	switch r {
	case Win:
		m.wins.Inc()
	case Tie:
		m.ties.Inc()
	default:
		m.losses.Inc()
	}
	log.Ctx(ctx).Debug().
		Str("game_id", g.ID()).
		Str("result", r.String()).
		Int("player_total", g.Player().Total()).
		Int("dealer_total", g.Dealer().Total()).
		Msg("game finished")

	m.mu.RLock()
	f := m.onGameFinishFunc
	m.mu.RUnlock()
	if f != nil {
		f(g, r)
	}
	return nil
}

// Scoreboard is safe to call from another goroutine while a game is running.
func (m *Manager) Scoreboard() model.Tally {
	return model.Tally{
		Wins:   m.wins.Load(),
		Losses: m.losses.Load(),
		Ties:   m.ties.Load(),
	}
}

func (m *Manager) History(ctx context.Context, limit int) ([]model.Record, error) {
	return m.store.ListRecords(ctx, m.sessionID, limit)
}

func (m *Manager) Tally(ctx context.Context) (model.Tally, error) {
	return m.store.CountResults(ctx, m.sessionID)
}

func (m *Manager) FindRecord(ctx context.Context, gameID string) *model.Record {
	r, err := m.store.GetRecord(ctx, gameID)
	if err == nil {
		return r
	} else if model.IsNotFound(err) {
		log.Ctx(ctx).Debug().Str("game_id", gameID).Msg("record not found")
	} else {
		log.Ctx(ctx).Err(err).Str("game_id", gameID).Msg("get record failed")
	}
	return nil
}
