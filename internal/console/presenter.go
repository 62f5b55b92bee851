package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/psucodervn/blackjack/internal/game"
	"github.com/psucodervn/blackjack/internal/model"
	"github.com/psucodervn/blackjack/internal/stringer"
)

// Presenter prints game events for a human at a terminal. Its methods match
// the manager's callbacks.
type Presenter struct {
	out io.Writer
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// Attach registers the presenter on every callback of m.
func (p *Presenter) Attach(m *game.Manager) {
	m.OnNewGame(p.NewGame)
	m.OnCardDealt(p.CardDealt)
	m.OnGameFinish(p.GameFinished)
}

func (p *Presenter) NewGame(g *game.Game) {
	fmt.Fprintln(p.out, pterm.Bold.Sprintf("--- Round %d ---", g.Round()))
}

func (p *Presenter) CardDealt(g *game.Game, h *game.Hand, c game.Card) {
	if h.IsDealer() {
		fmt.Fprintf(p.out, "The dealer flips %s.\tThey now have: %d\n", CardString(c), h.Total())
		return
	}
	fmt.Fprintf(p.out, "%s was dealt %s.\tNow at: %d\n", h.Name(), CardString(c), h.Total())
}

func (p *Presenter) GameFinished(g *game.Game, r game.Result) {
	if g.Player().IsBust() {
		fmt.Fprintln(p.out, "You went bust.")
	} else if g.Dealer().IsBust() {
		fmt.Fprintln(p.out, "The dealer went bust!")
	}
	switch r {
	case game.Win:
		fmt.Fprintln(p.out, pterm.LightGreen("You win!"))
	case game.Tie:
		fmt.Fprintln(p.out, pterm.LightYellow("It's a tie."))
	default:
		fmt.Fprintln(p.out, pterm.LightRed("You lose!"))
	}
}

func (p *Presenter) Summary(t model.Tally, records []model.Record) {
	if t.Played() < 2 {
		return
	}
	fmt.Fprintln(p.out, pterm.Bold.Sprint("Session summary"))
	fmt.Fprintf(p.out, "Played: %s, won: %s (%s), lost: %s, tied: %s\n",
		stringer.FormatCount(t.Played()),
		stringer.FormatCount(t.Wins), stringer.FormatPercent(t.Wins, t.Played()),
		stringer.FormatCount(t.Losses),
		stringer.FormatCount(t.Ties))
	for _, r := range records {
		fmt.Fprintf(p.out, " #%d %-4s %2d vs %2d  [%s] vs [%s]\n",
			r.Round, r.Result, r.PlayerTotal, r.DealerTotal,
			strings.Join(r.PlayerCards, " "), strings.Join(r.DealerCards, " "))
	}
}

func (p *Presenter) Rules(rule game.Rule) {
	fmt.Fprintln(p.out, rule.Text())
}

// CardString renders the card code, red for hearts and diamonds.
func CardString(c game.Card) string {
	if c.Suit.IsRed() {
		return pterm.LightRed(c.String())
	}
	return pterm.Bold.Sprint(c.String())
}
