package play

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/psucodervn/blackjack/internal/config"
	"github.com/psucodervn/blackjack/internal/console"
	"github.com/psucodervn/blackjack/internal/game"
	"github.com/psucodervn/blackjack/internal/storage"
	"github.com/psucodervn/blackjack/internal/stringer"
	"github.com/psucodervn/blackjack/pkg/logger"
)

const historyLimit = 10

type options struct {
	name   string
	seed   string
	rounds int
}

func Command() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play blackjack against the dealer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "player name (env PLAYER_NAME)")
	cmd.Flags().StringVar(&opts.seed, "seed", "", "shuffle seed, time-based when empty (env SEED)")
	cmd.Flags().IntVarP(&opts.rounds, "rounds", "r", 0, "games to play in this session (env ROUNDS)")
	return cmd
}

// apply overrides cfg with the flags set on the command line.
func (o *options) apply(cmd *cobra.Command, cfg *config.PlayConfig) {
	if cmd.Flags().Changed("name") {
		cfg.PlayerName = o.name
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = o.seed
	}
	if cmd.Flags().Changed("rounds") {
		cfg.Rounds = o.rounds
	}
	cfg.PlayerName = stringer.Capitalize(strings.TrimSpace(cfg.PlayerName))
	if len(cfg.PlayerName) == 0 {
		cfg.PlayerName = "Player"
	}
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.ReadPlayConfig()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	opts.apply(cmd, &cfg)
	if cfg.Rounds <= 0 {
		return game.ErrInvalidRounds
	}

	seed, err := cfg.ResolveSeed(time.Now())
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(seed))

	store, err := storage.NewBadgerHoldStorage()
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Err(err).Msg("failed to close storage")
		}
	}()

	manager := game.NewManager(store, rng, &game.DefaultRule)
	ctx := logger.NewContext(cmd.Context(), map[string]interface{}{
		"session_id": manager.SessionID(),
		"seed":       seed,
	})

	out := cmd.OutOrStdout()
	presenter := console.NewPresenter(out)
	presenter.Attach(manager)

	// the prompt blocks on stdin, so an interrupt ends the process from here
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ch)
	go func() {
		<-ch
		sb := manager.Scoreboard()
		fmt.Fprintln(out)
		presenter.Summary(sb, nil)
		log.Ctx(ctx).Debug().Uint64("played", sb.Played()).Msg("interrupted")
		if err := store.Close(); err != nil {
			log.Err(err).Msg("failed to close storage")
		}
		os.Exit(0)
	}()

	log.Ctx(ctx).Debug().Str("player", cfg.PlayerName).Int("rounds", cfg.Rounds).Msg("session started")
	player := game.NewPlayer("player", cfg.PlayerName)
	prompter := console.NewPrompter(cmd.InOrStdin(), out)
	if _, err := manager.PlayRounds(ctx, player, prompter, cfg.Rounds); err != nil {
		if !errors.Is(err, console.ErrNoInput) {
			return err
		}
		fmt.Fprintln(out)
		log.Ctx(ctx).Debug().Msg("input closed, ending session")
	}

	tally, err := manager.Tally(ctx)
	if err != nil {
		return fmt.Errorf("count results: %w", err)
	}
	records, err := manager.History(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	presenter.Summary(tally, records)
	return nil
}
