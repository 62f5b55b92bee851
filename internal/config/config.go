package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cast"
)

type PlayConfig struct {
	PlayerName string `split_words:"true" default:"Player"`
	// Seed of the process-wide generator. Empty means time-based.
	Seed   string `split_words:"true"`
	Rounds int    `split_words:"true" default:"1"`
}

func ReadPlayConfig() (PlayConfig, error) {
	var cfg PlayConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func MustReadPlayConfig() PlayConfig {
	var cfg PlayConfig
	envconfig.MustProcess("", &cfg)
	return cfg
}

// ResolveSeed parses Seed, falling back to now when it is empty.
func (c PlayConfig) ResolveSeed(now time.Time) (int64, error) {
	s := strings.TrimSpace(c.Seed)
	if len(s) == 0 {
		return now.UnixNano(), nil
	}
	seed, err := cast.ToInt64E(s)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", c.Seed, err)
	}
	return seed, nil
}
