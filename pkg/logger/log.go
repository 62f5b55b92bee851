package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global logger. Logs go to stderr so they never mix with
// the game on stdout; below debug level only warnings and errors are shown.
func Init(debug bool, pretty bool, additionalWriters ...io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if pretty {
		additionalWriters = append(additionalWriters, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		additionalWriters = append(additionalWriters, os.Stderr)
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(additionalWriters...)).With().Caller().Logger()
}

func InitWithConfig(cfg Config) {
	Init(cfg.Debug, cfg.Pretty)
}

func InitFromEnv() {
	var cfg Config
	envconfig.MustProcess("LOG", &cfg)
	InitWithConfig(cfg)
}

// NewContext returns a copy of ctx carrying the global logger with fields
// attached, for use with log.Ctx.
func NewContext(ctx context.Context, fields map[string]interface{}) context.Context {
	l := log.Logger.With().Fields(fields).Logger()
	return l.WithContext(ctx)
}
