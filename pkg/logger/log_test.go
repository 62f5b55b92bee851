package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInit_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	Init(false, false)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Init(true, false)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewContext(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	bf := bytes.NewBuffer(nil)
	Init(true, false, bf)

	ctx := NewContext(context.Background(), map[string]interface{}{"session_id": "s1"})
	log.Ctx(ctx).Debug().Msg("hello")

	assert.Contains(t, bf.String(), `"session_id":"s1"`)
	assert.Contains(t, bf.String(), `"message":"hello"`)
}
