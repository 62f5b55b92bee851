package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psucodervn/blackjack/internal/game"
)

func TestParseDecision(t *testing.T) {
	tests := []struct {
		in     string
		want   game.Decision
		wantOk bool
	}{
		{in: "h", want: game.Hit, wantOk: true},
		{in: " S \r", want: game.Stand, wantOk: true},
		{in: "H", want: game.Hit, wantOk: true},
		{in: "hit", wantOk: false},
		{in: "", wantOk: false},
		{in: "x", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDecision(tt.in)
			if ok != tt.wantOk {
				t.Fatalf("ParseDecision() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("ParseDecision() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrompter_HitOrStand(t *testing.T) {
	out := bytes.NewBuffer(nil)
	p := NewPrompter(strings.NewReader("what\n\nh\ns\n"), out)
	ctx := context.Background()

	d, err := p.HitOrStand(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, game.Hit, d)
	assert.Equal(t, 3, strings.Count(out.String(), "(h) to hit, or (s) to stand: "))
	assert.Equal(t, 2, strings.Count(out.String(), "Please answer h or s."))

	d, err = p.HitOrStand(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, game.Stand, d)

	_, err = p.HitOrStand(ctx, nil)
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestPrompter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPrompter(strings.NewReader("h\n"), bytes.NewBuffer(nil))
	_, err := p.HitOrStand(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
