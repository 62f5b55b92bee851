package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/psucodervn/blackjack/internal/game"
)

var ErrNoInput = errors.New("input closed")

// Prompter reads hit/stand answers line by line and asks again until it gets
// one it understands.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *Prompter) HitOrStand(ctx context.Context, h *game.Hand) (game.Decision, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Stand, err
		}
		fmt.Fprint(p.out, "(h) to hit, or (s) to stand: ")
		line, err := p.readLine()
		if err != nil {
			return game.Stand, err
		}
		d, ok := ParseDecision(line)
		if ok {
			return d, nil
		}
		log.Ctx(ctx).Debug().Str("input", line).Msg("invalid decision")
		fmt.Fprintln(p.out, "Please answer h or s.")
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}
	return p.in.Text(), nil
}

// ParseDecision accepts a single h or s, ignoring case and surrounding spaces.
func ParseDecision(s string) (game.Decision, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h":
		return game.Hit, true
	case "s":
		return game.Stand, true
	default:
		return game.Stand, false
	}
}
