package game

import (
	"errors"
)

var (
	ErrDeckExhausted   = errors.New("deck has gone through all cards")
	ErrGameFinished    = errors.New("game already finished")
	ErrUnknownDecision = errors.New("unknown decision")
	ErrNoDecider       = errors.New("no decision source")
	ErrInvalidRounds   = errors.New("rounds must be positive")
)
