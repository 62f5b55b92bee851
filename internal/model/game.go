package model

import (
	"time"
)

const (
	ResultWin  = "Win"
	ResultLose = "Lose"
	ResultTie  = "Tie"
)

type (
	// Record is one finished game of a session.
	Record struct {
		ID          uint64 `badgerhold:"key"`
		SessionID   string `badgerhold:"index"`
		GameID      string `badgerhold:"index"`
		Round       int
		PlayerName  string
		PlayerCards []string
		DealerCards []string
		PlayerTotal int
		DealerTotal int
		Result      string `badgerhold:"index"`
		PlayedAt    time.Time
	}

	Tally struct {
		Wins   uint64
		Losses uint64
		Ties   uint64
	}
)

func (t Tally) Played() uint64 {
	return t.Wins + t.Losses + t.Ties
}
