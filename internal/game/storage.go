package game

import (
	"context"

	"github.com/psucodervn/blackjack/internal/model"
)

type Storage interface {
	SaveRecord(ctx context.Context, r *model.Record) error
	GetRecord(ctx context.Context, gameID string) (*model.Record, error)
	ListRecords(ctx context.Context, sessionID string, limit int) ([]model.Record, error)
	CountResults(ctx context.Context, sessionID string) (model.Tally, error)
}
