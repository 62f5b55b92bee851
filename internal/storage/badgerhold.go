package storage

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/psucodervn/blackjack/internal/model"
)

// BadgerHoldStorage keeps the records of the current session. It runs badger
// in memory, so nothing outlives the process.
type BadgerHoldStorage struct {
	store *badgerhold.Store
}

func NewBadgerHoldStorage() (*BadgerHoldStorage, error) {
	opts := badgerhold.DefaultOptions
	opts.Dir = ""
	opts.ValueDir = ""
	opts.InMemory = true
	opts.NumVersionsToKeep = 1
	opts.Logger = nil
	store, err := badgerhold.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerHoldStorage{
		store: store,
	}, nil
}

func MustNewBadgerHoldStorage() *BadgerHoldStorage {
	s, err := NewBadgerHoldStorage()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *BadgerHoldStorage) Close() error {
	return b.store.Close()
}

func (b *BadgerHoldStorage) SaveRecord(ctx context.Context, r *model.Record) error {
	return b.store.Insert(badgerhold.NextSequence(), r)
}

func (b *BadgerHoldStorage) GetRecord(ctx context.Context, gameID string) (*model.Record, error) {
	var r model.Record
	err := b.store.FindOne(&r, badgerhold.Where("GameID").Eq(gameID))
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRecords returns the latest records of a session, newest first.
func (b *BadgerHoldStorage) ListRecords(ctx context.Context, sessionID string, limit int) ([]model.Record, error) {
	var records []model.Record
	q := badgerhold.Where("SessionID").Eq(sessionID).SortBy("Round").Reverse()
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := b.store.Find(&records, q)
	return records, err
}

func (b *BadgerHoldStorage) CountResults(ctx context.Context, sessionID string) (model.Tally, error) {
	var t model.Tally
	for result, n := range map[string]*uint64{
		model.ResultWin:  &t.Wins,
		model.ResultLose: &t.Losses,
		model.ResultTie:  &t.Ties,
	} {
		cnt, err := b.store.Count(&model.Record{}, badgerhold.Where("SessionID").Eq(sessionID).And("Result").Eq(result))
		if err != nil {
			return model.Tally{}, err
		}
		*n = cnt
	}
	return t, nil
}
