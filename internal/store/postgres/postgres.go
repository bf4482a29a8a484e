// Package postgres implements store.Store on top of a pgx pool.
package postgres

import (
	"context"

	"student-registry/internal/database"
)

type Store struct {
	db database.DB
}

func New(db database.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close() error {
	s.db.Close()
	return nil
}
