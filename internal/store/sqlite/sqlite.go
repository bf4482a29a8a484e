// Package sqlite implements store.Store on a single SQLite file using
// database/sql and the mattn/go-sqlite3 driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            INTEGER   PRIMARY KEY AUTOINCREMENT,
	username      TEXT      NOT NULL UNIQUE,
	password_hash TEXT      NOT NULL,
	role          TEXT      NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user')),
	is_active     BOOLEAN   NOT NULL DEFAULT 1,
	created_at    TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS students (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	name   TEXT    NOT NULL,
	email  TEXT    NOT NULL UNIQUE,
	age    INTEGER NOT NULL,
	course TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS students_name_idx ON students (name);
`

// Memory opens a private in-memory database.
const Memory = ":memory:"

type Store struct {
	DB *sql.DB
}

// New opens path and creates the schema if needed.
func New(path string) (*Store, error) {
	dsn := path
	if path != Memory {
		dsn = path + "?_busy_timeout=5000"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}
	// every connection to :memory: is a separate database
	if path == Memory {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create schema: %w", err)
	}
	return &Store{DB: db}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func isDuplicate(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
