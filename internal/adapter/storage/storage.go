package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/port"
	_ "modernc.org/sqlite"
)

var _ port.StateStore = (*StateStore)(nil)

type sqldb interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
	Close() error
}

// StateStore is the durable local storage behind the cart snapshot and
// the theme preference: a single-file sqlite database holding one
// key-value table. Writes are synchronous.
type StateStore struct {
	sqldb sqldb
}

func NewStateStore(ctx context.Context, path string) (StateStore, error) {
	const op = "StateStore"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return StateStore{}, fmt.Errorf("%s: %w", op, err)
	}

	s := StateStore{db}
	if err := s.init(ctx); err != nil {
		return StateStore{}, err
	}

	slog.Info("state database is available", "op", op, "path", path)
	return s, nil
}

func (s StateStore) init(ctx context.Context) error {
	const op = "StateStore.init"

	if err := s.sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: state database unavailable: %w", op, err)
	}

	query := `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	if _, err := s.sqldb.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%s: failed to ensure schema: %w", op, err)
	}
	return nil
}

func (s StateStore) Read(
	ctx context.Context, key string,
) (value string, ok bool, err error) {
	const op = "StateStore.Read"

	if err := ctx.Err(); err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT value FROM kv WHERE key = ?;`
	err = s.sqldb.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return value, true, nil
}

func (s StateStore) Write(ctx context.Context, key, value string) error {
	const op = "StateStore.Write"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;
	`
	if _, err := s.sqldb.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s StateStore) Close() {
	const op = "StateStore.Close"
	log := slog.With("op", op)

	log.Info("closing state database...")

	if err := s.sqldb.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("state database is closed")
}
