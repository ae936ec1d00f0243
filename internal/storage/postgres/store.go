// Package postgres implements the storage contract on a pgx connection
// pool. It mirrors the memory driver's semantics; selection between the two
// happens in configuration.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"laborlink/internal/config"
	"laborlink/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		strings.TrimSpace(cfg.DBHost),
		strings.TrimSpace(cfg.DBPort),
		strings.TrimSpace(cfg.DBUser),
		cfg.DBPassword,
		strings.TrimSpace(cfg.DBName),
		strings.TrimSpace(cfg.DBSSLMode),
	)

	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("nil pool")
	}
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	if s == nil || s.pool == nil {
		return nil
	}
	s.pool.Close()
	return nil
}

// mapNoRows translates pgx's absence error into the storage sentinel.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}

// uniqueViolation is the Postgres error code for a unique-constraint hit.
const uniqueViolation = "23505"

// mapConflict translates a unique-constraint violation into the storage
// duplicate sentinel; anything else passes through.
func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return storage.ErrDuplicate
	}
	return err
}

func joinSet(set []string) string {
	return strings.Join(set, ", ")
}

func joinAnd(conds []string) string {
	return strings.Join(conds, " AND ")
}
