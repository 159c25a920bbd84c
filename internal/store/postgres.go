package store

import (
	"context"
	"errors"
	"fmt"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/narenmd/ledgerlite/internal/model"
)

// Store wraps the Postgres pool backing the ledger. Each pooled connection
// gets the shopspring decimal codec so NUMERIC scans stay exact.
type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, connString string) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

// InTx runs fn inside a repeatable-read transaction and guarantees the
// transaction is closed on every exit path: commit when fn returns nil,
// rollback otherwise. A transaction never spans two calls.
func (s *Store) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return fmt.Errorf("tx begin failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetAccount retrieves a single account snapshot by id. Absence is reported
// through found, not an error.
func (s *Store) GetAccount(ctx context.Context, id int64) (model.Account, bool, error) {
	var account model.Account
	err := s.Pool.QueryRow(ctx, "SELECT id, amount FROM accounts WHERE id = $1", id).
		Scan(&account.ID, &account.Amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, false, nil
	}
	if err != nil {
		return model.Account{}, false, err
	}
	return account, true, nil
}

// CreateAccount inserts a new account with a zero balance and returns the
// store-assigned id.
func (s *Store) CreateAccount(ctx context.Context) (int64, error) {
	var id int64
	err := s.Pool.QueryRow(ctx, "INSERT INTO accounts DEFAULT VALUES RETURNING id").Scan(&id)
	return id, err
}
