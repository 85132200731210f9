// File: internal/domain/repository/postgres/transaction.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expensio-labs/expense-platform/auth-service/internal/domain/repository"
)

// txKey is the context key carrying an open transaction.
type txKey struct{}

// querier is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx.
// Repositories resolve it per call so the same code runs inside and outside
// a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// conn returns the transaction from ctx if one is open, the pool otherwise.
func conn(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// TxManagerPostgres implements repository.TxManager on a pgx pool.
type TxManagerPostgres struct {
	pool *pgxpool.Pool
}

func NewTxManagerPostgres(pool *pgxpool.Pool) *TxManagerPostgres {
	return &TxManagerPostgres{pool: pool}
}

// WithinTransaction runs fn inside a transaction carried on the context.
// A nested call joins the outer transaction instead of opening another.
func (tm *TxManagerPostgres) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := tm.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("error: %v, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

var _ repository.TxManager = (*TxManagerPostgres)(nil)
