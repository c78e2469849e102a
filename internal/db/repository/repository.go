// Package repository implements the trivia store interfaces over Postgres
// via pgx. Repositories receive an explicit connection handle; nothing is
// process-global.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the slice of pgx behavior the repositories need. It is satisfied
// by *pgxpool.Pool and by pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
