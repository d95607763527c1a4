package repository

import (
	"context"
	"database/sql"
	"time"
)

const (
	readTimeout  = 3 * time.Second
	listTimeout  = 5 * time.Second
	writeTimeout = 3 * time.Second
)

// querier is satisfied by both *sql.DB and *sql.Tx so repositories can run
// inside a caller-owned transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// nullable converts an optional string into a driver value (NULL when nil).
func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// fromNull converts a scanned nullable column back into an optional string.
func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

// requireAffected returns sql.ErrNoRows when an UPDATE or DELETE matched nothing.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
