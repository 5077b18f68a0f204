package postgres

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// Executor is satisfied by both *sqlx.DB and *sqlx.Tx.
type Executor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

// NamedExec runs a :named statement and returns the affected row count.
func NamedExec(ctx context.Context, q Executor, query string, arg interface{}) (int64, error) {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return 0, err
	}

	result, err := q.ExecContext(ctx, q.Rebind(bound), args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func NamedSelect(ctx context.Context, q Executor, dest interface{}, query string, arg interface{}) error {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return err
	}
	return q.SelectContext(ctx, dest, q.Rebind(bound), args...)
}

// NamedGet scans exactly one row; sql.ErrNoRows is returned untouched.
func NamedGet(ctx context.Context, q Executor, dest interface{}, query string, arg interface{}) error {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return err
	}
	return q.GetContext(ctx, dest, q.Rebind(bound), args...)
}

func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
