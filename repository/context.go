package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type ctxKey int

const (
	ctxKeyTx ctxKey = iota + 1
	ctxKeyDB
)

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, ctxKeyTx, tx)
}

func txFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(ctxKeyTx).(*sqlx.Tx)
	return tx, ok
}

// GetTx returns the transaction started by Provider.Transact, panics outside of one
func GetTx(ctx context.Context) Transaction {
	tx, ok := txFromContext(ctx)
	if !ok {
		panic("repository: no transaction in context")
	}
	return tx
}

// GetReadonly prefers the running transaction so reads inside Transact see its own writes
func GetReadonly(ctx context.Context) Readonly {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}

	db, ok := ctx.Value(ctxKeyDB).(*sqlx.DB)
	if !ok {
		panic("repository: no readonly db in context")
	}
	return db
}
