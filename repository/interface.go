package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

//go:generate moq -out provider_mocks.go . Provider

// Readonly is the query subset of sqlx shared by *sqlx.DB and *sqlx.Tx
type Readonly interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Transaction adds the statements that modify rows
type Transaction interface {
	Readonly

	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

var (
	_ Readonly    = &sqlx.DB{}
	_ Transaction = &sqlx.Tx{}
)

// Provider puts a transaction or a readonly db into the context, repositories take it back out
type Provider interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
	Readonly(ctx context.Context) context.Context
}

type providerImpl struct {
	db *sqlx.DB
}

// NewProvider ...
func NewProvider(db *sqlx.DB) Provider {
	return &providerImpl{db: db}
}

// Transact commits when fn returns nil and rolls back otherwise.
// Calling it again inside fn joins the outer transaction.
func (p *providerImpl) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, nested := txFromContext(ctx); nested {
		return fn(ctx)
	}

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	committed = true
	return tx.Commit()
}

// Readonly ...
func (p *providerImpl) Readonly(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKeyDB, p.db)
}
