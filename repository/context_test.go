package repository

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestGetTx_Without_Transaction(t *testing.T) {
	assert.PanicsWithValue(t, "repository: no transaction in context", func() {
		GetTx(newContext())
	})
}

func TestGetReadonly_Without_DB(t *testing.T) {
	assert.PanicsWithValue(t, "repository: no readonly db in context", func() {
		GetReadonly(newContext())
	})
}

func TestGetReadonly_Prefers_Transaction(t *testing.T) {
	db := &sqlx.DB{}
	tx := &sqlx.Tx{}

	p := NewProvider(db)
	ctx := p.Readonly(newContext())
	assert.Same(t, db, GetReadonly(ctx))

	ctx = withTx(ctx, tx)
	assert.Same(t, tx, GetReadonly(ctx))
	assert.Same(t, tx, GetTx(ctx))
}
