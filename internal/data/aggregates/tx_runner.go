package aggregates

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
)

// TxRunner provides a shared transaction boundary primitive.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

// NewGormTxRunner returns a transaction runner backed by GORM transactions.
// opts may be nil for the driver default isolation.
func NewGormTxRunner(db *gorm.DB, opts *sql.TxOptions) TxRunner {
	return &gormTxRunner{db: db, opts: opts}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return errors.New("transaction runner has nil db")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var opts []*sql.TxOptions
	if r.opts != nil {
		opts = append(opts, r.opts)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	}, opts...)
}

// Within joins dbc.Tx when the caller already holds a transaction and opens a
// new one otherwise.
func Within(runner TxRunner, dbc dbctx.Context, fn func(dbc dbctx.Context) error) error {
	if dbc.Tx != nil {
		return fn(dbc)
	}
	return runner.InTx(dbc.Ctx, fn)
}
