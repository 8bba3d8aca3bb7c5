// Package db provides database utilities shared by repositories, including
// transaction management and the carrier for request-scoped database handles.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key under which a scoped *gorm.DB travels. The row
// security middleware stores its context-bound transaction here so that every
// repository call in the request runs on the same pinned connection.
type txKey struct{}

// WithTx returns a context carrying tx. Repositories resolve it through
// GetTxFromContext.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext returns the scoped handle from ctx if present, otherwise
// defaultDB bound to ctx.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}

// TransactionManager runs functions inside a database transaction, exposing
// the transaction to repositories through the context.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn within a transaction. The transaction is
// rolled back if fn returns an error and committed otherwise.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}

// GetTx returns the transaction from ctx if available, otherwise the default DB.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	return GetTxFromContext(ctx, tm.db)
}
