package repository

import (
	"context"
	"fmt"

	"customer-crm/pkg/database"

	"go.uber.org/zap"
)

// Transactor runs fn inside a database transaction. fn receives repositories
// bound to that transaction; returning an error rolls everything back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(tx *Repository) error) error
}

type pgxTransactor struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactor(db database.PgxIface, log *zap.Logger) Transactor {
	return &pgxTransactor{
		db:  db,
		log: log.With(zap.String("repository", "transaction")),
	}
}

func (t *pgxTransactor) WithinTx(ctx context.Context, fn func(tx *Repository) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		t.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	// Roll back on panic, then let Recover middleware see it.
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(newRepository(tx, t.log)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			t.log.Error("Failed to roll back transaction", zap.Error(rbErr))
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		t.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
