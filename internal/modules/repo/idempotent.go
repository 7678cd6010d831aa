package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DefaultListLimit and MaxListLimit bound offset/limit listings.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// IsUniqueViolation reports whether err comes from a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// withKeyLock runs fn in a transaction that holds a transaction-scoped
// advisory lock on key. Two callers with the same key are serialized until
// the first one commits or rolls back.
func withKeyLock(ctx context.Context, db *gorm.DB, key string, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
			return err
		}
		return fn(tx)
	})
}

// findOrCreate returns the first row matched by find, or inserts row when
// none exists. The lookup and the insert happen under the same key lock, so
// concurrent identical requests yield a single row.
func findOrCreate[T any](ctx context.Context, db *gorm.DB, key string, find func(tx *gorm.DB) *gorm.DB, row *T) (*T, bool, error) {
	var (
		out     *T
		created bool
	)
	err := withKeyLock(ctx, db, key, func(tx *gorm.DB) error {
		var existing T
		err := find(tx).First(&existing).Error
		if err == nil {
			out = &existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		out, created = row, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, created, nil
}

func clampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return offset, limit
}
