package repository

import (
	"context"
	"database/sql"

	"github.com/craftroast/backend/internal/model"
)

// SubscriptionRepository defines the persistence interface for subscriptions.
type SubscriptionRepository interface {
	Save(ctx context.Context, sub *model.Subscription) error
}

// SQLiteSubscriptionRepository is the SQLite implementation of
// SubscriptionRepository.
type SQLiteSubscriptionRepository struct {
	db *sql.DB
}

// NewSQLiteSubscriptionRepository creates a SQLiteSubscriptionRepository
// backed by db.
func NewSQLiteSubscriptionRepository(db *sql.DB) *SQLiteSubscriptionRepository {
	return &SQLiteSubscriptionRepository{db: db}
}

var _ SubscriptionRepository = (*SQLiteSubscriptionRepository)(nil)

// Save inserts a subscriptions row. An email that is already subscribed is
// ignored: no error, no second row, and sub.ID is left at zero.
func (r *SQLiteSubscriptionRepository) Save(ctx context.Context, sub *model.Subscription) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO subscriptions (email, created_at) VALUES (?, ?)`,
		sub.Email, sub.CreatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return nil // duplicate email, silently ignored
	}
	sub.ID, err = res.LastInsertId()
	return err
}
