package repository

import (
	"context"
	"database/sql"

	"github.com/craftroast/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
}

// SQLiteContactRepository is the SQLite implementation of ContactRepository.
type SQLiteContactRepository struct {
	db *sql.DB
}

// NewSQLiteContactRepository creates a SQLiteContactRepository backed by db.
func NewSQLiteContactRepository(db *sql.DB) *SQLiteContactRepository {
	return &SQLiteContactRepository{db: db}
}

var _ ContactRepository = (*SQLiteContactRepository)(nil)

// Save appends a new contact_messages row and populates msg.ID.
func (r *SQLiteContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, message, created_at)
		 VALUES (?, ?, ?, ?)`,
		msg.Name, msg.Email, msg.Message, msg.CreatedAt,
	)
	if err != nil {
		return err
	}
	msg.ID, err = res.LastInsertId()
	return err
}
