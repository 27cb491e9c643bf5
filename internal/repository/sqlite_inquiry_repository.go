package repository

import (
	"context"
	"database/sql"

	"github.com/craftroast/backend/internal/model"
)

// InquiryRepository defines the persistence interface for product inquiries.
type InquiryRepository interface {
	Save(ctx context.Context, inq *model.ProductInquiry) error
}

// SQLiteInquiryRepository is the SQLite implementation of InquiryRepository.
type SQLiteInquiryRepository struct {
	db *sql.DB
}

// NewSQLiteInquiryRepository creates a SQLiteInquiryRepository backed by db.
func NewSQLiteInquiryRepository(db *sql.DB) *SQLiteInquiryRepository {
	return &SQLiteInquiryRepository{db: db}
}

var _ InquiryRepository = (*SQLiteInquiryRepository)(nil)

// Save appends a new product_inquiries row and populates inq.ID.
func (r *SQLiteInquiryRepository) Save(ctx context.Context, inq *model.ProductInquiry) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO product_inquiries (name, email, product, message, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		inq.Name, inq.Email, inq.Product, inq.Message, inq.CreatedAt,
	)
	if err != nil {
		return err
	}
	inq.ID, err = res.LastInsertId()
	return err
}
