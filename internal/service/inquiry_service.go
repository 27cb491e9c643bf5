package service

import (
	"context"

	"github.com/craftroast/backend/internal/model"
)

// InquiryService defines the business logic for product inquiries.
type InquiryService interface {
	// Submit sanitizes, stores and relays a product inquiry. inq.ID and
	// inq.CreatedAt are populated by the implementation.
	Submit(ctx context.Context, inq *model.ProductInquiry) error
}
