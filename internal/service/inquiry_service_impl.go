package service

import (
	"context"
	"fmt"
	"time"

	"github.com/craftroast/backend/internal/mailer"
	"github.com/craftroast/backend/internal/model"
	"github.com/craftroast/backend/internal/repository"
	"github.com/craftroast/backend/internal/sanitize"
)

// inquiryServiceImpl is the production implementation of InquiryService.
type inquiryServiceImpl struct {
	repo   repository.InquiryRepository
	mailer mailer.Mailer
}

// NewInquiryService creates an InquiryService backed by the given
// repository and mailer.
func NewInquiryService(repo repository.InquiryRepository, m mailer.Mailer) InquiryService {
	return &inquiryServiceImpl{repo: repo, mailer: m}
}

// Submit strips markup from every field, persists the inquiry and then
// relays the notification email. Persistence success strictly gates the
// send.
func (s *inquiryServiceImpl) Submit(ctx context.Context, inq *model.ProductInquiry) error {
	inq.Name = sanitize.Text(inq.Name)
	inq.Email = sanitize.Text(inq.Email)
	inq.Product = sanitize.Text(inq.Product)
	inq.Message = sanitize.Text(inq.Message)
	inq.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, inq); err != nil {
		return &StoreError{Entity: "product inquiry", Err: err}
	}

	body := fmt.Sprintf("Name: %s\nEmail: %s\nProduct: %s\nMessage: %s",
		inq.Name, inq.Email, inq.Product, inq.Message)
	if err := s.mailer.Send(ctx, "New Product Inquiry", body); err != nil {
		return &DispatchError{Err: err}
	}
	return nil
}
