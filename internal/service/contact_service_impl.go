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

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo   repository.ContactRepository
	mailer mailer.Mailer
}

// NewContactService creates a ContactService backed by the given repository
// and mailer.
func NewContactService(repo repository.ContactRepository, m mailer.Mailer) ContactService {
	return &contactServiceImpl{repo: repo, mailer: m}
}

// Submit strips markup from every field, persists the message and then
// relays the notification email. Persistence success strictly gates the
// send: a StoreError means no email was attempted.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.Name = sanitize.Text(msg.Name)
	msg.Email = sanitize.Text(msg.Email)
	msg.Message = sanitize.Text(msg.Message)
	msg.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, msg); err != nil {
		return &StoreError{Entity: "contact message", Err: err}
	}

	body := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s",
		msg.Name, msg.Email, msg.Message)
	if err := s.mailer.Send(ctx, "New Contact Form Submission", body); err != nil {
		return &DispatchError{Err: err}
	}
	return nil
}
