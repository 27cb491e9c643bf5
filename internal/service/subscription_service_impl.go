package service

import (
	"context"
	"time"

	"github.com/craftroast/backend/internal/mailer"
	"github.com/craftroast/backend/internal/model"
	"github.com/craftroast/backend/internal/repository"
	"github.com/craftroast/backend/internal/sanitize"
)

// subscriptionServiceImpl is the production implementation of
// SubscriptionService.
type subscriptionServiceImpl struct {
	repo   repository.SubscriptionRepository
	mailer mailer.Mailer
}

// NewSubscriptionService creates a SubscriptionService backed by the given
// repository and mailer.
func NewSubscriptionService(repo repository.SubscriptionRepository, m mailer.Mailer) SubscriptionService {
	return &subscriptionServiceImpl{repo: repo, mailer: m}
}

// Subscribe persists the subscription (insert-or-ignore on duplicate
// email) and then relays the notification email. The email is sent even
// for a duplicate: the caller cannot tell the two cases apart and the
// shop treats both as a successful signup.
func (s *subscriptionServiceImpl) Subscribe(ctx context.Context, sub *model.Subscription) error {
	sub.Email = sanitize.Text(sub.Email)
	sub.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, sub); err != nil {
		return &StoreError{Entity: "subscription", Err: err}
	}

	if err := s.mailer.Send(ctx, "New Newsletter Subscription",
		"New subscription from: "+sub.Email); err != nil {
		return &DispatchError{Err: err}
	}
	return nil
}
