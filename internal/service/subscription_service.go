package service

import (
	"context"

	"github.com/craftroast/backend/internal/model"
)

// SubscriptionService defines the business logic for newsletter
// subscriptions.
type SubscriptionService interface {
	// Subscribe sanitizes and stores a subscription, then relays the
	// notification email. An already-subscribed email is not an error.
	Subscribe(ctx context.Context, sub *model.Subscription) error
}
