package model

import "time"

// Subscription represents a newsletter subscription.
// Email is unique across all subscriptions; submitting an email that is
// already subscribed is a silent no-op, not an error.
type Subscription struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
