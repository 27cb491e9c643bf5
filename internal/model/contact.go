package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// Rows are append-only: once stored they are never updated or deleted.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
