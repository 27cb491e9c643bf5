package model

import "time"

// ProductInquiry represents a question about a specific product submitted
// via the inquiry form.
type ProductInquiry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Product   string    `json:"product"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
