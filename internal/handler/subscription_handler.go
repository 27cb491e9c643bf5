package handler

import (
	"encoding/json"
	"net/http"

	"github.com/craftroast/backend/internal/model"
	"github.com/craftroast/backend/internal/service"
)

// SubscriptionHandler handles newsletter signups.
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

// NewSubscriptionHandler creates a SubscriptionHandler with the given
// service.
func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// subscribeRequest is the expected JSON body for POST /api/subscribe.
type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/subscribe. Subscribing an email that is
// already on the list returns the same success response as a new signup.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	if !validEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "Invalid email")
		return
	}

	sub := &model.Subscription{Email: req.Email}
	if err := h.subscriptionService.Subscribe(r.Context(), sub); err != nil {
		respondServiceError(w, err)
		return
	}

	respondMessage(w, "Subscription successful")
}
