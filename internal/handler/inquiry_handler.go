package handler

import (
	"encoding/json"
	"net/http"

	"github.com/craftroast/backend/internal/model"
	"github.com/craftroast/backend/internal/service"
)

// InquiryHandler handles product inquiry submission.
type InquiryHandler struct {
	inquiryService service.InquiryService
}

// NewInquiryHandler creates an InquiryHandler with the given service.
func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// inquiryRequest is the expected JSON body for POST /api/inquiry.
type inquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Product string `json:"product"`
	Message string `json:"message"`
}

// Submit handles POST /api/inquiry. All four fields are required and email
// must pass the shape check.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req inquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Product == "" || req.Message == "" {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if !validEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "Invalid email")
		return
	}

	inq := &model.ProductInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Product: req.Product,
		Message: req.Message,
	}
	if err := h.inquiryService.Submit(r.Context(), inq); err != nil {
		respondServiceError(w, err)
		return
	}

	respondMessage(w, "Inquiry submitted successfully")
}
