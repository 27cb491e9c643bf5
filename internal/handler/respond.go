package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/craftroast/backend/internal/service"
)

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondMessage writes a success body of the form {"message": ...}.
func respondMessage(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// respondError writes an error body of the form {"error": ...}.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondServiceError maps a submit-pipeline failure to its HTTP response.
// Store failures and dispatch failures both map to 500 but carry distinct
// messages; the dispatch message includes the upstream relay error.
func respondServiceError(w http.ResponseWriter, err error) {
	var se *service.StoreError
	if errors.As(err, &se) {
		slog.Error("persistence failed", "entity", se.Entity, "error", se.Err)
		respondError(w, http.StatusInternalServerError, "Failed to save "+se.Entity)
		return
	}

	var de *service.DispatchError
	if errors.As(err, &de) {
		slog.Error("notification dispatch failed", "error", de.Err)
		respondError(w, http.StatusInternalServerError, "Failed to send email: "+de.Err.Error())
		return
	}

	slog.Error("unexpected submit failure", "error", err)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// emailRe is a deliberately permissive shape check, not RFC validation:
// some non-whitespace, an @, more non-whitespace, a dot, a final run.
var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func validEmail(s string) bool {
	return emailRe.MatchString(s)
}
