package handler

import (
	"net/http"
	"slices"

	"github.com/craftroast/backend/internal/repository"
)

// Handler carries the cross-cutting pieces shared by all endpoints: the
// database handle for health checks and the CORS origin allow-list.
type Handler struct {
	db             repository.DB
	allowedOrigins []string
}

// New creates a Handler with the given database and CORS allow-list.
func New(db repository.DB, allowedOrigins []string) *Handler {
	return &Handler{db: db, allowedOrigins: allowedOrigins}
}

// CORS is middleware that grants cross-origin access to origins on the
// allow-list only. OPTIONS preflights are answered directly.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && slices.Contains(h.allowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NotFound answers any request that matched no registered route.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Route not found")
}
