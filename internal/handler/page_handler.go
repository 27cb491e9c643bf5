package handler

import "net/http"

// pageRoutes maps logical front-end paths to the component descriptor the
// router should render. Defined at startup, never mutated; lookup is exact
// string match with no normalization.
var pageRoutes = map[string]string{
	"/":         "Home",
	"/products": "Products",
	"/contact":  "ContactUs",
	"/aboutUs":  "AboutUs",
}

// PageHandler serves the static page-route lookup.
type PageHandler struct{}

// NewPageHandler creates a PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Lookup handles GET /api/page?path=<string>.
func (h *PageHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")

	component, ok := pageRoutes[path]
	if !ok {
		respondError(w, http.StatusNotFound, "Page not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"component": component})
}
