package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func lookupPage(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	NewPageHandler().Lookup(rec, req)
	return rec
}

func TestPageHandler_Lookup_KnownPaths(t *testing.T) {
	cases := map[string]string{
		"/":         "Home",
		"/products": "Products",
		"/contact":  "ContactUs",
		"/aboutUs":  "AboutUs",
	}
	for path, component := range cases {
		rec := lookupPage(t, "/api/page?path="+path)
		if rec.Code != http.StatusOK {
			t.Errorf("path %q: expected 200, got %d", path, rec.Code)
			continue
		}
		if got := decodeBody(t, rec)["component"]; got != component {
			t.Errorf("path %q: expected component %q, got %q", path, component, got)
		}
	}
}

func TestPageHandler_Lookup_UnknownPath(t *testing.T) {
	rec := lookupPage(t, "/api/page?path=/unknown")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Page not found" {
		t.Errorf("unexpected error message %q", got)
	}
}

func TestPageHandler_Lookup_MissingParam(t *testing.T) {
	rec := lookupPage(t, "/api/page")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing path param, got %d", rec.Code)
	}
}

// Lookup is exact-match only: no trailing-slash normalization.
func TestPageHandler_Lookup_NoNormalization(t *testing.T) {
	for _, path := range []string{"/products/", "/Products", "/contact%20"} {
		rec := lookupPage(t, "/api/page?path="+path)
		if rec.Code != http.StatusNotFound {
			t.Errorf("path %q: expected 404, got %d", path, rec.Code)
		}
	}
}
