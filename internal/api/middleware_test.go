package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyAuthRejectsMissingKey(t *testing.T) {
	h := APIKeyAuth("secret")(okHandler())

	req := httptest.NewRequest("GET", "/api/outcomes/abc", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without key, got %d", rec.Code)
	}
}

func TestAPIKeyAuthAcceptsValidKey(t *testing.T) {
	h := APIKeyAuth("secret")(okHandler())

	req := httptest.NewRequest("GET", "/api/outcomes/abc", nil)
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with valid key, got %d", rec.Code)
	}
}

func TestAPIKeyAuthNoOpWhenUnset(t *testing.T) {
	h := APIKeyAuth("")(okHandler())

	req := httptest.NewRequest("GET", "/api/outcomes/abc", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with empty configured key, got %d", rec.Code)
	}
}

func TestCORSPreflights(t *testing.T) {
	h := CORS(okHandler())

	req := httptest.NewRequest("OPTIONS", "/api/v1/assessments", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected Access-Control-Allow-Origin header")
	}
	if rec.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Error("expected Access-Control-Allow-Headers header")
	}
}
