// Package api implements the hosted Carescope REST API.
// It provides submission and read endpoints backed by Postgres and blob storage.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/carescope/carescope/internal/intake"
	"github.com/carescope/carescope/internal/partner"
	"github.com/carescope/carescope/internal/store"
)

// Handler is the top-level API handler for the hosted Carescope service.
type Handler struct {
	store    *store.Service
	intake   *intake.Service
	partners *partner.Registry
	cache    *OutcomeCache
}

// NewHandler creates a new API handler.
func NewHandler(st *store.Service, intakeSvc *intake.Service, partners *partner.Registry, cache *OutcomeCache) *Handler {
	if partners == nil {
		partners = partner.BuiltinRegistry()
	}
	if cache == nil {
		cache = NewOutcomeCacheFromEnv()
	}
	return &Handler{
		store:    st,
		intake:   intakeSvc,
		partners: partners,
		cache:    cache,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Write endpoints (auth-protected)
	mux.HandleFunc("POST /api/v1/assessments", h.handleSubmit)

	// Read endpoints
	mux.HandleFunc("GET /api/sessions/{sessionID}/outcomes", h.handleListOutcomes)
	mux.HandleFunc("GET /api/sessions/{sessionID}/outcomes/latest", h.handleLatestOutcome)
	mux.HandleFunc("GET /api/outcomes/{outcomeID}", h.handleGetOutcome)
	mux.HandleFunc("GET /api/outcomes/{outcomeID}/partners", h.handleOutcomePartners)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
