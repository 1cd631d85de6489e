package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/carescope/carescope/internal/partner"
	"github.com/carescope/carescope/internal/store"
	"github.com/carescope/carescope/pkg/scoring"
)

// outcomeView is the JSON shape for outcome read endpoints.
type outcomeView struct {
	ID           string          `json:"id"`
	SessionID    string          `json:"session_id"`
	AssessmentID string          `json:"assessment_id"`
	Tier         string          `json:"tier"`
	TotalScore   int             `json:"total_score"`
	Confidence   float64         `json:"confidence"`
	Flags        json.RawMessage `json:"flags"`
	Breakdown    json.RawMessage `json:"breakdown"`
	Rationale    json.RawMessage `json:"rationale"`
	CreatedAt    time.Time       `json:"created_at"`
}

func viewFromRow(o *store.OutcomeRow) outcomeView {
	return outcomeView{
		ID:           o.ID,
		SessionID:    o.SessionID,
		AssessmentID: o.AssessmentID,
		Tier:         o.Tier,
		TotalScore:   o.TotalScore,
		Confidence:   o.Confidence,
		Flags:        o.Flags,
		Breakdown:    o.Breakdown,
		Rationale:    o.Rationale,
		CreatedAt:    o.CreatedAt,
	}
}

// loadOutcome fetches an outcome row, consulting the LRU cache first.
func (h *Handler) loadOutcome(r *http.Request, outcomeID string) (*store.OutcomeRow, error) {
	if row := h.cache.Get(outcomeID); row != nil {
		return row, nil
	}
	row, err := h.store.GetOutcomeByID(r.Context(), outcomeID)
	if err != nil {
		return nil, err
	}
	h.cache.Put(outcomeID, row)
	return row, nil
}

func (h *Handler) handleGetOutcome(w http.ResponseWriter, r *http.Request) {
	outcomeID := r.PathValue("outcomeID")
	row, err := h.loadOutcome(r, outcomeID)
	if err != nil {
		writeError(w, http.StatusNotFound, "outcome not found: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, viewFromRow(row))
}

func (h *Handler) handleListOutcomes(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	rows, err := h.store.ListOutcomesBySession(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "listing outcomes: "+err.Error())
		return
	}

	views := make([]outcomeView, 0, len(rows))
	for i := range rows {
		views = append(views, viewFromRow(&rows[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"outcomes": views})
}

func (h *Handler) handleLatestOutcome(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	row, err := h.store.LatestOutcomeBySession(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "no outcome for session: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, viewFromRow(row))
}

func (h *Handler) handleOutcomePartners(w http.ResponseWriter, r *http.Request) {
	outcomeID := r.PathValue("outcomeID")
	row, err := h.loadOutcome(r, outcomeID)
	if err != nil {
		writeError(w, http.StatusNotFound, "outcome not found: "+err.Error())
		return
	}

	var flags []string
	if err := json.Unmarshal(row.Flags, &flags); err != nil {
		writeError(w, http.StatusInternalServerError, "decoding outcome flags: "+err.Error())
		return
	}

	matched := h.partners.Match(scoring.Tier(row.Tier), flags)
	if matched == nil {
		matched = []partner.Partner{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"partners": matched})
}
