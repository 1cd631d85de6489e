package api

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"

	"github.com/carescope/carescope/internal/intake"
	"github.com/carescope/carescope/pkg/assessment"
)

// submitRequest is the JSON body for POST /api/v1/assessments.
type submitRequest struct {
	SessionRef  string                `json:"session_ref"`
	DisplayName string                `json:"display_name"`
	Answers     *assessment.AnswerSet `json:"answers"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	// Support gzip-compressed request bodies
	var body io.Reader = r.Body
	if r.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid gzip body: "+err.Error())
			return
		}
		defer gz.Close()
		body = gz
	}

	var req submitRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.SessionRef == "" || req.Answers == nil {
		writeError(w, http.StatusBadRequest, "session_ref and answers are required")
		return
	}

	result, err := h.intake.ProcessSubmission(r.Context(), intake.SubmitRequest{
		SessionRef:  req.SessionRef,
		DisplayName: req.DisplayName,
		AnswerSet:   req.Answers,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "processing failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
