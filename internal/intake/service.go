package intake

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/carescope/carescope/internal/store"
	"github.com/carescope/carescope/pkg/assessment"
	"github.com/carescope/carescope/pkg/scoring"
)

// Assessment lifecycle statuses.
const (
	StatusQueued    = "QUEUED"
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// SubmitRequest describes one questionnaire submission.
type SubmitRequest struct {
	SessionRef  string // caller-supplied stable session reference
	DisplayName string
	AnswerSet   *assessment.AnswerSet
}

// Result is what a completed submission produces.
type Result struct {
	SessionID    string           `json:"session_id"`
	AssessmentID string           `json:"assessment_id"`
	OutcomeID    string           `json:"outcome_id"`
	Outcome      *scoring.Outcome `json:"outcome"`
}

// Scorer abstracts the scoring engine so the intake package does not depend
// on a concrete implementation.
type Scorer interface {
	Score(set *assessment.AnswerSet) (*scoring.Outcome, error)
}

// Service orchestrates the submission pipeline.
type Service struct {
	store   *store.Service
	storage StorageClient
	scorer  Scorer
}

// NewService creates a new intake Service.
func NewService(st *store.Service, storage StorageClient, scorer Scorer) *Service {
	return &Service{store: st, storage: storage, scorer: scorer}
}

// Storage exposes the blob storage client for the API layer.
func (s *Service) Storage() StorageClient { return s.storage }

// ProcessSubmission runs the full pipeline for one questionnaire submission:
// ensure the session, archive the raw answers, score, persist the outcome.
func (s *Service) ProcessSubmission(ctx context.Context, req SubmitRequest) (res *Result, err error) {
	if req.AnswerSet == nil {
		return nil, fmt.Errorf("answer set is required")
	}
	if req.SessionRef == "" {
		return nil, fmt.Errorf("session reference is required")
	}

	sess, err := s.store.EnsureSession(ctx, req.SessionRef, req.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("ensure session: %w", err)
	}

	answerData, err := json.Marshal(req.AnswerSet)
	if err != nil {
		return nil, fmt.Errorf("marshal answer set: %w", err)
	}
	checksum := sha256.Sum256(answerData)
	answerRef := uuid.New().String()

	assessmentID, err := s.store.CreateAssessment(ctx, sess.ID, answerRef, hex.EncodeToString(checksum[:]))
	if err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}

	// On failure, mark the assessment as failed
	defer func() {
		if err != nil {
			errMsg := err.Error()
			if updateErr := s.store.UpdateAssessmentStatus(ctx, assessmentID, StatusFailed, &errMsg); updateErr != nil {
				log.Printf("failed to update assessment status: %v", updateErr)
			}
		}
	}()

	if err = s.store.UpdateAssessmentStatus(ctx, assessmentID, StatusRunning, nil); err != nil {
		return nil, fmt.Errorf("update status to running: %w", err)
	}

	// Archive the raw submission before scoring: the audit record exists
	// even if scoring fails.
	if err = s.storage.PutAnswerSet(ctx, sess.ID, answerRef, answerData); err != nil {
		return nil, fmt.Errorf("archive answer set: %w", err)
	}

	outcome, err := s.scorer.Score(req.AnswerSet)
	if err != nil {
		return nil, fmt.Errorf("score answer set: %w", err)
	}
	outcome.SessionID = sess.ID

	outcomeRef := uuid.New().String()
	outcomeData, err := json.Marshal(outcome)
	if err != nil {
		return nil, fmt.Errorf("marshal outcome: %w", err)
	}
	if err = s.storage.PutOutcome(ctx, sess.ID, outcomeRef, outcomeData); err != nil {
		return nil, fmt.Errorf("archive outcome: %w", err)
	}

	row, err := outcomeToRow(sess.ID, assessmentID, outcomeRef, outcome)
	if err != nil {
		return nil, err
	}
	outcomeID, err := s.store.InsertOutcome(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("persist outcome: %w", err)
	}

	if err = s.store.UpdateAssessmentStatus(ctx, assessmentID, StatusCompleted, nil); err != nil {
		return nil, fmt.Errorf("update status to completed: %w", err)
	}

	return &Result{
		SessionID:    sess.ID,
		AssessmentID: assessmentID,
		OutcomeID:    outcomeID,
		Outcome:      outcome,
	}, nil
}

// outcomeToRow projects an Outcome into its queryable database row.
func outcomeToRow(sessionID, assessmentID, outcomeRef string, o *scoring.Outcome) (store.OutcomeRow, error) {
	flags, err := json.Marshal(o.Flags)
	if err != nil {
		return store.OutcomeRow{}, fmt.Errorf("marshal flags: %w", err)
	}
	breakdown, err := json.Marshal(o.Breakdown)
	if err != nil {
		return store.OutcomeRow{}, fmt.Errorf("marshal breakdown: %w", err)
	}
	rationale, err := json.Marshal(o.Rationale)
	if err != nil {
		return store.OutcomeRow{}, fmt.Errorf("marshal rationale: %w", err)
	}

	return store.OutcomeRow{
		SessionID:    sessionID,
		AssessmentID: assessmentID,
		Tier:         string(o.Tier),
		TotalScore:   o.TotalScore,
		Confidence:   o.Confidence,
		Flags:        flags,
		Breakdown:    breakdown,
		Rationale:    rationale,
		OutcomeRef:   outcomeRef,
	}, nil
}
