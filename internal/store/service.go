// Package store manages care-planning state: sessions, assessment records,
// and scored outcomes, backed by Postgres.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Service provides session and outcome persistence backed by Postgres.
type Service struct {
	db *sql.DB
}

// Session represents one care-planning session (one per household/client).
type Session struct {
	ID          string
	ExternalRef string
	DisplayName string
	CreatedAt   time.Time
}

// AssessmentRow represents a questionnaire submission record.
type AssessmentRow struct {
	ID             string
	SessionID      string
	AnswerSetRef   string
	Status         string
	ErrorMessage   *string
	IdempotencyKey string
	SubmittedAt    time.Time
	UpdatedAt      time.Time
}

// OutcomeRow represents a scored outcome record from the database.
type OutcomeRow struct {
	ID           string
	SessionID    string
	AssessmentID string
	Tier         string
	TotalScore   int
	Confidence   float64
	Flags        json.RawMessage
	Breakdown    json.RawMessage
	Rationale    json.RawMessage
	OutcomeRef   string
	CreatedAt    time.Time
}

// NewService creates a new store Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// CreateSession creates a new session for an external reference.
func (s *Service) CreateSession(ctx context.Context, externalRef, displayName string) (*Session, error) {
	sess := &Session{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO sessions (external_ref, display_name)
		 VALUES ($1, $2)
		 RETURNING id, external_ref, display_name, created_at`,
		externalRef, displayName,
	).Scan(&sess.ID, &sess.ExternalRef, &sess.DisplayName, &sess.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// GetSessionByRef looks up a session by its external reference.
func (s *Service) GetSessionByRef(ctx context.Context, externalRef string) (*Session, error) {
	sess := &Session{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, external_ref, display_name, created_at
		 FROM sessions WHERE external_ref = $1`,
		externalRef,
	).Scan(&sess.ID, &sess.ExternalRef, &sess.DisplayName, &sess.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get session by ref %s: %w", externalRef, err)
	}
	return sess, nil
}

// GetSession retrieves a session by ID.
func (s *Service) GetSession(ctx context.Context, id string) (*Session, error) {
	sess := &Session{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, external_ref, display_name, created_at
		 FROM sessions WHERE id = $1`,
		id,
	).Scan(&sess.ID, &sess.ExternalRef, &sess.DisplayName, &sess.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return sess, nil
}

// EnsureSession gets or creates a session for an external reference.
func (s *Service) EnsureSession(ctx context.Context, externalRef, displayName string) (*Session, error) {
	sess, err := s.GetSessionByRef(ctx, externalRef)
	if err == nil {
		return sess, nil
	}

	sess, err = s.CreateSession(ctx, externalRef, displayName)
	if err != nil {
		// Could be a race; try getting again
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return s.GetSessionByRef(ctx, externalRef)
		}
		return nil, fmt.Errorf("ensure session: %w", err)
	}
	return sess, nil
}

// CreateAssessment creates an assessment record and returns its ID.
// The idempotency key is session_id + answer checksum: resubmitting the
// same answers reuses the existing record.
func (s *Service) CreateAssessment(ctx context.Context, sessionID, answerSetRef, checksum string) (string, error) {
	idempotencyKey := fmt.Sprintf("%s:%s", sessionID, checksum)

	var id string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO assessments (session_id, answer_set_ref, idempotency_key)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (idempotency_key) DO UPDATE SET updated_at = now()
		 RETURNING id`,
		sessionID, answerSetRef, idempotencyKey,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create assessment: %w", err)
	}
	return id, nil
}

// UpdateAssessmentStatus updates the status and optional error message.
func (s *Service) UpdateAssessmentStatus(ctx context.Context, id, status string, errMsg *string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE assessments SET status = $1, error_message = $2, updated_at = now() WHERE id = $3`,
		status, errMsg, id,
	)
	if err != nil {
		return fmt.Errorf("update assessment status: %w", err)
	}
	return nil
}

// InsertOutcome persists a scored outcome and returns its ID.
func (s *Service) InsertOutcome(ctx context.Context, row OutcomeRow) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO outcomes (session_id, assessment_id, tier, total_score, confidence,
		                       flags, breakdown, rationale, outcome_ref)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		row.SessionID, row.AssessmentID, row.Tier, row.TotalScore, row.Confidence,
		row.Flags, row.Breakdown, row.Rationale, row.OutcomeRef,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert outcome: %w", err)
	}
	return id, nil
}

// GetOutcomeByID returns a single outcome by ID.
func (s *Service) GetOutcomeByID(ctx context.Context, outcomeID string) (*OutcomeRow, error) {
	o := &OutcomeRow{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, assessment_id, tier, total_score, confidence,
		        flags, breakdown, rationale, outcome_ref, created_at
		 FROM outcomes WHERE id = $1`,
		outcomeID,
	).Scan(
		&o.ID, &o.SessionID, &o.AssessmentID, &o.Tier, &o.TotalScore, &o.Confidence,
		&o.Flags, &o.Breakdown, &o.Rationale, &o.OutcomeRef, &o.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get outcome %s: %w", outcomeID, err)
	}
	return o, nil
}

// ListOutcomesBySession returns all outcomes for a session, newest first.
func (s *Service) ListOutcomesBySession(ctx context.Context, sessionID string) ([]OutcomeRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, assessment_id, tier, total_score, confidence,
		        flags, breakdown, rationale, outcome_ref, created_at
		 FROM outcomes WHERE session_id = $1 ORDER BY created_at DESC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []OutcomeRow
	for rows.Next() {
		var o OutcomeRow
		if err := rows.Scan(
			&o.ID, &o.SessionID, &o.AssessmentID, &o.Tier, &o.TotalScore, &o.Confidence,
			&o.Flags, &o.Breakdown, &o.Rationale, &o.OutcomeRef, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}

// LatestOutcomeBySession returns the most recent outcome for a session.
func (s *Service) LatestOutcomeBySession(ctx context.Context, sessionID string) (*OutcomeRow, error) {
	o := &OutcomeRow{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, assessment_id, tier, total_score, confidence,
		        flags, breakdown, rationale, outcome_ref, created_at
		 FROM outcomes WHERE session_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		sessionID,
	).Scan(
		&o.ID, &o.SessionID, &o.AssessmentID, &o.Tier, &o.TotalScore, &o.Confidence,
		&o.Flags, &o.Breakdown, &o.Rationale, &o.OutcomeRef, &o.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("latest outcome for session %s: %w", sessionID, err)
	}
	return o, nil
}
