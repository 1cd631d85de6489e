package store

import (
	"testing"
)

func TestNewService(t *testing.T) {
	// NewService should not panic with nil db (it just stores the reference).
	svc := NewService(nil)
	if svc == nil {
		t.Fatal("NewService returned nil")
	}
}

func TestServiceSQL_WellFormed(t *testing.T) {
	// The Service methods all require a real Postgres database; full
	// integration tests need a test database. Verify construction and the
	// expected method set.
	svc := &Service{}
	if svc.db != nil {
		t.Error("zero-value Service should have nil db")
	}

	_ = svc.CreateSession
	_ = svc.GetSession
	_ = svc.GetSessionByRef
	_ = svc.EnsureSession
	_ = svc.CreateAssessment
	_ = svc.UpdateAssessmentStatus
	_ = svc.InsertOutcome
	_ = svc.GetOutcomeByID
	_ = svc.ListOutcomesBySession
	_ = svc.LatestOutcomeBySession
}

func TestOutcomeRowFields(t *testing.T) {
	row := OutcomeRow{
		ID:         "o-1",
		SessionID:  "s-1",
		Tier:       "Memory Care",
		TotalScore: 30,
		Confidence: 0.9,
	}

	if row.Tier != "Memory Care" {
		t.Errorf("Tier = %q, want Memory Care", row.Tier)
	}
	if row.TotalScore != 30 {
		t.Errorf("TotalScore = %d, want 30", row.TotalScore)
	}
}

func TestAssessmentRowOptionalError(t *testing.T) {
	row := AssessmentRow{ID: "a-1", Status: "QUEUED"}
	if row.ErrorMessage != nil {
		t.Errorf("ErrorMessage = %v, want nil", row.ErrorMessage)
	}

	msg := "scoring failed"
	row.ErrorMessage = &msg
	if *row.ErrorMessage != "scoring failed" {
		t.Errorf("ErrorMessage = %q, want 'scoring failed'", *row.ErrorMessage)
	}
}
