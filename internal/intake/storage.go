// Package intake orchestrates the Carescope pipeline: answer archival,
// scoring, and outcome persistence.
package intake

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for raw answer sets and outcomes.
// Blobs are the audit record of what was scored; Postgres holds only the
// queryable projection.
type StorageClient interface {
	PutAnswerSet(ctx context.Context, sessionID, assessmentID string, data []byte) error
	GetAnswerSet(ctx context.Context, sessionID, assessmentID string) ([]byte, error)
	PutOutcome(ctx context.Context, sessionID, outcomeID string, data []byte) error
	GetOutcome(ctx context.Context, sessionID, outcomeID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(sessionID, kind, id string) string {
	return filepath.Join(s.BaseDir, sessionID, kind, id+".json")
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutAnswerSet stores a raw answer set blob.
func (s *LocalStorage) PutAnswerSet(ctx context.Context, sessionID, assessmentID string, data []byte) error {
	return s.put(s.path(sessionID, "answers", assessmentID), data)
}

// GetAnswerSet retrieves a raw answer set blob.
func (s *LocalStorage) GetAnswerSet(ctx context.Context, sessionID, assessmentID string) ([]byte, error) {
	return os.ReadFile(s.path(sessionID, "answers", assessmentID))
}

// PutOutcome stores an outcome blob.
func (s *LocalStorage) PutOutcome(ctx context.Context, sessionID, outcomeID string, data []byte) error {
	return s.put(s.path(sessionID, "outcomes", outcomeID), data)
}

// GetOutcome retrieves an outcome blob.
func (s *LocalStorage) GetOutcome(ctx context.Context, sessionID, outcomeID string) ([]byte, error) {
	return os.ReadFile(s.path(sessionID, "outcomes", outcomeID))
}
