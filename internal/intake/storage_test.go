package intake

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStoragePutGetAnswerSet(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"answers":{}}`)
	if err := s.PutAnswerSet(ctx, "sess1", "ref1", data); err != nil {
		t.Fatalf("PutAnswerSet: %v", err)
	}

	got, err := s.GetAnswerSet(ctx, "sess1", "ref1")
	if err != nil {
		t.Fatalf("GetAnswerSet: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetAnswerSet = %q, want %q", got, data)
	}

	// Verify file path layout
	expectedPath := filepath.Join(dir, "sess1", "answers", "ref1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStoragePutGetOutcome(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"tier":"In-Home Care"}`)
	if err := s.PutOutcome(ctx, "sess1", "out1", data); err != nil {
		t.Fatalf("PutOutcome: %v", err)
	}

	got, err := s.GetOutcome(ctx, "sess1", "out1")
	if err != nil {
		t.Fatalf("GetOutcome: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetOutcome = %q, want %q", got, data)
	}

	expectedPath := filepath.Join(dir, "sess1", "outcomes", "out1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStorageGetNotFound(t *testing.T) {
	s := NewLocalStorage(t.TempDir())

	_, err := s.GetAnswerSet(context.Background(), "sess1", "nonexistent")
	if err == nil {
		t.Error("expected error for nonexistent answer set")
	}
}
