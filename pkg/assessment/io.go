package assessment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveAnswerSet writes an answer set to disk as JSON.
func SaveAnswerSet(path string, set *AnswerSet) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for answer set: %w", err)
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling answer set: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing answer set: %w", err)
	}

	return nil
}

// LoadAnswerSet reads an answer set from disk.
func LoadAnswerSet(path string) (*AnswerSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answer set: %w", err)
	}

	var set AnswerSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("unmarshaling answer set: %w", err)
	}

	return &set, nil
}
