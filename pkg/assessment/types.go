// Package assessment defines the core data model for Carescope.
// These types are the shared vocabulary across all modules.
// Changes to this file require review from all teams.
package assessment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// AnswerSet is one complete questionnaire submission for a care-planning
// session. Answer sets are immutable once scoring begins.
type AnswerSet struct {
	SessionID   string               `json:"session_id"`
	Answers     map[string]RawAnswer `json:"answers"`
	CollectedAt time.Time            `json:"collected_at"`
}

// AnswerKind discriminates the shapes a raw answer can arrive in.
type AnswerKind int

const (
	AnswerNone AnswerKind = iota // question not answered (null or absent)
	AnswerText                   // single string value or label
	AnswerList                   // multi-select: list of strings
)

// RawAnswer is the tagged union for an incoming answer value. Intake forms
// deliver either a single value, a multi-select list, or null; everything
// downstream of the normalizer works with canonical codes instead.
type RawAnswer struct {
	Kind   AnswerKind
	Text   string
	Values []string
}

// Answer wraps a single string value.
func Answer(text string) RawAnswer {
	return RawAnswer{Kind: AnswerText, Text: text}
}

// MultiAnswer wraps a multi-select list.
func MultiAnswer(values ...string) RawAnswer {
	return RawAnswer{Kind: AnswerList, Values: values}
}

// IsEmpty reports whether the answer carries no usable value.
func (a RawAnswer) IsEmpty() bool {
	switch a.Kind {
	case AnswerText:
		return a.Text == ""
	case AnswerList:
		return len(a.Values) == 0
	default:
		return true
	}
}

// UnmarshalJSON accepts a string, a list of strings, or null.
// Any other shape decodes as an empty answer rather than failing the
// whole submission.
func (a *RawAnswer) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*a = RawAnswer{Kind: AnswerNone}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("unmarshaling answer string: %w", err)
		}
		*a = RawAnswer{Kind: AnswerText, Text: s}
	case '[':
		var vs []string
		if err := json.Unmarshal(trimmed, &vs); err != nil {
			// Mixed-type lists from legacy intake forms: keep the
			// string elements, drop the rest.
			var anys []any
			if err2 := json.Unmarshal(trimmed, &anys); err2 != nil {
				return fmt.Errorf("unmarshaling answer list: %w", err)
			}
			vs = vs[:0]
			for _, v := range anys {
				if s, ok := v.(string); ok {
					vs = append(vs, s)
				}
			}
		}
		*a = RawAnswer{Kind: AnswerList, Values: vs}
	default:
		// Numbers and booleans show up from older intake clients;
		// carry them as text so the normalizer can try its tables.
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return fmt.Errorf("unmarshaling answer value: %w", err)
		}
		*a = RawAnswer{Kind: AnswerText, Text: fmt.Sprintf("%v", v)}
	}
	return nil
}

// MarshalJSON writes the answer back in its original shape.
func (a RawAnswer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerText:
		return json.Marshal(a.Text)
	case AnswerList:
		return json.Marshal(a.Values)
	default:
		return []byte("null"), nil
	}
}

// Get returns the answer for a question id, or an empty answer if absent.
func (s *AnswerSet) Get(questionID string) RawAnswer {
	if s == nil || s.Answers == nil {
		return RawAnswer{Kind: AnswerNone}
	}
	a, ok := s.Answers[questionID]
	if !ok {
		return RawAnswer{Kind: AnswerNone}
	}
	return a
}

// AnsweredCount returns how many questions carry a non-empty answer.
func (s *AnswerSet) AnsweredCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, a := range s.Answers {
		if !a.IsEmpty() {
			n++
		}
	}
	return n
}
