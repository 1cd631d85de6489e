package scoring

import (
	"sort"
	"strings"

	"github.com/carescope/carescope/pkg/assessment"
)

// Normalized is the canonical view of an answer set: every answer collapsed
// to short codes the scoring tables understand. Built once at the engine
// boundary so the rest of the pipeline never touches raw input shapes.
type Normalized struct {
	codes map[string]string   // single-answer questions: question id -> code
	items map[string][]string // multi-select questions: question id -> sorted item codes
}

// Code returns the canonical code for a single-answer question, or
// CodeUnanswered if missing or unrecognized.
func (n *Normalized) Code(questionID string) string {
	if c, ok := n.codes[questionID]; ok {
		return c
	}
	return CodeUnanswered
}

// Items returns the canonical item codes selected for a multi-select
// question. Unrecognized items are dropped; a missing answer yields nil.
func (n *Normalized) Items(questionID string) []string {
	return n.items[questionID]
}

// HasItem reports whether a multi-select question includes an item.
func (n *Normalized) HasItem(questionID, item string) bool {
	for _, it := range n.items[questionID] {
		if it == item {
			return true
		}
	}
	return false
}

// Answered reports whether a question carries a usable canonical value.
func (n *Normalized) Answered(questionID string) bool {
	if c, ok := n.codes[questionID]; ok && c != CodeUnanswered {
		return true
	}
	return len(n.items[questionID]) > 0
}

// AnsweredCount returns how many known questions have usable answers.
func (n *Normalized) AnsweredCount() int {
	count := 0
	for _, q := range AllQuestions {
		if n.Answered(q) {
			count++
		}
	}
	return count
}

// Normalize converts a raw answer set to canonical codes. It never fails:
// unknown questions are ignored and unrecognizable answers collapse to the
// unanswered sentinel, so a malformed submission degrades to a low-confidence
// result instead of an error.
func Normalize(set *assessment.AnswerSet) *Normalized {
	n := &Normalized{
		codes: make(map[string]string),
		items: make(map[string][]string),
	}
	if set == nil {
		return n
	}

	for _, q := range AllQuestions {
		raw := set.Get(q)
		if raw.IsEmpty() {
			continue
		}

		if _, multi := knownCodes[q]; multi && isMultiSelect(q) {
			var items []string
			seen := make(map[string]bool)
			for _, v := range rawValues(raw) {
				code := normalizeOne(q, v)
				if code == CodeUnanswered || seen[code] {
					continue
				}
				seen[code] = true
				items = append(items, code)
			}
			sort.Strings(items)
			if len(items) > 0 {
				n.items[q] = items
			}
			continue
		}

		// Single-answer question. A stray list from the intake layer is
		// treated as its first recognizable value.
		code := CodeUnanswered
		for _, v := range rawValues(raw) {
			if c := normalizeOne(q, v); c != CodeUnanswered {
				code = c
				break
			}
		}
		n.codes[q] = code
	}

	return n
}

// isMultiSelect reports whether a question accepts a list of items.
func isMultiSelect(questionID string) bool {
	switch questionID {
	case QBADL, QIADL, QBehaviors:
		return true
	}
	return false
}

// rawValues flattens a raw answer to its string values.
func rawValues(a assessment.RawAnswer) []string {
	switch a.Kind {
	case assessment.AnswerText:
		return []string{a.Text}
	case assessment.AnswerList:
		return a.Values
	}
	return nil
}

// normalizeOne maps one raw value to a canonical code for a question.
// Lookup order: exact canonical code, alias table, then the alias table
// again with trailing clarifier text stripped. Anything else is unanswered.
func normalizeOne(questionID, raw string) string {
	folded := foldLabel(raw)
	if folded == "" {
		return CodeUnanswered
	}

	if knownCodes[questionID][folded] {
		return folded
	}

	aliases := answerAliases[questionID]
	if code, ok := aliases[folded]; ok {
		return code
	}

	if stripped := stripClarifier(folded); stripped != folded {
		if knownCodes[questionID][stripped] {
			return stripped
		}
		if code, ok := aliases[stripped]; ok {
			return code
		}
	}

	return CodeUnanswered
}

// foldLabel lowercases and trims a raw label.
func foldLabel(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// stripClarifier drops trailing clarifier text that intake labels carry,
// e.g. "severe — needs full-time supervision" -> "severe".
func stripClarifier(s string) string {
	for _, sep := range []string{" — ", " – ", " - ", " (", ":"} {
		if idx := strings.Index(s, sep); idx > 0 {
			return strings.TrimSpace(s[:idx])
		}
	}
	return s
}

// severityFor looks up the raw severity points for a question's code.
// Unknown codes (including the unanswered sentinel) score zero.
func severityFor(questionID, code string) int {
	return severityTables[questionID][code]
}
