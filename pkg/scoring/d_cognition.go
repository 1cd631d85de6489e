package scoring

import (
	"fmt"
	"strings"
)

// CognitionScorer scores the cognitive domain from the reported level of
// decline. Behavioral symptoms (wandering, aggression) do not add points
// here; they surface as flags and drive overrides and safety boosts.
type CognitionScorer struct {
	Weight int
}

func (s *CognitionScorer) Key() string  { return "cognition" }
func (s *CognitionScorer) Name() string { return "Cognitive function" }

func (s *CognitionScorer) Evaluate(n *Normalized) DomainResult {
	result := DomainResult{Key: s.Key(), Name: s.Name(), Weight: s.Weight}

	code := n.Code(QCognition)
	result.RawPoints = severityFor(QCognition, code)
	result.Weighted = result.RawPoints * s.Weight

	if code != CodeUnanswered && code != "none" {
		result.Findings = append(result.Findings, fmt.Sprintf("Cognitive decline reported: %s", code))
	}
	if behaviors := n.Items(QBehaviors); len(behaviors) > 0 {
		result.Findings = append(result.Findings,
			fmt.Sprintf("Behavioral symptoms present: %s", strings.Join(behaviors, ", ")))
	}
	return result
}
