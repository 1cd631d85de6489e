package scoring

import "fmt"

// SupportScorer scores the caregiver support domain. Less available support
// means more points: the score measures unmet need, not family involvement.
type SupportScorer struct {
	Weight int
}

func (s *SupportScorer) Key() string  { return "support" }
func (s *SupportScorer) Name() string { return "Caregiver support" }

func (s *SupportScorer) Evaluate(n *Normalized) DomainResult {
	result := DomainResult{Key: s.Key(), Name: s.Name(), Weight: s.Weight}

	code := n.Code(QSupport)
	result.RawPoints = severityFor(QSupport, code)
	result.Weighted = result.RawPoints * s.Weight

	switch code {
	case "none":
		result.Findings = append(result.Findings, "No regular caregiver support")
	case "weekly":
		result.Findings = append(result.Findings, "Support only a few times a week")
	case "around_clock":
		result.Findings = append(result.Findings, "Around-the-clock support in place")
	}
	if n.Code(QLivesAlone) == "yes" {
		result.Findings = append(result.Findings, fmt.Sprintf("Lives alone with %s support", displaySupport(code)))
	}
	return result
}

func displaySupport(code string) string {
	if code == CodeUnanswered {
		return "unknown"
	}
	return code
}
