package scoring

import "fmt"

// MobilityScorer scores the mobility and fall-risk domain from the mobility
// aid level and fall history.
type MobilityScorer struct {
	Weight int
}

func (s *MobilityScorer) Key() string  { return "mobility" }
func (s *MobilityScorer) Name() string { return "Mobility and fall risk" }

func (s *MobilityScorer) Evaluate(n *Normalized) DomainResult {
	result := DomainResult{Key: s.Key(), Name: s.Name(), Weight: s.Weight}

	mobility := n.Code(QMobility)
	falls := n.Code(QFalls)

	result.RawPoints = severityFor(QMobility, mobility) + severityFor(QFalls, falls)
	result.Weighted = result.RawPoints * s.Weight

	if mobility != CodeUnanswered && mobility != "independent" {
		result.Findings = append(result.Findings, fmt.Sprintf("Mobility aid in use: %s", mobility))
	}
	switch falls {
	case "one":
		result.Findings = append(result.Findings, "One fall in the last year")
	case "multiple":
		result.Findings = append(result.Findings, "Multiple falls in the last year")
	}
	return result
}
