package scoring

import "fmt"

// HealthScorer scores overall health status.
type HealthScorer struct {
	Weight int
}

func (s *HealthScorer) Key() string  { return "health" }
func (s *HealthScorer) Name() string { return "Overall health" }

func (s *HealthScorer) Evaluate(n *Normalized) DomainResult {
	result := DomainResult{Key: s.Key(), Name: s.Name(), Weight: s.Weight}
	code := n.Code(QHealthStatus)
	result.RawPoints = severityFor(QHealthStatus, code)
	result.Weighted = result.RawPoints * s.Weight
	if result.RawPoints > 0 {
		result.Findings = append(result.Findings, fmt.Sprintf("Health status reported as %s", code))
	}
	return result
}

// MoodScorer scores the mood domain.
type MoodScorer struct {
	Weight int
}

func (s *MoodScorer) Key() string  { return "mood" }
func (s *MoodScorer) Name() string { return "Mood" }

func (s *MoodScorer) Evaluate(n *Normalized) DomainResult {
	result := DomainResult{Key: s.Key(), Name: s.Name(), Weight: s.Weight}
	code := n.Code(QMood)
	result.RawPoints = severityFor(QMood, code)
	result.Weighted = result.RawPoints * s.Weight
	if result.RawPoints >= 2 {
		result.Findings = append(result.Findings, "Signs of depression reported")
	}
	return result
}

// SocialScorer scores the social isolation domain.
type SocialScorer struct {
	Weight int
}

func (s *SocialScorer) Key() string  { return "social" }
func (s *SocialScorer) Name() string { return "Social engagement" }

func (s *SocialScorer) Evaluate(n *Normalized) DomainResult {
	result := DomainResult{Key: s.Key(), Name: s.Name(), Weight: s.Weight}
	code := n.Code(QSocial)
	result.RawPoints = severityFor(QSocial, code)
	result.Weighted = result.RawPoints * s.Weight
	if code == "isolated" {
		result.Findings = append(result.Findings, "Mostly alone; little social contact")
	}
	return result
}
