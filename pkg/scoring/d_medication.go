package scoring

import "fmt"

// MedicationScorer scores the medication management domain.
type MedicationScorer struct {
	Weight int
}

func (s *MedicationScorer) Key() string  { return "medication" }
func (s *MedicationScorer) Name() string { return "Medication management" }

func (s *MedicationScorer) Evaluate(n *Normalized) DomainResult {
	result := DomainResult{Key: s.Key(), Name: s.Name(), Weight: s.Weight}

	code := n.Code(QMedManagement)
	result.RawPoints = severityFor(QMedManagement, code)
	result.Weighted = result.RawPoints * s.Weight

	switch code {
	case "reminders":
		result.Findings = append(result.Findings, "Needs medication reminders")
	case "assistance":
		result.Findings = append(result.Findings, "Needs hands-on medication assistance")
	case "full_support":
		result.Findings = append(result.Findings, fmt.Sprintf("Medications fully managed by others (%s)", code))
	}
	return result
}
