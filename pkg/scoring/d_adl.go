package scoring

import (
	"fmt"
	"strings"
)

// capBucket maps an impaired-item count to a capped raw score. Capped
// domains never exceed 3 raw points pre-weighting, so selecting every item
// on a checklist cannot dominate the total score disproportionately to
// clinical significance.
func capBucket(impairedCount int) int {
	switch {
	case impairedCount <= 0:
		return 0
	case impairedCount <= 2:
		return 1
	case impairedCount <= 4:
		return 2
	default:
		return 3
	}
}

// BADLScorer scores the basic activities of daily living domain from the
// impaired-item checklist, with the capped bucket function.
type BADLScorer struct {
	Weight int
}

func (s *BADLScorer) Key() string  { return "badl" }
func (s *BADLScorer) Name() string { return "Basic activities of daily living" }

func (s *BADLScorer) Evaluate(n *Normalized) DomainResult {
	result := DomainResult{Key: s.Key(), Name: s.Name(), Weight: s.Weight}

	items := n.Items(QBADL)
	if len(items) == 0 {
		return result
	}

	critical := 0
	for _, item := range items {
		if badlCritical[item] {
			critical++
		}
	}

	result.RawPoints = capBucket(len(items))
	result.Weighted = result.RawPoints * s.Weight
	result.Findings = append(result.Findings,
		fmt.Sprintf("%d BADL item(s) impaired (%s), %d critical", len(items), strings.Join(items, ", "), critical))
	return result
}

// IADLScorer scores the instrumental activities of daily living domain,
// with the same capped bucket function as BADL.
type IADLScorer struct {
	Weight int
}

func (s *IADLScorer) Key() string  { return "iadl" }
func (s *IADLScorer) Name() string { return "Instrumental activities of daily living" }

func (s *IADLScorer) Evaluate(n *Normalized) DomainResult {
	result := DomainResult{Key: s.Key(), Name: s.Name(), Weight: s.Weight}

	items := n.Items(QIADL)
	if len(items) == 0 {
		return result
	}

	critical := 0
	for _, item := range items {
		if iadlCritical[item] {
			critical++
		}
	}

	result.RawPoints = capBucket(len(items))
	result.Weighted = result.RawPoints * s.Weight
	result.Findings = append(result.Findings,
		fmt.Sprintf("%d IADL item(s) impaired (%s), %d critical", len(items), strings.Join(items, ", "), critical))
	return result
}
