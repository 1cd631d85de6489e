// Package scoring implements the Carescope care-tier scoring engine.
// It evaluates questionnaire answer sets and produces explainable,
// rationale-backed care recommendations.
package scoring

import (
	"fmt"
	"time"
)

// Tier is a discrete care-level recommendation. Exactly five canonical
// values exist; anything else is a defect in the decision logic.
type Tier string

const (
	TierNoCareNeeded         Tier = "No Care Needed"
	TierInHomeCare           Tier = "In-Home Care"
	TierAssistedLiving       Tier = "Assisted Living"
	TierMemoryCare           Tier = "Memory Care"
	TierMemoryCareHighAcuity Tier = "Memory Care (High Acuity)"
)

// tierOrder lists the canonical tiers from least to most restrictive.
var tierOrder = []Tier{
	TierNoCareNeeded,
	TierInHomeCare,
	TierAssistedLiving,
	TierMemoryCare,
	TierMemoryCareHighAcuity,
}

// Tiers returns all canonical tiers, least restrictive first.
func Tiers() []Tier {
	out := make([]Tier, len(tierOrder))
	copy(out, tierOrder)
	return out
}

// Rank returns the tier's position in the restrictiveness ordering
// (0 = No Care Needed), or -1 for a non-canonical value.
func (t Tier) Rank() int {
	for i, c := range tierOrder {
		if c == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t is one of the five canonical tiers.
func (t Tier) Valid() bool { return t.Rank() >= 0 }

// tierAtRank returns the canonical tier for a rank, clamping out-of-range
// ranks to the nearest canonical tier.
func tierAtRank(rank int) Tier {
	if rank < 0 {
		rank = 0
	}
	if rank >= len(tierOrder) {
		rank = len(tierOrder) - 1
	}
	return tierOrder[rank]
}

// maxTier returns the more restrictive of two tiers.
func maxTier(a, b Tier) Tier {
	if a.Rank() >= b.Rank() {
		return a
	}
	return b
}

// TierFromScore maps a total weighted score to a tier via the fixed
// threshold table. Scores above the top band still map to the highest tier.
func TierFromScore(score int) Tier {
	switch {
	case score <= 8:
		return TierNoCareNeeded
	case score <= 16:
		return TierInHomeCare
	case score <= 24:
		return TierAssistedLiving
	case score <= 39:
		return TierMemoryCare
	default:
		return TierMemoryCareHighAcuity
	}
}

// InvalidTierError reports a computed tier outside the canonical
// enumeration. This indicates a defect in the override/banding/modifier
// logic and is never silently coerced to a default tier.
type InvalidTierError struct {
	Tier Tier
}

func (e *InvalidTierError) Error() string {
	return fmt.Sprintf("scoring produced non-canonical tier %q; expected one of %v", string(e.Tier), tierOrder)
}

// Outcome is the complete result of scoring an answer set.
// Immutable once computed.
type Outcome struct {
	SessionID  string         `json:"session_id"`
	Tier       Tier           `json:"tier"`
	TotalScore int            `json:"total_score"`
	Flags      []string       `json:"flags"` // sorted, deduplicated
	Breakdown  []DomainResult `json:"breakdown"`
	Boosts     []BoostResult  `json:"boosts,omitempty"`
	Rationale  []string       `json:"rationale"`
	Confidence float64        `json:"confidence"` // 0.0-1.0
	ScoredAt   time.Time      `json:"scored_at"`
}

// HasFlag reports whether the outcome carries a named flag.
func (o *Outcome) HasFlag(name string) bool {
	for _, f := range o.Flags {
		if f == name {
			return true
		}
	}
	return false
}

// DomainResult is the output of a single domain scorer.
type DomainResult struct {
	Key       string   `json:"key"`        // machine key: "badl"
	Name      string   `json:"name"`       // human name: "Basic activities of daily living"
	RawPoints int      `json:"raw_points"` // pre-weighting points (capped domains: 0-3)
	Weight    int      `json:"weight"`     // clinical importance multiplier (1-3)
	Weighted  int      `json:"weighted"`   // raw points * weight
	Findings  []string `json:"findings,omitempty"`
}

// BoostResult records one safety-boost rule that fired.
type BoostResult struct {
	Key    string `json:"key"`
	Points int    `json:"points"`
	Reason string `json:"reason"`
}
