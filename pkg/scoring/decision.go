package scoring

import "fmt"

// OverrideRule forces a minimum tier for clinically unambiguous high-risk
// scenarios, independent of the computed score. Evaluated in priority order
// before banding; when several match, the most restrictive tier wins.
type OverrideRule struct {
	Key       string
	MinTier   Tier
	Reason    string
	Predicate func(FlagSet) bool
}

// ModifierRule adjusts the banded tier by a delta after overrides. A
// tier-reducing modifier is suppressed when the case carries risky
// cognitive/behavioral flags at Memory Care or above, so a strong support
// network cannot mask a dangerous profile.
type ModifierRule struct {
	Key       string
	Delta     int // bands; negative reduces the tier
	Reason    string
	Predicate func(FlagSet) bool
}

// DefaultOverrideRules returns the clinical override table in priority order.
func DefaultOverrideRules() []OverrideRule {
	return []OverrideRule{
		{
			Key:     "severe_cognitive_no_support",
			MinTier: TierMemoryCareHighAcuity,
			Reason:  "Severe cognitive decline with no caregiver support requires supervised memory care",
			Predicate: func(f FlagSet) bool {
				return f.Has(FlagSevereCognitiveRisk) && f.Has(FlagNoSupport)
			},
		},
		{
			Key:     "severe_cognitive_behaviors",
			MinTier: TierMemoryCare,
			Reason:  "Severe cognitive decline with high-risk behaviors requires a secured setting",
			Predicate: func(f FlagSet) bool {
				return f.Has(FlagSevereCognitiveRisk) &&
					f.Any(FlagWanderingRisk, FlagAggressionRisk, FlagExitSeeking)
			},
		},
		{
			Key:     "cognitive_no_support",
			MinTier: TierAssistedLiving,
			Reason:  "Cognitive decline without caregiver support is unsafe at home",
			Predicate: func(f FlagSet) bool {
				return f.Has(FlagCognitiveRisk) && f.Has(FlagNoSupport)
			},
		},
		{
			Key:     "adl_dependence_no_support",
			MinTier: TierAssistedLiving,
			Reason:  "Heavy daily-living dependence without caregiver support is unsafe at home",
			Predicate: func(f FlagSet) bool {
				return f.Has(FlagHighADLDependence) && f.Has(FlagNoSupport)
			},
		},
	}
}

// DefaultModifierRules returns the contextual tier adjustments.
func DefaultModifierRules() []ModifierRule {
	return []ModifierRule{
		{
			Key:    "strong_support",
			Delta:  -1,
			Reason: "Around-the-clock support in the home reduces the needed care setting",
			Predicate: func(f FlagSet) bool {
				return f.Has(FlagStrongSupport)
			},
		},
		{
			Key:    "rapid_decline",
			Delta:  1,
			Reason: "Rapid recent decline; plan for the next care level now",
			Predicate: func(f FlagSet) bool {
				return f.Has(FlagRapidDecline)
			},
		},
	}
}

// riskySuppression reports whether tier-reducing modifiers must be
// suppressed for this case: risky cognitive/behavioral flags combined with
// a tier of Memory Care or higher.
func riskySuppression(tier Tier, flags FlagSet) bool {
	return tier.Rank() >= TierMemoryCare.Rank() &&
		flags.Any(FlagWanderingRisk, FlagAggressionRisk, FlagExitSeeking, FlagSevereCognitiveRisk)
}

// decideTier converts a total score plus flags into the final tier:
// override check, then score banding, then modifiers. The returned rationale
// explains every rule that fired. The forced override tier acts as a floor
// that later steps may never go below.
func decideTier(total int, flags FlagSet, overrides []OverrideRule, modifiers []ModifierRule) (Tier, []string) {
	var rationale []string

	// 1. Override check: most restrictive matching override wins.
	floor := TierNoCareNeeded
	for _, rule := range overrides {
		if rule.Predicate(flags) {
			if rule.MinTier.Rank() > floor.Rank() {
				floor = rule.MinTier
			}
			rationale = append(rationale, fmt.Sprintf("Override: %s (minimum tier %s)", rule.Reason, rule.MinTier))
		}
	}

	// 2. Score banding. The override floor never lowers a banded tier.
	banded := TierFromScore(total)
	tier := maxTier(banded, floor)
	if tier != banded {
		rationale = append(rationale, fmt.Sprintf("Score of %d banded to %s, raised to %s by override", total, banded, tier))
	} else {
		rationale = append(rationale, fmt.Sprintf("Score of %d banded to %s", total, tier))
	}

	// 3. Modifier check.
	for _, rule := range modifiers {
		if !rule.Predicate(flags) {
			continue
		}
		if rule.Delta < 0 && riskySuppression(tier, flags) {
			rationale = append(rationale,
				fmt.Sprintf("Modifier suppressed: %s (high-risk cognitive/behavioral profile)", rule.Key))
			continue
		}
		adjusted := tierAtRank(tier.Rank() + rule.Delta)
		if adjusted.Rank() < floor.Rank() {
			adjusted = floor
		}
		if adjusted != tier {
			rationale = append(rationale, fmt.Sprintf("Modifier: %s (%s -> %s)", rule.Reason, tier, adjusted))
			tier = adjusted
		}
	}

	return tier, rationale
}
