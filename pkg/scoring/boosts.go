package scoring

// BoostRule adds fixed points when a dangerous flag combination co-occurs.
// Rules are independent and additive: if several predicates hold, every
// matching bonus applies. Compounding risk is scored, not just worst case.
type BoostRule struct {
	Key       string
	Points    int
	Reason    string
	Predicate func(FlagSet) bool
}

// DefaultBoostRules returns the ordered safety boost rules with the given
// weight table's point values.
func DefaultBoostRules(w DefaultWeights) []BoostRule {
	return []BoostRule{
		{
			Key:    "cognitive_no_support",
			Points: w.BoostCognitiveNoSupport,
			Reason: "Cognitive risk with no caregiver support",
			Predicate: func(f FlagSet) bool {
				return f.Has(FlagCognitiveRisk) && f.Has(FlagNoSupport)
			},
		},
		{
			Key:    "falls_no_support",
			Points: w.BoostFallsNoSupport,
			Reason: "Multiple falls with no caregiver support",
			Predicate: func(f FlagSet) bool {
				return f.Has(FlagFallsMultiple) && f.Has(FlagNoSupport)
			},
		},
		{
			Key:    "wandering_no_support",
			Points: w.BoostWanderingNoSupport,
			Reason: "Wandering behavior with no caregiver support",
			Predicate: func(f FlagSet) bool {
				return f.Has(FlagWanderingRisk) && f.Has(FlagNoSupport)
			},
		},
		{
			Key:    "falls_living_alone",
			Points: w.BoostLivesAloneFalls,
			Reason: "Multiple falls while living alone",
			Predicate: func(f FlagSet) bool {
				return f.Has(FlagFallsMultiple) && f.Has(FlagLivesAlone)
			},
		},
	}
}

// EvaluateBoosts applies every matching boost rule and returns the fired
// rules plus the total bonus points.
func EvaluateBoosts(rules []BoostRule, flags FlagSet) ([]BoostResult, int) {
	var fired []BoostResult
	total := 0
	for _, r := range rules {
		if r.Predicate(flags) {
			fired = append(fired, BoostResult{Key: r.Key, Points: r.Points, Reason: r.Reason})
			total += r.Points
		}
	}
	return fired, total
}
