package scoring

// DefaultWeights holds the default weights and tunables for all domain
// scorers, safety boosts, and the confidence estimate.
type DefaultWeights struct {
	// Domain weights (clinical importance multipliers, 1-3)
	BADLWeight       int
	IADLWeight       int
	CognitionWeight  int
	SupportWeight    int
	MobilityWeight   int
	MedicationWeight int
	HealthWeight     int
	MoodWeight       int
	SocialWeight     int

	// Safety boosts (additive points for dangerous flag combinations)
	BoostCognitiveNoSupport int
	BoostFallsNoSupport     int
	BoostWanderingNoSupport int
	BoostLivesAloneFalls    int

	// Confidence estimate
	ConfidenceCriticalBonus   float64 // all critical questions answered
	ConfidenceCriticalPenalty float64 // any critical question missing
}

// Defaults returns the clinically validated default weights.
func Defaults() DefaultWeights {
	return DefaultWeights{
		BADLWeight:       3,
		IADLWeight:       2,
		CognitionWeight:  3,
		SupportWeight:    2,
		MobilityWeight:   2,
		MedicationWeight: 2,
		HealthWeight:     1,
		MoodWeight:       1,
		SocialWeight:     1,

		BoostCognitiveNoSupport: 5,
		BoostFallsNoSupport:     3,
		BoostWanderingNoSupport: 4,
		BoostLivesAloneFalls:    2,

		ConfidenceCriticalBonus:   0.05,
		ConfidenceCriticalPenalty: 0.10,
	}
}

// ApplyWeightOverrides returns a copy of w with per-domain overrides from a
// config file applied. Unknown keys are ignored; overrides are clamped to
// the valid 1-3 multiplier range.
func ApplyWeightOverrides(w DefaultWeights, overrides map[string]int) DefaultWeights {
	set := func(dst *int, v int) {
		if v < 1 {
			v = 1
		}
		if v > 3 {
			v = 3
		}
		*dst = v
	}
	for key, v := range overrides {
		switch key {
		case "badl":
			set(&w.BADLWeight, v)
		case "iadl":
			set(&w.IADLWeight, v)
		case "cognition":
			set(&w.CognitionWeight, v)
		case "support":
			set(&w.SupportWeight, v)
		case "mobility":
			set(&w.MobilityWeight, v)
		case "medication":
			set(&w.MedicationWeight, v)
		case "health":
			set(&w.HealthWeight, v)
		case "mood":
			set(&w.MoodWeight, v)
		case "social":
			set(&w.SocialWeight, v)
		}
	}
	return w
}
