package scoring

// DefaultScorers returns the standard set of domain scorers with default
// weights.
func DefaultScorers() []DomainScorer {
	return ScorersWithWeights(Defaults())
}

// ScorersWithWeights returns the standard set of domain scorers using the
// given weight table.
func ScorersWithWeights(w DefaultWeights) []DomainScorer {
	return []DomainScorer{
		&BADLScorer{Weight: w.BADLWeight},
		&IADLScorer{Weight: w.IADLWeight},
		&CognitionScorer{Weight: w.CognitionWeight},
		&SupportScorer{Weight: w.SupportWeight},
		&MobilityScorer{Weight: w.MobilityWeight},
		&MedicationScorer{Weight: w.MedicationWeight},
		&HealthScorer{Weight: w.HealthWeight},
		&MoodScorer{Weight: w.MoodWeight},
		&SocialScorer{Weight: w.SocialWeight},
	}
}
