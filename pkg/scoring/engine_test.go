package scoring_test

import (
	"math"
	"testing"

	"github.com/carescope/carescope/pkg/assessment"
	"github.com/carescope/carescope/pkg/scoring"
)

func newEngine() *scoring.Engine {
	return scoring.NewEngine(scoring.DefaultScorers()...)
}

func TestEngineScoreNilSet(t *testing.T) {
	engine := newEngine()
	_, err := engine.Score(nil)
	if err == nil {
		t.Error("expected error for nil answer set")
	}
}

func TestEngineScoreEmptySet(t *testing.T) {
	engine := newEngine()

	outcome, err := engine.Score(answerSet(nil))
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	if outcome.TotalScore != 0 {
		t.Errorf("expected zero score for empty set, got %d", outcome.TotalScore)
	}
	if outcome.Tier != scoring.TierNoCareNeeded {
		t.Errorf("expected tier %s for empty set, got %s", scoring.TierNoCareNeeded, outcome.Tier)
	}
	if outcome.Confidence != 0 {
		t.Errorf("expected zero confidence for empty set, got %f", outcome.Confidence)
	}
	if len(outcome.Flags) != 0 {
		t.Errorf("expected no flags for empty set, got %v", outcome.Flags)
	}
	if len(outcome.Breakdown) != len(scoring.DefaultScorers()) {
		t.Errorf("expected %d breakdown entries, got %d", len(scoring.DefaultScorers()), len(outcome.Breakdown))
	}
}

func TestEngineScoreCompoundingRiskScenario(t *testing.T) {
	// 75-84, moderate cognitive decline, no caregiver support, multiple
	// falls. Domains: cognition 2*3=6, support 3*2=6, mobility 3*2=6.
	// Boosts: cognitive_no_support +5, falls_no_support +3. Total 26.
	// Band Memory Care; the cognitive_no_support override floor of
	// Assisted Living never lowers the banded tier.
	engine := newEngine()

	outcome, err := engine.Score(answerSet(map[string]assessment.RawAnswer{
		"age_band":          assessment.Answer("75-84"),
		"cognition":         assessment.Answer("moderate"),
		"caregiver_support": assessment.Answer("none"),
		"falls":             assessment.Answer("multiple"),
	}))
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	if outcome.TotalScore != 26 {
		t.Errorf("expected total score 26, got %d", outcome.TotalScore)
	}
	if outcome.Tier != scoring.TierMemoryCare {
		t.Errorf("expected tier %s, got %s", scoring.TierMemoryCare, outcome.Tier)
	}
	if len(outcome.Boosts) != 2 {
		t.Errorf("expected 2 fired boosts, got %d: %v", len(outcome.Boosts), outcome.Boosts)
	}
	for _, flag := range []string{
		scoring.FlagModerateCognitiveDecline,
		scoring.FlagCognitiveRisk,
		scoring.FlagNoSupport,
		scoring.FlagFallsMultiple,
	} {
		if !outcome.HasFlag(flag) {
			t.Errorf("expected flag %s, got %v", flag, outcome.Flags)
		}
	}
	if len(outcome.Rationale) == 0 {
		t.Error("expected a non-empty rationale")
	}
}

func TestEngineScoreOverrideFloor(t *testing.T) {
	// Severe cognitive decline with no support forces Memory Care (High
	// Acuity) even though the raw score alone would band far lower.
	engine := newEngine()

	outcome, err := engine.Score(answerSet(map[string]assessment.RawAnswer{
		"cognition":         assessment.Answer("severe"),
		"caregiver_support": assessment.Answer("none"),
	}))
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	// cognition 3*3=9, support 3*2=6, boost +5 = 20: banded Assisted Living.
	if banded := scoring.TierFromScore(outcome.TotalScore); banded != scoring.TierAssistedLiving {
		t.Fatalf("precondition: score %d should band to Assisted Living, got %s", outcome.TotalScore, banded)
	}
	if outcome.Tier != scoring.TierMemoryCareHighAcuity {
		t.Errorf("expected override to force %s, got %s", scoring.TierMemoryCareHighAcuity, outcome.Tier)
	}
}

func TestEngineScoreDeterministic(t *testing.T) {
	engine := newEngine()
	set := answerSet(map[string]assessment.RawAnswer{
		"cognition":         assessment.Answer("moderate"),
		"caregiver_support": assessment.Answer("weekly"),
		"badl":              assessment.MultiAnswer("bathing", "dressing", "toileting"),
		"iadl":              assessment.MultiAnswer("finances", "meals"),
		"falls":             assessment.Answer("one"),
		"lives_alone":       assessment.Answer("yes"),
	})

	first, err := engine.Score(set)
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := engine.Score(set)
		if err != nil {
			t.Fatalf("Score() error on run %d: %v", i, err)
		}
		if again.TotalScore != first.TotalScore {
			t.Fatalf("run %d: total %d != %d", i, again.TotalScore, first.TotalScore)
		}
		if again.Tier != first.Tier {
			t.Fatalf("run %d: tier %s != %s", i, again.Tier, first.Tier)
		}
		if len(again.Flags) != len(first.Flags) {
			t.Fatalf("run %d: flags %v != %v", i, again.Flags, first.Flags)
		}
		for j := range first.Flags {
			if again.Flags[j] != first.Flags[j] {
				t.Fatalf("run %d: flags %v != %v", i, again.Flags, first.Flags)
			}
		}
	}
}

func TestEngineConfidenceFullAnswers(t *testing.T) {
	engine := newEngine()

	outcome, err := engine.Score(answerSet(map[string]assessment.RawAnswer{
		"cognition":         assessment.Answer("none"),
		"behaviors":         assessment.MultiAnswer("sundowning"),
		"caregiver_support": assessment.Answer("daily"),
		"lives_alone":       assessment.Answer("no"),
		"badl":              assessment.MultiAnswer("bathing"),
		"iadl":              assessment.MultiAnswer("meals"),
		"falls":             assessment.Answer("none"),
		"mobility":          assessment.Answer("cane"),
		"med_management":    assessment.Answer("reminders"),
		"health_status":     assessment.Answer("good"),
		"mood":              assessment.Answer("good"),
		"social":            assessment.Answer("active"),
		"age_band":          assessment.Answer("65-74"),
		"veteran":           assessment.Answer("no"),
		"recent_decline":    assessment.Answer("no"),
	}))
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	// Every question answered plus the critical bonus, clamped to 1.
	if outcome.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0 for a full answer set, got %f", outcome.Confidence)
	}
}

func TestEngineConfidenceCriticalPenalty(t *testing.T) {
	engine := newEngine()

	// 5 of 15 answered but med_management (critical) missing:
	// 5/15 - 0.10 = 0.2333.
	outcome, err := engine.Score(answerSet(map[string]assessment.RawAnswer{
		"cognition":         assessment.Answer("mild"),
		"caregiver_support": assessment.Answer("daily"),
		"badl":              assessment.MultiAnswer("bathing"),
		"falls":             assessment.Answer("none"),
		"mood":              assessment.Answer("good"),
	}))
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	want := 5.0/15.0 - 0.10
	if math.Abs(outcome.Confidence-want) > 0.0001 {
		t.Errorf("expected confidence ~%f, got %f", want, outcome.Confidence)
	}
}

func TestEngineScoreTierAlwaysCanonical(t *testing.T) {
	engine := newEngine()

	// A worst-case submission must still land on a canonical tier.
	outcome, err := engine.Score(answerSet(map[string]assessment.RawAnswer{
		"cognition":         assessment.Answer("severe"),
		"behaviors":         assessment.MultiAnswer("wandering", "aggression", "exit_seeking", "sundowning"),
		"caregiver_support": assessment.Answer("none"),
		"lives_alone":       assessment.Answer("yes"),
		"badl":              assessment.MultiAnswer("bathing", "dressing", "toileting", "transferring", "eating", "mobility"),
		"iadl":              assessment.MultiAnswer("finances", "medications", "housekeeping", "meals", "transportation", "laundry"),
		"falls":             assessment.Answer("multiple"),
		"mobility":          assessment.Answer("bedbound"),
		"med_management":    assessment.Answer("full_support"),
		"health_status":     assessment.Answer("very_poor"),
		"mood":              assessment.Answer("severe"),
		"social":            assessment.Answer("isolated"),
		"age_band":          assessment.Answer("85+"),
		"veteran":           assessment.Answer("yes"),
		"recent_decline":    assessment.Answer("yes"),
	}))
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	if !outcome.Tier.Valid() {
		t.Errorf("non-canonical tier %q", outcome.Tier)
	}
	if outcome.Tier != scoring.TierMemoryCareHighAcuity {
		t.Errorf("expected worst case to reach %s, got %s", scoring.TierMemoryCareHighAcuity, outcome.Tier)
	}
}

func TestEngineWithWeightOverrides(t *testing.T) {
	w := scoring.ApplyWeightOverrides(scoring.Defaults(), map[string]int{"mood": 3})
	engine := scoring.NewEngineWithWeights(w, scoring.ScorersWithWeights(w)...)

	outcome, err := engine.Score(answerSet(map[string]assessment.RawAnswer{
		"mood": assessment.Answer("depressed"),
	}))
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	// depressed raw 2 at overridden weight 3.
	if outcome.TotalScore != 6 {
		t.Errorf("expected total 6 with mood weight 3, got %d", outcome.TotalScore)
	}
}
