package scoring_test

import (
	"testing"

	"github.com/carescope/carescope/pkg/scoring"
)

func TestEvaluateBoostsNoneFire(t *testing.T) {
	rules := scoring.DefaultBoostRules(scoring.Defaults())

	fired, total := scoring.EvaluateBoosts(rules, scoring.FlagSet{})
	if len(fired) != 0 {
		t.Errorf("expected no fired boosts, got %v", fired)
	}
	if total != 0 {
		t.Errorf("expected zero bonus, got %d", total)
	}
}

func TestEvaluateBoostsAdditive(t *testing.T) {
	rules := scoring.DefaultBoostRules(scoring.Defaults())

	// Cognitive risk, multiple falls, wandering, all without support and
	// living alone. Every rule matches and every bonus applies:
	// 5 + 3 + 4 + 2 = 14.
	flags := scoring.FlagSet{
		scoring.FlagCognitiveRisk: true,
		scoring.FlagFallsMultiple: true,
		scoring.FlagWanderingRisk: true,
		scoring.FlagNoSupport:     true,
		scoring.FlagLivesAlone:    true,
	}

	fired, total := scoring.EvaluateBoosts(rules, flags)
	if len(fired) != 4 {
		t.Fatalf("expected all 4 boosts to fire, got %d: %v", len(fired), fired)
	}
	if total != 14 {
		t.Errorf("expected bonus 14, got %d", total)
	}
	for _, b := range fired {
		if b.Reason == "" {
			t.Errorf("boost %s missing reason", b.Key)
		}
	}
}

func TestEvaluateBoostsRequireCoOccurrence(t *testing.T) {
	rules := scoring.DefaultBoostRules(scoring.Defaults())

	// Multiple falls alone, with support present, fires nothing.
	fired, total := scoring.EvaluateBoosts(rules, scoring.FlagSet{
		scoring.FlagFallsMultiple: true,
		scoring.FlagStrongSupport: true,
	})
	if len(fired) != 0 || total != 0 {
		t.Errorf("expected no boosts without a dangerous combination, got %v (total %d)", fired, total)
	}
}

func TestBoostPointsFollowWeightTable(t *testing.T) {
	w := scoring.Defaults()
	w.BoostCognitiveNoSupport = 9
	rules := scoring.DefaultBoostRules(w)

	fired, total := scoring.EvaluateBoosts(rules, scoring.FlagSet{
		scoring.FlagCognitiveRisk: true,
		scoring.FlagNoSupport:     true,
	})
	if len(fired) != 1 {
		t.Fatalf("expected 1 fired boost, got %v", fired)
	}
	if total != 9 || fired[0].Points != 9 {
		t.Errorf("expected tuned bonus 9, got total=%d points=%d", total, fired[0].Points)
	}
}
