package scoring

import (
	"strings"
	"testing"
)

func decide(total int, flags FlagSet) (Tier, []string) {
	return decideTier(total, flags, DefaultOverrideRules(), DefaultModifierRules())
}

func TestDecideTierBandingOnly(t *testing.T) {
	tier, rationale := decide(12, FlagSet{})
	if tier != TierInHomeCare {
		t.Errorf("expected %s for score 12, got %s", TierInHomeCare, tier)
	}
	if len(rationale) != 1 || !strings.Contains(rationale[0], "Score of 12") {
		t.Errorf("expected a single banding line, got %v", rationale)
	}
}

func TestDecideTierOverrideRaisesLowScore(t *testing.T) {
	flags := FlagSet{FlagSevereCognitiveRisk: true, FlagCognitiveRisk: true, FlagNoSupport: true}

	tier, rationale := decide(12, flags)
	if tier != TierMemoryCareHighAcuity {
		t.Errorf("expected override to force %s, got %s", TierMemoryCareHighAcuity, tier)
	}

	foundOverride := false
	for _, line := range rationale {
		if strings.HasPrefix(line, "Override:") {
			foundOverride = true
		}
	}
	if !foundOverride {
		t.Errorf("expected an override rationale line, got %v", rationale)
	}
}

func TestDecideTierOverrideNeverLowers(t *testing.T) {
	// cognitive_no_support forces a minimum of Assisted Living; a score
	// already banding above that floor must keep its banded tier.
	flags := FlagSet{FlagCognitiveRisk: true, FlagNoSupport: true}

	tier, _ := decide(30, flags)
	if tier != TierMemoryCare {
		t.Errorf("expected banded %s to survive the lower override floor, got %s", TierMemoryCare, tier)
	}
}

func TestDecideTierMostRestrictiveOverrideWins(t *testing.T) {
	// Both the Assisted Living and the Memory Care overrides match; the
	// more restrictive floor applies.
	flags := FlagSet{
		FlagSevereCognitiveRisk: true,
		FlagCognitiveRisk:       true,
		FlagNoSupport:           true,
		FlagWanderingRisk:       true,
	}

	tier, _ := decide(0, flags)
	if tier != TierMemoryCareHighAcuity {
		t.Errorf("expected most restrictive override %s, got %s", TierMemoryCareHighAcuity, tier)
	}
}

func TestDecideTierStrongSupportReduces(t *testing.T) {
	flags := FlagSet{FlagStrongSupport: true}

	tier, rationale := decide(20, flags)
	// Banded Assisted Living, reduced one band by around-the-clock support.
	if tier != TierInHomeCare {
		t.Errorf("expected %s after strong-support modifier, got %s", TierInHomeCare, tier)
	}

	foundModifier := false
	for _, line := range rationale {
		if strings.HasPrefix(line, "Modifier:") {
			foundModifier = true
		}
	}
	if !foundModifier {
		t.Errorf("expected a modifier rationale line, got %v", rationale)
	}
}

func TestDecideTierModifierSuppressedForRiskyProfile(t *testing.T) {
	// Around-the-clock support cannot reduce the tier when wandering risk
	// lands the case at Memory Care or above.
	flags := FlagSet{FlagStrongSupport: true, FlagWanderingRisk: true}

	tier, rationale := decide(30, flags)
	if tier != TierMemoryCare {
		t.Errorf("expected suppression to hold %s, got %s", TierMemoryCare, tier)
	}

	foundSuppression := false
	for _, line := range rationale {
		if strings.Contains(line, "Modifier suppressed") {
			foundSuppression = true
		}
	}
	if !foundSuppression {
		t.Errorf("expected a suppression rationale line, got %v", rationale)
	}
}

func TestDecideTierModifierClampedToOverrideFloor(t *testing.T) {
	// Override floor Assisted Living, score bands to Assisted Living,
	// strong support would reduce to In-Home Care but the floor holds.
	flags := FlagSet{
		FlagHighADLDependence: true,
		FlagNoSupport:         true,
		FlagStrongSupport:     true,
	}

	tier, _ := decide(20, flags)
	if tier != TierAssistedLiving {
		t.Errorf("expected modifier clamped at override floor %s, got %s", TierAssistedLiving, tier)
	}
}

func TestDecideTierRapidDeclineRaises(t *testing.T) {
	flags := FlagSet{FlagRapidDecline: true}

	tier, _ := decide(5, flags)
	if tier != TierInHomeCare {
		t.Errorf("expected rapid decline to raise %s to %s, got %s", TierNoCareNeeded, TierInHomeCare, tier)
	}
}

func TestDecideTierRapidDeclineCappedAtTop(t *testing.T) {
	flags := FlagSet{FlagRapidDecline: true}

	tier, _ := decide(50, flags)
	if tier != TierMemoryCareHighAcuity {
		t.Errorf("expected the top tier to absorb a raise, got %s", tier)
	}
}

func TestTierAtRankClamping(t *testing.T) {
	if got := tierAtRank(-1); got != TierNoCareNeeded {
		t.Errorf("tierAtRank(-1) = %s, want %s", got, TierNoCareNeeded)
	}
	if got := tierAtRank(99); got != TierMemoryCareHighAcuity {
		t.Errorf("tierAtRank(99) = %s, want %s", got, TierMemoryCareHighAcuity)
	}
}
