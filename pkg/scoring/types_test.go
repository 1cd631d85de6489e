package scoring_test

import (
	"strings"
	"testing"

	"github.com/carescope/carescope/pkg/scoring"
)

func TestTierFromScoreBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  scoring.Tier
	}{
		{0, scoring.TierNoCareNeeded},
		{8, scoring.TierNoCareNeeded},
		{9, scoring.TierInHomeCare},
		{16, scoring.TierInHomeCare},
		{17, scoring.TierAssistedLiving},
		{24, scoring.TierAssistedLiving},
		{25, scoring.TierMemoryCare},
		{39, scoring.TierMemoryCare},
		{40, scoring.TierMemoryCareHighAcuity},
		{999, scoring.TierMemoryCareHighAcuity},
	}
	for _, tc := range tests {
		if got := scoring.TierFromScore(tc.score); got != tc.want {
			t.Errorf("TierFromScore(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestTierRankOrdering(t *testing.T) {
	tiers := scoring.Tiers()
	if len(tiers) != 5 {
		t.Fatalf("expected 5 canonical tiers, got %d", len(tiers))
	}
	for i, tier := range tiers {
		if tier.Rank() != i {
			t.Errorf("tier %s rank = %d, want %d", tier, tier.Rank(), i)
		}
		if !tier.Valid() {
			t.Errorf("canonical tier %s reported invalid", tier)
		}
	}
}

func TestTierValid(t *testing.T) {
	if scoring.Tier("Nursing Home").Valid() {
		t.Error("non-canonical tier should be invalid")
	}
	if scoring.Tier("").Valid() {
		t.Error("empty tier should be invalid")
	}
	if scoring.Tier("memory care").Valid() {
		t.Error("tier comparison must be case-sensitive")
	}
}

func TestInvalidTierError(t *testing.T) {
	err := &scoring.InvalidTierError{Tier: scoring.Tier("Hospice")}
	msg := err.Error()
	if !strings.Contains(msg, "Hospice") {
		t.Errorf("error message should name the bad tier, got %q", msg)
	}
	if !strings.Contains(msg, string(scoring.TierMemoryCare)) {
		t.Errorf("error message should list canonical tiers, got %q", msg)
	}
}

func TestOutcomeHasFlag(t *testing.T) {
	o := &scoring.Outcome{Flags: []string{"lives_alone", "no_support"}}
	if !o.HasFlag("no_support") {
		t.Error("expected HasFlag(no_support) = true")
	}
	if o.HasFlag("wandering_risk") {
		t.Error("expected HasFlag(wandering_risk) = false")
	}
}
