// Package partner decides which partner services are visible for a scored
// outcome, by matching outcome flags and tier against a static registry.
package partner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carescope/carescope/pkg/scoring"
)

// Partner is one entry in the service registry.
type Partner struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`

	// AnyFlags gates visibility on outcome flags: at least one must be
	// present. Empty means no flag requirement.
	AnyFlags []string `yaml:"any_flags" json:"any_flags,omitempty"`

	// MinTier/MaxTier bound the tiers the partner serves. Empty means
	// unbounded on that side.
	MinTier scoring.Tier `yaml:"min_tier" json:"min_tier,omitempty"`
	MaxTier scoring.Tier `yaml:"max_tier" json:"max_tier,omitempty"`
}

// Registry holds the partner entries in display order.
type Registry struct {
	Partners []Partner `yaml:"partners"`
}

// BuiltinRegistry returns the default partner registry.
func BuiltinRegistry() *Registry {
	return &Registry{Partners: []Partner{
		{
			ID:       "home-care-agency",
			Name:     "Licensed home care agency network",
			Category: "care",
			MinTier:  scoring.TierInHomeCare,
			MaxTier:  scoring.TierAssistedLiving,
		},
		{
			ID:       "assisted-living-advisor",
			Name:     "Assisted living placement advisor",
			Category: "placement",
			MinTier:  scoring.TierAssistedLiving,
			MaxTier:  scoring.TierMemoryCare,
		},
		{
			ID:       "memory-care-communities",
			Name:     "Secured memory care communities",
			Category: "placement",
			MinTier:  scoring.TierMemoryCare,
		},
		{
			ID:       "fall-prevention",
			Name:     "Fall prevention and home safety program",
			Category: "safety",
			AnyFlags: []string{scoring.FlagFallsMultiple, scoring.FlagFallsSingle},
		},
		{
			ID:       "va-benefits",
			Name:     "VA Aid & Attendance benefits advisor",
			Category: "benefits",
			AnyFlags: []string{scoring.FlagVeteranAandARisk},
		},
		{
			ID:       "geriatric-psychiatry",
			Name:     "Geriatric psychiatry and behavioral support",
			Category: "clinical",
			AnyFlags: []string{
				scoring.FlagAggressionRisk,
				scoring.FlagWanderingRisk,
				scoring.FlagSundowningRisk,
			},
		},
		{
			ID:       "companion-visits",
			Name:     "Companion visit program",
			Category: "social",
			AnyFlags: []string{scoring.FlagSocialIsolation, scoring.FlagLivesAlone},
			MaxTier:  scoring.TierAssistedLiving,
		},
	}}
}

// LoadRegistry reads a partner registry from a yaml file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading partner registry: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing partner registry: %w", err)
	}

	for i, p := range reg.Partners {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("partner registry entry %d: id and name are required", i)
		}
		if p.MinTier != "" && !p.MinTier.Valid() {
			return nil, fmt.Errorf("partner %s: unknown min_tier %q", p.ID, p.MinTier)
		}
		if p.MaxTier != "" && !p.MaxTier.Valid() {
			return nil, fmt.Errorf("partner %s: unknown max_tier %q", p.ID, p.MaxTier)
		}
	}
	return &reg, nil
}

// Match returns the partners visible for a tier and flag set, in registry
// order.
func (r *Registry) Match(tier scoring.Tier, flags []string) []Partner {
	flagSet := make(map[string]bool, len(flags))
	for _, f := range flags {
		flagSet[f] = true
	}

	var matched []Partner
	for _, p := range r.Partners {
		if p.MinTier != "" && tier.Rank() < p.MinTier.Rank() {
			continue
		}
		if p.MaxTier != "" && tier.Rank() > p.MaxTier.Rank() {
			continue
		}
		if len(p.AnyFlags) > 0 {
			hit := false
			for _, f := range p.AnyFlags {
				if flagSet[f] {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}
		}
		matched = append(matched, p)
	}
	return matched
}
