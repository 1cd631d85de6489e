package scoring

import "sort"

// Canonical flag names. Flags are emitted with the outcome and consumed by
// downstream systems (partner matching, cost estimation).
const (
	FlagCognitiveRisk            = "cognitive_risk"
	FlagModerateCognitiveDecline = "moderate_cognitive_decline"
	FlagSevereCognitiveRisk      = "severe_cognitive_risk"
	FlagNoSupport                = "no_support"
	FlagStrongSupport            = "strong_support"
	FlagFallsSingle              = "falls_single"
	FlagFallsMultiple            = "falls_multiple"
	FlagWanderingRisk            = "wandering_risk"
	FlagAggressionRisk           = "aggression_risk"
	FlagExitSeeking              = "exit_seeking"
	FlagSundowningRisk           = "sundowning_risk"
	FlagMedManagementRisk        = "med_management_risk"
	FlagHighADLDependence        = "high_adl_dependence"
	FlagSocialIsolation          = "social_isolation"
	FlagLivesAlone               = "lives_alone"
	FlagRapidDecline             = "rapid_decline"
	FlagVeteranAandARisk         = "veteran_aanda_risk"
	FlagAge85Plus                = "age_85_plus"
)

// FlagSet is the set of named boolean indicators derived from an answer set.
type FlagSet map[string]bool

// Has reports whether a flag is set.
func (f FlagSet) Has(name string) bool { return f[name] }

// Any reports whether any of the named flags is set.
func (f FlagSet) Any(names ...string) bool {
	for _, n := range names {
		if f[n] {
			return true
		}
	}
	return false
}

// Sorted returns the set flags as a sorted slice for deterministic output.
func (f FlagSet) Sorted() []string {
	out := make([]string, 0, len(f))
	for name, set := range f {
		if set {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// DeriveFlags computes the flag set from normalized answers. Pure: same
// input always yields the same flags.
func DeriveFlags(n *Normalized) FlagSet {
	f := make(FlagSet)

	switch n.Code(QCognition) {
	case "moderate":
		f[FlagCognitiveRisk] = true
		f[FlagModerateCognitiveDecline] = true
	case "severe":
		f[FlagCognitiveRisk] = true
		f[FlagSevereCognitiveRisk] = true
	}

	switch n.Code(QSupport) {
	case "none":
		f[FlagNoSupport] = true
	case "around_clock":
		f[FlagStrongSupport] = true
	}

	switch n.Code(QFalls) {
	case "one":
		f[FlagFallsSingle] = true
	case "multiple":
		f[FlagFallsMultiple] = true
	}

	if n.HasItem(QBehaviors, "wandering") {
		f[FlagWanderingRisk] = true
	}
	if n.HasItem(QBehaviors, "aggression") {
		f[FlagAggressionRisk] = true
	}
	if n.HasItem(QBehaviors, "exit_seeking") {
		f[FlagExitSeeking] = true
	}
	if n.HasItem(QBehaviors, "sundowning") {
		f[FlagSundowningRisk] = true
	}

	switch n.Code(QMedManagement) {
	case "assistance", "full_support":
		f[FlagMedManagementRisk] = true
	}

	// Heavy dependence: most BADL items impaired, or every critical one.
	badl := n.Items(QBADL)
	criticalImpaired := 0
	for _, item := range badl {
		if badlCritical[item] {
			criticalImpaired++
		}
	}
	if len(badl) >= 5 || criticalImpaired >= len(badlCritical) {
		f[FlagHighADLDependence] = true
	}

	if n.Code(QSocial) == "isolated" {
		f[FlagSocialIsolation] = true
	}
	if n.Code(QLivesAlone) == "yes" {
		f[FlagLivesAlone] = true
	}
	if n.Code(QRecentDecline) == "yes" {
		f[FlagRapidDecline] = true
	}
	if n.Code(QAgeBand) == "85_plus" {
		f[FlagAge85Plus] = true
	}

	// VA Aid & Attendance eligibility signal: veterans needing hands-on
	// help with daily activities or medications.
	if n.Code(QVeteran) == "yes" && (criticalImpaired > 0 || f[FlagMedManagementRisk]) {
		f[FlagVeteranAandARisk] = true
	}

	return f
}
