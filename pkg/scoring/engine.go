package scoring

import (
	"fmt"
	"time"

	"github.com/carescope/carescope/pkg/assessment"
)

// DomainScorer is the interface that all domain scorers implement.
type DomainScorer interface {
	// Key returns the machine-readable domain identifier.
	Key() string
	// Name returns the human-readable domain name.
	Name() string
	// Evaluate computes the domain's weighted subscore from normalized answers.
	Evaluate(n *Normalized) DomainResult
}

// Engine runs all configured domain scorers, safety boosts, and the tier
// decision rules against an answer set and produces an Outcome. Scoring is
// a pure, synchronous computation: identical answers always produce the
// identical tier, score, and flags.
type Engine struct {
	scorers   []DomainScorer
	boosts    []BoostRule
	overrides []OverrideRule
	modifiers []ModifierRule
	weights   DefaultWeights
}

// NewEngine creates a scoring engine with the given domain scorers and the
// default boost, override, and modifier tables.
func NewEngine(scorers ...DomainScorer) *Engine {
	return NewEngineWithWeights(Defaults(), scorers...)
}

// NewEngineWithWeights creates a scoring engine with an explicit weight
// table, used when a config file overrides domain weights.
func NewEngineWithWeights(w DefaultWeights, scorers ...DomainScorer) *Engine {
	return &Engine{
		scorers:   scorers,
		boosts:    DefaultBoostRules(w),
		overrides: DefaultOverrideRules(),
		modifiers: DefaultModifierRules(),
		weights:   w,
	}
}

// Score evaluates an answer set and produces a complete Outcome.
// Every valid answer set, including an entirely empty one, yields exactly
// one of the five canonical tiers; a non-canonical tier is an internal
// defect and returns an InvalidTierError rather than a degraded result.
func (e *Engine) Score(set *assessment.AnswerSet) (*Outcome, error) {
	if set == nil {
		return nil, fmt.Errorf("answer set is nil")
	}

	n := Normalize(set)
	flags := DeriveFlags(n)

	outcome := &Outcome{
		SessionID: set.SessionID,
		Flags:     flags.Sorted(),
		ScoredAt:  time.Now().UTC(),
	}

	// Weighted domain subscores
	for _, s := range e.scorers {
		dr := s.Evaluate(n)
		outcome.Breakdown = append(outcome.Breakdown, dr)
		outcome.TotalScore += dr.Weighted
	}

	// Safety boosts for compounding risk
	fired, bonus := EvaluateBoosts(e.boosts, flags)
	outcome.Boosts = fired
	outcome.TotalScore += bonus

	// Override -> band -> modifier, strict order
	tier, rationale := decideTier(outcome.TotalScore, flags, e.overrides, e.modifiers)
	if !tier.Valid() {
		return nil, &InvalidTierError{Tier: tier}
	}
	outcome.Tier = tier

	outcome.Rationale = buildRationale(outcome, rationale)
	outcome.Confidence = e.confidence(n)

	return outcome, nil
}

// confidence is the fraction of questions answered, adjusted by a small
// bonus when every critical question was answered and a penalty otherwise,
// clamped to [0, 1].
func (e *Engine) confidence(n *Normalized) float64 {
	c := float64(n.AnsweredCount()) / float64(len(AllQuestions))

	allCritical := true
	for _, q := range CriticalQuestions {
		if !n.Answered(q) {
			allCritical = false
			break
		}
	}
	if allCritical {
		c += e.weights.ConfidenceCriticalBonus
	} else {
		c -= e.weights.ConfidenceCriticalPenalty
	}

	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return c
}

// buildRationale assembles the human-readable scoring explanation:
// per-domain findings, fired boosts, then the tier decision trail.
func buildRationale(o *Outcome, decision []string) []string {
	var lines []string
	for _, dr := range o.Breakdown {
		for _, f := range dr.Findings {
			lines = append(lines, fmt.Sprintf("%s (+%d): %s", dr.Name, dr.Weighted, f))
		}
	}
	for _, b := range o.Boosts {
		lines = append(lines, fmt.Sprintf("Safety boost (+%d): %s", b.Points, b.Reason))
	}
	lines = append(lines, decision...)
	return lines
}
