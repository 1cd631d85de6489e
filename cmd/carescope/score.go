package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carescope/carescope/pkg/assessment"
	"github.com/carescope/carescope/pkg/config"
	"github.com/carescope/carescope/pkg/scoring"
	"github.com/carescope/carescope/pkg/surface"
)

func newScoreCmd() *cobra.Command {
	var (
		answersPath string
		sessionID   string
		configPath  string
		outputFmt   string
		noSave      bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an answer set and recommend a care tier",
		Long:  `Reads a questionnaire answer set from a JSON file, runs the scoring engine, and renders the recommendation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(scoreOpts{
				answersPath: answersPath,
				sessionID:   sessionID,
				configPath:  configPath,
				outputFmt:   outputFmt,
				noSave:      noSave,
			})
		},
	}

	cmd.Flags().StringVar(&answersPath, "answers", "", "Path to answer set JSON file (required)")
	cmd.Flags().StringVar(&sessionID, "session", "", "Session id (default: taken from the answer set)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: discover .carescope/config.yaml)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not save the outcome to the cache directory")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

type scoreOpts struct {
	answersPath string
	sessionID   string
	configPath  string
	outputFmt   string
	noSave      bool
}

func runScore(opts scoreOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	set, err := assessment.LoadAnswerSet(opts.answersPath)
	if err != nil {
		return fmt.Errorf("loading answers: %w", err)
	}
	if opts.sessionID != "" {
		set.SessionID = opts.sessionID
	}

	weights := scoring.ApplyWeightOverrides(scoring.Defaults(), cfg.Scoring.Weights)
	engine := scoring.NewEngineWithWeights(weights, scoring.ScorersWithWeights(weights)...)

	outcome, err := engine.Score(set)
	if err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	if !opts.noSave {
		saveOutcome(outcome)
	}

	switch opts.outputFmt {
	case "json":
		renderer := &surface.JSONRenderer{}
		if err := renderer.Render(os.Stdout, outcome); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
	default:
		renderer := &surface.TerminalRenderer{}
		if err := renderer.Render(os.Stdout, outcome); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
	}

	return nil
}

// loadConfig loads the config at path, or discovers one from the working
// directory upward.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return config.DefaultConfig(), nil
		}
		path = config.FindConfigFile(cwd)
		if path == "" {
			return config.DefaultConfig(), nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// saveOutcome persists an outcome to the outcome cache directory.
func saveOutcome(outcome *scoring.Outcome) {
	dir := config.OutcomeDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create outcome dir: %v\n", err)
		return
	}

	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to marshal outcome: %v\n", err)
		return
	}

	name := outcome.ScoredAt.Format("20060102T150405Z")
	if outcome.SessionID != "" {
		name = outcome.SessionID + "_" + name
	}
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save outcome: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Outcome saved: %s\n", path)
}
