package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carescope/carescope/pkg/scoring"
)

// TerminalRenderer renders an Outcome as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func tierColor(tier scoring.Tier) string {
	if noColor() {
		return ""
	}
	switch tier {
	case scoring.TierNoCareNeeded, scoring.TierInHomeCare:
		return colorGreen
	case scoring.TierAssistedLiving:
		return colorYellow
	case scoring.TierMemoryCare, scoring.TierMemoryCareHighAcuity:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, outcome *scoring.Outcome) error {
	tc := tierColor(outcome.Tier)

	// Header
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Carescope: %s — Score %d (confidence %.0f%%)",
			colored(string(outcome.Tier), tc), outcome.TotalScore, outcome.Confidence*100)))

	// Domain breakdown
	hasFindings := false
	for _, dr := range outcome.Breakdown {
		if dr.Weighted == 0 && len(dr.Findings) == 0 {
			continue
		}
		if !hasFindings {
			fmt.Fprintln(w, "Findings:")
			hasFindings = true
		}

		fmt.Fprintf(w, "  (+%d) %s", dr.Weighted, bold(dr.Name))
		if len(dr.Findings) > 0 {
			fmt.Fprintf(w, " — %s", dr.Findings[0])
		}
		fmt.Fprintln(w)
		for _, f := range dr.Findings[min(1, len(dr.Findings)):] {
			fmt.Fprintf(w, "        %s\n", dim(f))
		}
	}

	for _, b := range outcome.Boosts {
		if !hasFindings {
			fmt.Fprintln(w, "Findings:")
			hasFindings = true
		}
		fmt.Fprintf(w, "  (+%d) %s — %s\n", b.Points, bold("Safety boost"), b.Reason)
	}

	if !hasFindings {
		fmt.Fprintln(w, "No findings.")
	}
	fmt.Fprintln(w)

	// Decision trail
	fmt.Fprintln(w, "Decision:")
	for _, line := range outcome.Rationale {
		if strings.HasPrefix(line, "Override") || strings.HasPrefix(line, "Score of") || strings.HasPrefix(line, "Modifier") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	fmt.Fprintln(w)

	// Flags for downstream consumers
	if len(outcome.Flags) > 0 {
		fmt.Fprintf(w, "Flags: %s\n", dim(strings.Join(outcome.Flags, ", ")))
	}

	return nil
}
