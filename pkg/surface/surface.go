// Package surface defines output rendering interfaces for Carescope results.
// Implementations handle different output targets: terminal, JSON.
package surface

import (
	"io"

	"github.com/carescope/carescope/pkg/scoring"
)

// Renderer produces formatted output from an Outcome.
type Renderer interface {
	// Render writes the formatted outcome to the writer.
	Render(w io.Writer, outcome *scoring.Outcome) error
}
