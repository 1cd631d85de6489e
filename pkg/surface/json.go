package surface

import (
	"encoding/json"
	"io"

	"github.com/carescope/carescope/pkg/scoring"
)

// JSONRenderer marshals an Outcome to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, outcome *scoring.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(outcome)
}
