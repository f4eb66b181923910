package quiz

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Marshal returns the JSON array form of qs. A nil slice encodes as [] and
// questions without options encode "options": [].
func Marshal(qs []Question) ([]byte, error) {
	return json.Marshal(normalize(qs))
}

// WriteJSON writes qs as a JSON array followed by a newline.
func WriteJSON(w io.Writer, qs []Question, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(normalize(qs)); err != nil {
		return fmt.Errorf("encoding questions as JSON: %w", err)
	}
	return nil
}

// WriteYAML writes qs as a YAML sequence.
func WriteYAML(w io.Writer, qs []Question) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(normalize(qs)); err != nil {
		return fmt.Errorf("encoding questions as YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing YAML: %w", err)
	}
	return nil
}

// normalize replaces nil slices so they never encode as null.
func normalize(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		if q.Options == nil {
			q.Options = []string{}
		}
		out[i] = q
	}
	return out
}
