package testing

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Hex is a byte string written in YAML as hex digits. Whitespace between
// digits is ignored.
type Hex []byte

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *Hex) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return fmt.Errorf("failed to decode hex string: %w", err)
	}

	data, err := hex.DecodeString(strings.Join(strings.Fields(text), ""))
	if err != nil {
		return fmt.Errorf("failed to decode hex string %q: %w", text, err)
	}

	*h = data

	return nil
}

// Outcome names used in vector files.
const (
	OutcomeDone     = "done"
	OutcomeNeedMore = "need-more"
	OutcomeReject   = "reject"
)

// Vector is one parser test case loaded from a YAML file.
type Vector struct {
	Name    string `yaml:"name"`
	Input   Hex    `yaml:"input"`
	Outcome string `yaml:"outcome"`
	// Leftover is the input expected to remain after completion.
	Leftover Hex `yaml:"leftover"`
	// Want is the expected value, decoded by the test into its own type.
	Want yaml.Node `yaml:"want"`
}

// Decode decodes the expected value into out.
func (v Vector) Decode(t T, out any) {
	t.Helper()

	if err := v.Want.Decode(out); err != nil {
		t.Fatalf("vector %q: failed to decode expected value: %v", v.Name, err)
	}
}

// LoadVectors reads a YAML list of vectors from path.
func LoadVectors(t T, path string) []Vector {
	t.Helper()

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		t.Fatalf("failed to read vectors: %v", err)

		return nil
	}

	var vectors []Vector
	if err := yaml.Unmarshal(data, &vectors); err != nil {
		t.Fatalf("failed to parse vectors %s: %v", path, err)

		return nil
	}

	for i, v := range vectors {
		switch v.Outcome {
		case OutcomeDone, OutcomeNeedMore, OutcomeReject:
		default:
			t.Fatalf("vector %d (%q): unknown outcome %q", i, v.Name, v.Outcome)

			return nil
		}
	}

	return vectors
}
