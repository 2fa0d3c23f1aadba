package placename

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dataset holds the fragment pools and threshold overrides parsed from a
// dataset document. The two base pools are guaranteed non-empty by
// ParseDataset; the affix pools may be empty. A Dataset is treated as
// immutable once installed into a Generator.
type Dataset struct {
	FirstParts  []string
	SecondParts []string
	Prefixes    []string
	Suffixes    []string
	Thresholds  Thresholds
}

// document mirrors the dataset YAML schema. Settings is kept as a raw node
// so that a malformed settings block degrades to defaults instead of
// failing the whole load.
type document struct {
	Settings yaml.Node  `yaml:"settings"`
	Prefixes []string   `yaml:"prefixes"`
	Suffixes []string   `yaml:"suffixes"`
	Parts    [][]string `yaml:"parts"`
}

// ParseDataset parses a YAML dataset document into a Dataset.
//
// The document must be a mapping with a required "parts" field holding at
// least two sequences of fragments; "prefixes", "suffixes" and "settings"
// are optional. Threshold overrides under "settings" (prefixThreshold,
// suffixThreshold, doubleThreshold) replace the built-in defaults when they
// are valid numbers and are silently ignored otherwise. Blank fragments are
// dropped; the load fails if either base pool ends up empty.
func ParseDataset(data []byte) (*Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	if len(doc.Parts) < 2 {
		return nil, ErrMissingParts
	}

	ds := &Dataset{
		FirstParts:  cleanPool(doc.Parts[0]),
		SecondParts: cleanPool(doc.Parts[1]),
		Prefixes:    cleanPool(doc.Prefixes),
		Suffixes:    cleanPool(doc.Suffixes),
		Thresholds:  parseSettings(doc.Settings),
	}

	if len(ds.FirstParts) == 0 || len(ds.SecondParts) == 0 {
		return nil, ErrEmptyPool
	}

	return ds, nil
}

// cleanPool trims fragments and drops blanks, preserving order.
func cleanPool(pool []string) []string {
	cleaned := make([]string, 0, len(pool))
	for _, frag := range pool {
		if frag = strings.TrimSpace(frag); frag != "" {
			cleaned = append(cleaned, frag)
		}
	}
	return cleaned
}

// parseSettings extracts threshold overrides from the settings node.
// Missing or malformed values keep the corresponding default.
func parseSettings(node yaml.Node) Thresholds {
	th := DefaultThresholds()

	if node.Kind == 0 {
		return th
	}

	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return th
	}

	if v, ok := floatValue(raw["prefixThreshold"]); ok {
		th.Prefix = v
	}
	if v, ok := floatValue(raw["suffixThreshold"]); ok {
		th.Suffix = v
	}
	if v, ok := floatValue(raw["doubleThreshold"]); ok {
		th.Double = v
	}

	return th.clamped()
}

// floatValue coerces the numeric types yaml.v3 produces for scalars.
func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
