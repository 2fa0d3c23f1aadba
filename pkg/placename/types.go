package placename

// Source yields uniform random floats in [0,1). Both the threshold decisions
// and the pool index selections draw from the same Source, which makes the
// whole generation path deterministic under a substituted fake.
// *math/rand.Rand satisfies the interface.
type Source interface {
	Float64() float64
}

// Default probabilities applied when neither the dataset settings nor the
// caller override them.
const (
	DefaultPrefixThreshold = 0.15
	DefaultSuffixThreshold = 0.11
	DefaultDoubleThreshold = 0.10
)

// Thresholds holds the three independent probabilities controlling the
// optional name transformations. Values are clamped to [0,1] on every
// assignment path, so a stored Thresholds is always in range.
type Thresholds struct {
	Prefix float64 `json:"prefix"` // probability of attaching a prefix
	Suffix float64 `json:"suffix"` // probability of attaching a suffix
	Double float64 `json:"double"` // probability of a hyphenated compound
}

// DefaultThresholds returns the built-in threshold constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Prefix: DefaultPrefixThreshold,
		Suffix: DefaultSuffixThreshold,
		Double: DefaultDoubleThreshold,
	}
}

// clamped returns a copy with every probability forced into [0,1].
func (t Thresholds) clamped() Thresholds {
	return Thresholds{
		Prefix: clamp01(t.Prefix),
		Suffix: clamp01(t.Suffix),
		Double: clamp01(t.Double),
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Stats is a combinatorial snapshot derived from the current pool sizes.
// The counts are upper-bound estimates over ordered choices: doubles count
// ordered pairs including self-pairs ("Ashford-Ashford"), and duplicate
// renderings from different fragment choices are not deduplicated. The "+1"
// in the affix dimensions accounts for the no-affix option.
type Stats struct {
	FirstParts  int64 `json:"first_parts"`
	SecondParts int64 `json:"second_parts"`
	Prefixes    int64 `json:"prefixes"`
	Suffixes    int64 `json:"suffixes"`

	Base         int64 `json:"base"`          // first × second
	Doubles      int64 `json:"doubles"`       // base²
	WithPrefixes int64 `json:"with_prefixes"` // base × (prefixes+1)
	WithSuffixes int64 `json:"with_suffixes"` // base × (suffixes+1)
	WithBoth     int64 `json:"with_both"`     // base × (prefixes+1) × (suffixes+1)
	ApproxTotal  int64 `json:"approx_total"`  // (base + doubles) × (prefixes+1) × (suffixes+1)
}
