// Package placename generates plausible-sounding place names by composing
// syllable fragments drawn from a dataset, with optional affixes and
// hyphenated compounding, each controlled by an independent probability
// threshold.
//
// A name starts as a base: one fragment from the dataset's first pool
// concatenated with one fragment from its second pool, title-cased as a
// single token (e.g. "ash" + "ford" -> "Ashford"). Three independent draws
// against the configured thresholds then decide whether the base is doubled
// into a hyphenated compound ("Ashford-Glenbury"), prefixed ("Old Ashford")
// and suffixed ("Ashford Falls").
//
// # Architecture
//
//   - Dataset holds the four fragment pools (two required base pools, two
//     optional affix pools) plus threshold overrides. It is parsed from a
//     YAML document via ParseDataset and is immutable once installed.
//   - Generator owns a Dataset, the active Thresholds, and a Source of
//     uniform random floats. Every decision and every pool selection is
//     driven by the same Source, so tests can substitute a deterministic
//     fake.
//   - Stats is a pure combinatorial snapshot of the pool sizes, recomputed
//     on every call and never cached.
//
// Generators are cheap: they share the Dataset's backing slices, so the
// intended concurrency model is one Generator per request over a shared
// Dataset. A Generator provides no internal locking.
//
// # Usage
//
//	gen := placename.New(placename.WithDataset(placename.DefaultDataset()))
//	name := gen.Generate() // e.g. "Old Ashford-Glenbury"
//
// Or from a caller-supplied dataset document:
//
//	gen := placename.New()
//	if err := gen.LoadFile("towns.yml"); err != nil {
//		// dataset unusable; do not call Generate
//	}
//	stats := gen.Stats()
package placename
