package placename

import (
	"errors"
	"io"
	"math/rand"
	"os"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Generator composes place names from a loaded Dataset. Each call to
// Generate is independent and keeps no memory of prior outputs; the only
// mutable state is the active thresholds and the random source. A Generator
// provides no internal locking: share the Dataset, not the Generator.
type Generator struct {
	ds     *Dataset
	th     Thresholds
	rnd    Source
	titler cases.Caser
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource substitutes the random source. Nil sources are ignored so the
// default stays in place.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.rnd = src
		}
	}
}

// WithThresholds sets the initial thresholds, clamped to [0,1]. It takes
// precedence over dataset settings when applied after WithDataset.
func WithThresholds(t Thresholds) Option {
	return func(g *Generator) { g.th = t.clamped() }
}

// WithDataset installs an already-parsed dataset and adopts its thresholds.
func WithDataset(ds *Dataset) Option {
	return func(g *Generator) { g.install(ds) }
}

// New returns a Generator with default thresholds and a time-seeded random
// source. Without WithDataset or a subsequent Load the generator is unusable
// and Generate returns "".
func New(opts ...Option) *Generator {
	g := &Generator{
		th:     DefaultThresholds(),
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		titler: cases.Title(language.Und),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) install(ds *Dataset) {
	if ds == nil {
		return
	}
	g.ds = ds
	g.th = ds.Thresholds.clamped()
}

// Load reads a dataset document from r and installs it. On failure the
// previously loaded dataset (if any) is left untouched.
func (g *Generator) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Join(ErrUnreadableSource, err)
	}
	ds, err := ParseDataset(data)
	if err != nil {
		return err
	}
	g.install(ds)
	return nil
}

// LoadFile reads and installs the dataset document at path.
func (g *Generator) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrUnreadableSource, err)
	}
	ds, err := ParseDataset(data)
	if err != nil {
		return err
	}
	g.install(ds)
	return nil
}

// Loaded reports whether a dataset has been installed.
func (g *Generator) Loaded() bool { return g.ds != nil }

// Dataset returns the installed dataset, or nil before a successful load.
func (g *Generator) Dataset() *Dataset { return g.ds }

// SetThresholds replaces the active thresholds, clamping each probability
// to [0,1]. Pools are unaffected.
func (g *Generator) SetThresholds(prefix, suffix, double float64) {
	g.th = Thresholds{Prefix: prefix, Suffix: suffix, Double: double}.clamped()
}

// Thresholds returns the active thresholds.
func (g *Generator) Thresholds() Thresholds { return g.th }

// Generate returns one freshly composed place name: a title-cased base of
// one first-pool and one second-pool fragment, optionally doubled into a
// hyphenated compound, optionally prefixed and suffixed, each per its own
// threshold. Selection is with replacement; the two halves of a double are
// chosen independently and may coincide.
//
// Generate on a generator without a loaded dataset returns "".
func (g *Generator) Generate() string {
	if g.ds == nil {
		return ""
	}

	name := g.baseName()
	if g.rnd.Float64() < g.th.Double {
		name = name + "-" + g.baseName()
	}
	if len(g.ds.Prefixes) > 0 && g.rnd.Float64() < g.th.Prefix {
		name = g.pick(g.ds.Prefixes) + " " + name
	}
	if len(g.ds.Suffixes) > 0 && g.rnd.Float64() < g.th.Suffix {
		name = name + " " + g.pick(g.ds.Suffixes)
	}
	return name
}

func (g *Generator) baseName() string {
	return g.titler.String(g.pick(g.ds.FirstParts) + g.pick(g.ds.SecondParts))
}

// pick selects one fragment uniformly at random, deriving the index from
// the float source so a substituted fake drives selection too.
func (g *Generator) pick(pool []string) string {
	idx := int(g.rnd.Float64() * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	return pool[idx]
}

// Stats computes the combinatorial snapshot for the current pools. It is a
// pure function of the pool sizes: no randomness, no caching, no side
// effects. On an unloaded generator every count is zero.
func (g *Generator) Stats() Stats {
	if g.ds == nil {
		return Stats{}
	}

	first := int64(len(g.ds.FirstParts))
	second := int64(len(g.ds.SecondParts))
	prefixes := int64(len(g.ds.Prefixes))
	suffixes := int64(len(g.ds.Suffixes))
	base := first * second

	return Stats{
		FirstParts:   first,
		SecondParts:  second,
		Prefixes:     prefixes,
		Suffixes:     suffixes,
		Base:         base,
		Doubles:      base * base,
		WithPrefixes: base * (prefixes + 1),
		WithSuffixes: base * (suffixes + 1),
		WithBoth:     base * (prefixes + 1) * (suffixes + 1),
		ApproxTotal:  (base + base*base) * (prefixes + 1) * (suffixes + 1),
	}
}
