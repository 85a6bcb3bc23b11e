// Package namegen assigns a unique random name to each of a set of files.
//
// A Generator picks one of two strategies for every request. On-demand draws
// each name independently and redraws on collision; it is used when the
// naming space dwarfs the number of files. Exhaustive enumerates the whole
// naming space once and hands out candidates without replacement; it is used
// when the files would fill a noticeable share of the space. Requests that can
// never succeed are refused before any name is drawn.
package namegen

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"rngrename/internal/logging"
)

// DefaultRatioThreshold is the files-to-space ratio at or above which the
// exhaustive strategy is chosen over on-demand generation.
const DefaultRatioThreshold = 0.1

// Alphabet is an ordered sequence of unique symbols names are built from.
// Indexing must be stable for the duration of one Generate call.
type Alphabet interface {
	Len() int
	At(i int) rune
	String() string
}

// Pair binds one input path to its generated name.
type Pair struct {
	Path string
	Name string
}

// Assignment is the result of a Generate call: one pair per input file, in
// input order, with pairwise distinct names.
type Assignment []Pair

// Names returns the generated names in assignment order.
func (a Assignment) Names() []string {
	names := make([]string, len(a))
	for i, p := range a {
		names[i] = p.Name
	}
	return names
}

// Limits are the hard ceilings enforced before any work is done.
type Limits struct {
	// MaxFiles caps the number of files in one request.
	MaxFiles int
	// MaxPermutations caps the naming space the exhaustive strategy may
	// enumerate.
	MaxPermutations uint64
}

// DefaultLimits returns the ceilings used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxFiles:        1 << 24,
		MaxPermutations: 1 << 26,
	}
}

// Generator produces name assignments. It is not safe for concurrent use
// because it owns a single PRNG stream.
type Generator struct {
	limits    Limits
	threshold float64
	rng       *rand.Rand
	log       *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLimits overrides the file and enumeration ceilings. Non-positive
// fields keep their defaults.
func WithLimits(l Limits) Option {
	return func(g *Generator) {
		if l.MaxFiles > 0 {
			g.limits.MaxFiles = l.MaxFiles
		}
		if l.MaxPermutations > 0 {
			g.limits.MaxPermutations = l.MaxPermutations
		}
	}
}

// WithThreshold sets the ratio threshold used by strategy selection.
// Values outside (0, 1] are ignored.
func WithThreshold(t float64) Option {
	return func(g *Generator) {
		if t > 0 && t <= 1 {
			g.threshold = t
		}
	}
}

// WithRand sets the random source. Tests pass a seeded source to get
// reproducible assignments.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a Generator with default limits and threshold and a randomly
// seeded PCG source.
func New(opts ...Option) *Generator {
	g := &Generator{
		limits:    DefaultLimits(),
		threshold: DefaultRatioThreshold,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Limits returns the ceilings in effect.
func (g *Generator) Limits() Limits { return g.limits }

// Threshold returns the ratio threshold in effect.
func (g *Generator) Threshold() float64 { return g.threshold }

// Generate assigns a distinct name of length symbols from alphabet to every
// path in files. A non-Auto forced strategy bypasses the ratio heuristic.
//
// Either every file receives a name or an error is returned and the
// assignment is nil. Capacity errors unwrap to ErrInfeasible.
func (g *Generator) Generate(files []string, alphabet Alphabet, length int, forced Strategy) (Assignment, error) {
	if length < 0 {
		return nil, fmt.Errorf("invalid name length %d", length)
	}
	if alphabet == nil || alphabet.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	ctx := context.Background()
	g.log.Log(ctx, logging.LevelTrace, "checking naming space", "alphabet", alphabet.String(), "length", length)
	space, ok := NamingSpace(alphabet.Len(), length)
	if err := CheckCapacity(len(files), space, ok, g.limits); err != nil {
		return nil, err
	}

	strategy := SelectStrategy(len(files), space, ok, forced, g.threshold)
	if forced != Auto {
		g.log.Debug("forcing generation strategy", "strategy", strategy.String())
	} else {
		g.log.Log(ctx, logging.LevelTrace, "selected generation strategy",
			"strategy", strategy.String(),
			"ratio", fmt.Sprintf("%.2e", Ratio(len(files), space, ok)))
	}

	switch strategy {
	case OnDemand:
		return g.generateOnDemand(files, alphabet, length), nil
	case Exhaustive:
		return g.generateExhaustive(files, alphabet, length, space, ok)
	default:
		return nil, fmt.Errorf("unknown generation strategy %d", strategy)
	}
}
