package gate

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/katalvlaran/hazardgrid/gridgraph"
)

// DefaultBlockProbability is the chance that a Hazard cell rejects an attempt.
const DefaultBlockProbability = 0.8

// Sentinel errors returned by gate constructors.
var (
	// ErrBadProbability indicates a block probability outside [0,1].
	ErrBadProbability = errors.New("gate: block probability must be within [0,1]")

	// ErrNilClassifier indicates a HazardGate without a cell classifier.
	ErrNilClassifier = errors.New("gate: classifier is nil")
)

// Gate decides whether a specific cell may be entered on this attempt.
type Gate interface {
	Allow(c gridgraph.Cell) bool
}

// GateFunc adapts an ordinary function to the Gate interface.
type GateFunc func(c gridgraph.Cell) bool

// Allow calls f(c).
func (f GateFunc) Allow(c gridgraph.Cell) bool { return f(c) }

// Classifier looks up the label of a cell. *gridgraph.GridGraph satisfies it.
type Classifier interface {
	Label(c gridgraph.Cell) gridgraph.Label
}

// AllowAll admits every cell.
var AllowAll Gate = GateFunc(func(gridgraph.Cell) bool { return true })

// RejectHazards returns a gate that always rejects Hazard cells and admits
// everything else. It behaves like a HazardGate with probability 1 but needs
// no random source.
func RejectHazards(cls Classifier) Gate {
	return GateFunc(func(c gridgraph.Cell) bool {
		return cls.Label(c) != gridgraph.Hazard
	})
}

// Options configures NewHazardGate.
type Options struct {
	BlockProbability float64    // chance a Hazard rejects an attempt
	Seed             int64      // used only when Seeded is true
	Seeded           bool       // whether Seed was set explicitly
	Rand             *rand.Rand // caller-owned source; overrides Seed
}

// Option is a functional option for NewHazardGate.
type Option func(*Options)

// WithBlockProbability sets the rejection probability for Hazard cells.
// Values outside [0,1] make NewHazardGate return ErrBadProbability.
func WithBlockProbability(p float64) Option {
	return func(o *Options) { o.BlockProbability = p }
}

// WithSeed makes the gate's decisions reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Seeded = true
	}
}

// WithRand supplies a caller-owned random source. The gate takes ownership;
// callers must not use r concurrently afterwards.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// DefaultOptions returns Options with DefaultBlockProbability and no seed.
func DefaultOptions() Options {
	return Options{BlockProbability: DefaultBlockProbability}
}

// HazardGate rejects Hazard cells with a fixed probability per attempt.
type HazardGate struct {
	cls    Classifier
	p      float64
	seed   int64
	seeded bool

	mu  sync.Mutex
	rng *rand.Rand
}

// NewHazardGate builds a HazardGate over cls.
// Returns ErrNilClassifier or ErrBadProbability.
func NewHazardGate(cls Classifier, opts ...Option) (*HazardGate, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cls == nil {
		return nil, ErrNilClassifier
	}
	if math.IsNaN(cfg.BlockProbability) || cfg.BlockProbability < 0 || cfg.BlockProbability > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadProbability, cfg.BlockProbability)
	}

	g := &HazardGate{
		cls:    cls,
		p:      cfg.BlockProbability,
		seed:   cfg.Seed,
		seeded: cfg.Seeded,
	}
	switch {
	case cfg.Rand != nil:
		g.rng = cfg.Rand
	case cfg.Seeded:
		g.rng = rngFromSeed(cfg.Seed)
	default:
		g.rng = rngFromClock()
	}

	return g, nil
}

// BlockProbability returns the configured rejection probability.
func (g *HazardGate) BlockProbability() float64 { return g.p }

// Allow reports whether c may be entered on this attempt. Non-Hazard cells
// are always allowed and consume no randomness.
func (g *HazardGate) Allow(c gridgraph.Cell) bool {
	if g.cls.Label(c) != gridgraph.Hazard {
		return true
	}
	g.mu.Lock()
	roll := g.rng.Float64()
	g.mu.Unlock()

	return roll >= g.p
}

// Fork returns an independent gate with the same classifier and probability.
// For seeded gates the child stream depends only on (seed, stream), so each
// concurrent search can own a reproducible gate.
func (g *HazardGate) Fork(stream uint64) *HazardGate {
	var parent int64
	if g.seeded {
		parent = g.seed
	} else {
		g.mu.Lock()
		parent = g.rng.Int63()
		g.mu.Unlock()
	}
	child := deriveSeed(parent, stream)

	return &HazardGate{
		cls:    g.cls,
		p:      g.p,
		seed:   child,
		seeded: g.seeded,
		rng:    rngFromSeed(child),
	}
}
