// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/hazardgrid.
package gridgraph

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadLabel indicates a cell classification the graph cannot hold.
	ErrBadLabel = errors.New("gridgraph: invalid cell label")
	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("gridgraph: edge weight must be a positive integer")
	// ErrCellOutOfBounds indicates a cell outside the grid.
	ErrCellOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlockedEdge indicates an edge incident to a Blocked cell.
	ErrBlockedEdge = errors.New("gridgraph: edge touches a blocked cell")
	// ErrNotAdjacent indicates an edge between cells that are not 8-adjacent.
	ErrNotAdjacent = errors.New("gridgraph: edge endpoints are not adjacent")
	// ErrAsymmetricWeight indicates the same unordered pair with two different weights.
	ErrAsymmetricWeight = errors.New("gridgraph: asymmetric edge weight")
	// ErrEndpointCount indicates the grid lacks a unique Start or Goal cell.
	ErrEndpointCount = errors.New("gridgraph: grid must contain exactly one start and one goal")
)

// Label classifies a single grid cell.
type Label uint8

const (
	// Safe cells can always be entered.
	Safe Label = iota
	// Hazard cells may reject an attempt to enter them.
	Hazard
	// Blocked cells are not part of the graph.
	Blocked
	// Start marks the designated origin cell.
	Start
	// Goal marks the designated destination cell.
	Goal
	// Path is reserved for visualizers marking a route on a copy of the grid.
	// The graph never holds it.
	Path
)

// String returns the label name.
func (l Label) String() string {
	switch l {
	case Safe:
		return "Safe"
	case Hazard:
		return "Hazard"
	case Blocked:
		return "Blocked"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	case Path:
		return "Path"
	default:
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
}

// Cell identifies a grid coordinate. Row grows downwards, Col to the right.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Edge is an undirected weighted link between two adjacent cells.
type Edge struct {
	A, B   Cell
	Weight int64
}

// arc is one direction of an edge stored in a cell's adjacency list.
type arc struct {
	to     int   // row-major index of the neighbor
	weight int64 // edge weight, identical in both directions
}

// Options configures NewGridGraph.
type Options struct {
	// WeightFn draws the weight of each new edge.
	WeightFn WeightFn
	// Seed seeds the RNG passed to WeightFn when Rand is nil (0 ⇒ defaultSeed).
	Seed int64
	// Rand, when non-nil, is used instead of a Seed-derived source.
	Rand *rand.Rand
}

// Option is a functional option for NewGridGraph.
type Option func(*Options)

// WithWeightFn sets the edge weight distribution.
func WithWeightFn(fn WeightFn) Option {
	return func(o *Options) { o.WeightFn = fn }
}

// WithSeed fixes the seed used to draw edge weights.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies a caller-owned random source for edge weights.
// The source is consumed during construction only.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// defaultSeed is used when callers leave Seed at zero.
const defaultSeed int64 = 1

// DefaultOptions returns Options with the reference weight range [1,7]
// and the default seed.
func DefaultOptions() Options {
	return Options{
		WeightFn: UniformWeightFn(DefaultMinWeight, DefaultMaxWeight),
		Seed:     0,
	}
}

// GridGraph is an immutable, 8-connected weighted view over a classified grid.
// It is safe for concurrent readers once built.
type GridGraph struct {
	rows, cols int
	labels     [][]Label
	adj        [][]arc // indexed by row-major cell index; nil for Blocked cells
	edgeCount  int
	nodeCount  int
}
