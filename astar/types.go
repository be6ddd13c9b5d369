package astar

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/hazardgrid/gate"
	"github.com/katalvlaran/hazardgrid/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrInvalidEndpoint indicates a start or goal cell that is not a node of the graph.
	ErrInvalidEndpoint = errors.New("astar: invalid endpoint")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("astar: option violation")

	// ErrExpansionLimit indicates the search popped more entries than allowed.
	ErrExpansionLimit = errors.New("astar: expansion limit exceeded")
)

// Status tells a successful search apart from an exhausted one.
type Status int

const (
	// StatusUnreachable means the frontier emptied before the goal was reached.
	StatusUnreachable Status = iota
	// StatusFound means Result.Cost and Result.Path hold a start→goal route.
	StatusFound
)

// String returns "found" or "unreachable".
func (s Status) String() string {
	if s == StatusFound {
		return "found"
	}

	return "unreachable"
}

// Stats counts what the engine did during one search.
type Stats struct {
	Expanded int // frontier entries popped and expanded
	Stale    int // popped entries whose priority no longer matched the cost map
	Pushed   int // frontier pushes, including the start cell
	Rejected int // relaxations dropped because the gate said no
}

// Result is the outcome of one Search call.
type Result struct {
	Status Status
	// Cost is the accumulated edge weight of Path; 0 when unreachable.
	Cost int64
	// Path lists cells from start to goal inclusive; nil when unreachable.
	Path []gridgraph.Cell
	// Costs is the final cost map: best known accumulated cost per reached cell.
	Costs map[gridgraph.Cell]int64
	Stats Stats
}

// Reachable reports whether the search found a path.
func (r *Result) Reachable() bool {
	return r != nil && r.Status == StatusFound
}

// Options configures Search.
type Options struct {
	Gate          gate.Gate
	Logger        *slog.Logger
	OnExpand      func(c gridgraph.Cell, cost int64)
	OnReject      func(c gridgraph.Cell)
	MaxExpansions int // 0 = unlimited

	gateSet bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithGate sets the traversal gate. Without it Search uses a fresh
// gate.HazardGate over the graph with gate.DefaultBlockProbability.
func WithGate(g gate.Gate) Option {
	return func(o *Options) {
		o.Gate = g
		o.gateSet = true
	}
}

// WithLogger routes debug logging of the search to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnExpand registers a hook called each time a cell is popped and expanded,
// with the cell's current best cost.
func WithOnExpand(fn func(c gridgraph.Cell, cost int64)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// WithOnReject registers a hook called each time the gate rejects a relaxation.
func WithOnReject(fn func(c gridgraph.Cell)) Option {
	return func(o *Options) { o.OnReject = fn }
}

// WithMaxExpansions caps the number of popped entries. Must be ≥ 0; 0 means no cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// DefaultOptions returns Options with a discarding logger and no hooks.
// Gate is left nil; Search fills in the hazard gate for the graph at hand.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
