package astar

import (
	"container/heap"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hazardgrid/gate"
	"github.com/katalvlaran/hazardgrid/gridgraph"
)

// Search runs a best-first search from start to goal over g.
//
// Returns:
//
//   - a Result with StatusFound, the cost and the start→goal path, or
//   - a Result with StatusUnreachable when the frontier empties first, or
//   - an error if inputs or options are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must be in bounds and not Blocked (ErrInvalidEndpoint).
//
// When start == goal the result is cost 0 and path [start], whatever the gate.
func Search(g *gridgraph.GridGraph, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	// 1) Validate graph
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.gateSet && cfg.Gate == nil {
		return nil, fmt.Errorf("%w: gate is nil", ErrOptionViolation)
	}
	if cfg.MaxExpansions < 0 {
		return nil, fmt.Errorf("%w: MaxExpansions=%d must be ≥ 0", ErrOptionViolation, cfg.MaxExpansions)
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultOptions().Logger
	}

	// 3) Validate endpoints before any search state exists
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return nil, err
	}

	if cfg.Gate == nil {
		hg, err := gate.NewHazardGate(g)
		if err != nil {
			return nil, err
		}
		cfg.Gate = hg
	}

	r := &runner{
		g:     g,
		goal:  goal,
		opts:  cfg,
		log:   cfg.Logger.With(slog.String("start", start.String()), slog.String("goal", goal.String())),
		cost:  make(map[gridgraph.Cell]int64, g.NodeCount()),
		paths: make(map[gridgraph.Cell][]gridgraph.Cell, g.NodeCount()),
		pq:    make(frontier, 0, g.NodeCount()),
	}
	r.init(start)

	return r.process()
}

// checkEndpoint rejects cells that are not nodes of g.
func checkEndpoint(g *gridgraph.GridGraph, role string, c gridgraph.Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s %v is out of bounds for %d×%d grid", ErrInvalidEndpoint, role, c, g.Rows(), g.Cols())
	}
	if !g.Has(c) {
		return fmt.Errorf("%w: %s %v is blocked", ErrInvalidEndpoint, role, c)
	}

	return nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g     *gridgraph.GridGraph                // read-only within Search
	goal  gridgraph.Cell                      // destination cell
	opts  Options                             // resolved configuration
	log   *slog.Logger                        // scoped to this search
	cost  map[gridgraph.Cell]int64            // best known accumulated cost
	paths map[gridgraph.Cell][]gridgraph.Cell // path that achieved cost[c]
	pq    frontier                            // lazy min-heap of entries
	seq   uint64                              // insertion counter for tie-breaks
	stats Stats
}

// init seeds the start cell directly. The gate is not consulted for it.
func (r *runner) init(start gridgraph.Cell) {
	r.cost[start] = 0
	r.paths[start] = []gridgraph.Cell{start}
	heap.Init(&r.pq)
	r.push(start, Manhattan(start, r.goal))
	r.log.Debug("search started", slog.Int("nodes", r.g.NodeCount()))
}

// push adds a frontier entry with the next insertion sequence number.
func (r *runner) push(c gridgraph.Cell, priority int64) {
	heap.Push(&r.pq, &entry{cell: c, priority: priority, seq: r.seq})
	r.seq++
	r.stats.Pushed++
}

// process pops entries until the goal is popped or the frontier is empty.
func (r *runner) process() (*Result, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*entry)
		u := item.cell

		if u == r.goal {
			r.log.Debug("goal reached",
				slog.Int64("cost", r.cost[u]),
				slog.Int("path_len", len(r.paths[u])),
				slog.Int("expanded", r.stats.Expanded),
				slog.Int("rejected", r.stats.Rejected))

			return r.result(StatusFound, r.cost[u], r.paths[u]), nil
		}

		if r.opts.MaxExpansions > 0 && r.stats.Expanded >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.stats.Expanded)
		}
		// A stale entry is still expanded; relax reads the current cost map.
		if item.priority != r.cost[u]+Manhattan(u, r.goal) {
			r.stats.Stale++
		}
		r.stats.Expanded++
		if r.opts.OnExpand != nil {
			r.opts.OnExpand(u, r.cost[u])
		}
		r.relax(u)
	}

	r.log.Debug("frontier exhausted",
		slog.Int("expanded", r.stats.Expanded),
		slog.Int("rejected", r.stats.Rejected))

	return r.result(StatusUnreachable, 0, nil), nil
}

// relax tries to improve every neighbor of u through u. An improvement is
// committed only if the gate allows entering the neighbor on this attempt.
func (r *runner) relax(u gridgraph.Cell) {
	base := r.cost[u]
	var (
		w, newCost int64
		known      int64
		seen, ok   bool
	)
	for _, v := range r.g.Neighbors(u) {
		w, ok = r.g.Weight(u, v)
		if !ok {
			continue
		}
		newCost = base + w
		known, seen = r.cost[v]
		if seen && newCost >= known {
			continue
		}
		if !r.opts.Gate.Allow(v) {
			r.stats.Rejected++
			if r.opts.OnReject != nil {
				r.opts.OnReject(v)
			}
			continue
		}

		r.cost[v] = newCost
		r.paths[v] = extend(r.paths[u], v)
		r.push(v, newCost+Manhattan(v, r.goal))
	}
}

// extend returns a fresh copy of p with c appended, so stored paths never
// share backing arrays.
func extend(p []gridgraph.Cell, c gridgraph.Cell) []gridgraph.Cell {
	out := make([]gridgraph.Cell, len(p)+1)
	copy(out, p)
	out[len(p)] = c

	return out
}

// result packages the final state into a Result.
func (r *runner) result(status Status, cost int64, path []gridgraph.Cell) *Result {
	res := &Result{
		Status: status,
		Costs:  r.cost,
		Stats:  r.stats,
	}
	if status == StatusFound {
		res.Cost = cost
		res.Path = append([]gridgraph.Cell(nil), path...)
	}

	return res
}
