package gridgraph

import (
	"fmt"
	"sort"
)

// scanOffsets are the {row, col} deltas probed for each cell during the
// row-major construction scan: left, up, up-left, up-right. Together with
// the scan order they visit every unordered 8-adjacent pair exactly once.
var scanOffsets = [4][2]int{{0, -1}, {-1, 0}, {-1, -1}, {-1, 1}}

// NewGridGraph builds a GridGraph from a non-empty, rectangular label grid.
// It deep-copies the input to ensure immutability.
//
// For each non-Blocked cell in row-major order, an edge is added to every
// non-Blocked neighbor among {left, up, up-left, up-right}; its weight is
// drawn once from the configured WeightFn.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadLabel or ErrBadWeight.
// Complexity: O(W×H) time and memory.
func NewGridGraph(labels [][]Label, opts ...Option) (*GridGraph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.WeightFn == nil {
		cfg.WeightFn = UniformWeightFn(DefaultMinWeight, DefaultMaxWeight)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}

	gg, err := newEmpty(labels)
	if err != nil {
		return nil, err
	}

	var r, c, nr, nc int
	var w int64
	for r = 0; r < gg.rows; r++ {
		for c = 0; c < gg.cols; c++ {
			if gg.labels[r][c] == Blocked {
				continue
			}
			for _, d := range scanOffsets {
				nr, nc = r+d[0], c+d[1]
				if !gg.inBounds(nr, nc) || gg.labels[nr][nc] == Blocked {
					continue
				}
				w = cfg.WeightFn(rng)
				if w < 1 {
					return nil, fmt.Errorf("%w: edge %v–%v weight=%d", ErrBadWeight, Cell{r, c}, Cell{nr, nc}, w)
				}
				gg.link(gg.index(r, c), gg.index(nr, nc), w)
			}
		}
	}

	return gg, nil
}

// NewGridGraphFromEdges builds a GridGraph whose adjacency is exactly the
// given edge list. Every graph invariant is checked here so that a malformed
// graph is never observed by a search.
//
// An unordered pair may appear more than once only with an identical weight.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadLabel, ErrCellOutOfBounds,
// ErrBlockedEdge, ErrNotAdjacent, ErrBadWeight or ErrAsymmetricWeight.
// Complexity: O(W×H + E).
func NewGridGraphFromEdges(labels [][]Label, edges []Edge) (*GridGraph, error) {
	gg, err := newEmpty(labels)
	if err != nil {
		return nil, err
	}

	for _, e := range edges {
		if !gg.InBounds(e.A) || !gg.InBounds(e.B) {
			return nil, fmt.Errorf("%w: edge %v–%v", ErrCellOutOfBounds, e.A, e.B)
		}
		if !isAdjacent(e.A, e.B) {
			return nil, fmt.Errorf("%w: edge %v–%v", ErrNotAdjacent, e.A, e.B)
		}
		if gg.Label(e.A) == Blocked || gg.Label(e.B) == Blocked {
			return nil, fmt.Errorf("%w: edge %v–%v", ErrBlockedEdge, e.A, e.B)
		}
		if e.Weight < 1 {
			return nil, fmt.Errorf("%w: edge %v–%v weight=%d", ErrBadWeight, e.A, e.B, e.Weight)
		}
		if w, ok := gg.Weight(e.A, e.B); ok {
			if w != e.Weight {
				return nil, fmt.Errorf("%w: edge %v–%v has weights %d and %d", ErrAsymmetricWeight, e.A, e.B, w, e.Weight)
			}
			continue // duplicate listing of the same pair
		}
		gg.link(gg.index(e.A.Row, e.A.Col), gg.index(e.B.Row, e.B.Col), e.Weight)
	}

	return gg, nil
}

// newEmpty validates the label grid and returns a GridGraph without edges.
func newEmpty(labels [][]Label) (*GridGraph, error) {
	if len(labels) == 0 || len(labels[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(labels), len(labels[0])
	for _, row := range labels {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy to prevent external mutation
	cells := make([][]Label, h)
	nodes := 0
	for r := 0; r < h; r++ {
		cells[r] = make([]Label, w)
		for c, l := range labels[r] {
			if l > Goal {
				return nil, fmt.Errorf("%w: %v at %v", ErrBadLabel, l, Cell{r, c})
			}
			if l != Blocked {
				nodes++
			}
			cells[r][c] = l
		}
	}

	return &GridGraph{
		rows:      h,
		cols:      w,
		labels:    cells,
		adj:       make([][]arc, h*w),
		nodeCount: nodes,
	}, nil
}

// link stores the undirected edge u–v in both adjacency lists.
func (gg *GridGraph) link(u, v int, w int64) {
	gg.adj[u] = append(gg.adj[u], arc{to: v, weight: w})
	gg.adj[v] = append(gg.adj[v], arc{to: u, weight: w})
	gg.edgeCount++
}

// isAdjacent reports whether a and b are distinct 8-neighbors.
func isAdjacent(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if a == b {
		return false
	}

	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Rows returns the number of grid rows.
func (gg *GridGraph) Rows() int { return gg.rows }

// Cols returns the number of grid columns.
func (gg *GridGraph) Cols() int { return gg.cols }

// NodeCount returns the number of non-Blocked cells.
func (gg *GridGraph) NodeCount() int { return gg.nodeCount }

// EdgeCount returns the number of undirected edges.
func (gg *GridGraph) EdgeCount() int { return gg.edgeCount }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return gg.inBounds(c.Row, c.Col)
}

func (gg *GridGraph) inBounds(r, c int) bool {
	return r >= 0 && r < gg.rows && c >= 0 && c < gg.cols
}

// Has reports whether c is a node of the graph (in bounds and not Blocked).
func (gg *GridGraph) Has(c Cell) bool {
	return gg.InBounds(c) && gg.labels[c.Row][c.Col] != Blocked
}

// Label returns the classification of c. Cells outside the grid are
// reported as Blocked, since they are equally absent from the graph.
// Complexity: O(1).
func (gg *GridGraph) Label(c Cell) Label {
	if !gg.InBounds(c) {
		return Blocked
	}

	return gg.labels[c.Row][c.Col]
}

// Labels returns a deep copy of the classification grid.
func (gg *GridGraph) Labels() [][]Label {
	out := make([][]Label, gg.rows)
	for r := range gg.labels {
		out[r] = append([]Label(nil), gg.labels[r]...)
	}

	return out
}

// Neighbors returns all graph-adjacent cells of c. The result never contains
// c itself and is nil when c is not a node of the graph.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	if !gg.Has(c) {
		return nil
	}
	arcs := gg.adj[gg.index(c.Row, c.Col)]
	out := make([]Cell, len(arcs))
	for i, a := range arcs {
		out[i] = gg.cell(a.to)
	}

	return out
}

// Weight returns the weight of edge a–b, and false if b is not a neighbor of a.
// Complexity: O(1).
func (gg *GridGraph) Weight(a, b Cell) (int64, bool) {
	if !gg.Has(a) || !gg.Has(b) {
		return 0, false
	}
	target := gg.index(b.Row, b.Col)
	for _, x := range gg.adj[gg.index(a.Row, a.Col)] {
		if x.to == target {
			return x.weight, true
		}
	}

	return 0, false
}

// Edges returns every undirected edge once, with A before B in row-major
// order, sorted by A then B.
// Complexity: O(E log E).
func (gg *GridGraph) Edges() []Edge {
	out := make([]Edge, 0, gg.edgeCount)
	for u, arcs := range gg.adj {
		for _, a := range arcs {
			if a.to > u {
				out = append(out, Edge{A: gg.cell(u), B: gg.cell(a.to), Weight: a.weight})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return gg.index(out[i].A.Row, out[i].A.Col) < gg.index(out[j].A.Row, out[j].A.Col)
		}
		return gg.index(out[i].B.Row, out[i].B.Col) < gg.index(out[j].B.Row, out[j].B.Col)
	})

	return out
}

// Endpoints locates the unique Start and Goal cells.
// Returns ErrEndpointCount unless exactly one of each is present.
func (gg *GridGraph) Endpoints() (start, goal Cell, err error) {
	var ns, ng int
	for r := range gg.labels {
		for c, l := range gg.labels[r] {
			switch l {
			case Start:
				start = Cell{r, c}
				ns++
			case Goal:
				goal = Cell{r, c}
				ng++
			}
		}
	}
	if ns != 1 || ng != 1 {
		return Cell{}, Cell{}, fmt.Errorf("%w: found %d start and %d goal cells", ErrEndpointCount, ns, ng)
	}

	return start, goal, nil
}

// index maps (r,c) to a row‑major index: r*cols + c.
func (gg *GridGraph) index(r, c int) int {
	return r*gg.cols + c
}

// cell converts a row‑major index back to a Cell.
func (gg *GridGraph) cell(idx int) Cell {
	return Cell{Row: idx / gg.cols, Col: idx % gg.cols}
}
