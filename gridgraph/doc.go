// Package gridgraph treats a 2D grid of classified cells as a weighted,
// undirected, 8-connected graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]Label grid (Safe, Hazard, Blocked, Start, Goal).
//   - Blocked cells are excluded entirely: no node, no incident edge.
//   - Every other cell is linked to its in-bounds, non-Blocked neighbors
//     horizontally, vertically and along both diagonals.
//   - Edge weights are positive integers assigned once at construction and
//     fixed for the lifetime of the graph.
//
// Why:
//
//   - Treasure-hunt style maps: hazards that may stop a walker, walls that always do.
//   - Robot and game navigation on small occupancy grids.
//   - A read-only model that many searches can share concurrently.
//
// Construction policy:
//
//	Cells are scanned row-major. For each non-Blocked cell an edge is added to
//	each non-Blocked neighbor among {left, up, up-left, up-right}, so every
//	unordered pair is created exactly once. Weights are drawn from a WeightFn
//	in that same order, so a fixed seed always yields the same graph.
//
// Complexity:
//
//   - NewGridGraph:          O(W×H), Memory: O(W×H).
//   - NewGridGraphFromEdges: O(W×H + E), Memory: O(W×H + E).
//   - Neighbors, Weight:     O(1) (at most 8 arcs per cell).
//
// Options:
//
//   - WithWeightFn: edge weight distribution (default UniformWeightFn(1, 7)).
//   - WithSeed:     deterministic RNG seed (0 ⇒ fixed default seed).
//   - WithRand:     caller-owned *rand.Rand.
//
// Errors:
//
//   - ErrEmptyGrid:        input grid has no rows or no columns.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrBadLabel:         a cell carries the reserved Path marker or an unknown label.
//   - ErrBadWeight:        an edge weight is not a positive integer.
//   - ErrCellOutOfBounds:  an explicit edge references a cell outside the grid.
//   - ErrBlockedEdge:      an explicit edge touches a Blocked cell.
//   - ErrNotAdjacent:      an explicit edge joins cells that are not 8-adjacent.
//   - ErrAsymmetricWeight: an explicit pair is listed twice with different weights.
//   - ErrEndpointCount:    the grid does not hold exactly one Start and one Goal.
package gridgraph
