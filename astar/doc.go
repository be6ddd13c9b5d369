// Package astar implements a best-first (A*-style) search over a
// gridgraph.GridGraph whose Hazard cells may reject traversal attempts.
//
// Overview:
//
//   - Search finds a low-cost path from a start cell to a goal cell.
//   - The frontier is a min-heap keyed by priority = g + h, where g is the
//     accumulated edge cost and h the Manhattan distance to the goal.
//   - Before committing an improved cost for a neighbor, the engine asks a
//     gate.Gate whether that cell may be entered. A rejection drops only that
//     relaxation; the same cell may be reached later through another
//     predecessor, with no penalty.
//   - The start cell is seeded directly and is never gated.
//
// Heuristic note:
//
//	The Manhattan distance is not admissible on an 8-connected grid when a
//	diagonal step costs less than 2: one diagonal move lowers h by 2. The
//	returned path may then be more expensive than the optimum. With every
//	edge weight ≥ 2 the heuristic is consistent and Search is optimal.
//	This trade-off is kept deliberately; callers needing exact costs with
//	cheap diagonals should run with weights ≥ 2 or post-check the result.
//
// Frontier policy:
//
//   - "Lazy decrease-key": an improved cell is pushed again and older entries
//     stay in the heap. Stale entries are expanded using the current cost map,
//     so they can never cause an incorrect relaxation.
//   - Ties on priority are broken by row, then column, then insertion order,
//     which makes runs with a deterministic gate fully reproducible.
//
// Outcome:
//
//   - StatusFound:       Result.Cost and Result.Path describe the route (start..goal inclusive).
//   - StatusUnreachable: the frontier emptied before the goal was popped.
//     This is a normal outcome, not an error.
//
// Errors (sentinel):
//
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrInvalidEndpoint: start or goal is out of bounds or Blocked.
//   - ErrOptionViolation: nil gate or negative expansion limit.
//   - ErrExpansionLimit:  WithMaxExpansions was exceeded.
//
// Complexity:
//
//   - Time:  O(E log E) heap work in the worst case (each strict improvement pushes once).
//   - Space: O(V·L) for the path map, L = longest stored path, plus O(E) heap entries.
//
// Thread safety:
//
//   - All search state is local to one call. The graph is read-only and may be
//     shared by concurrent searches; each search should own its gate or use a
//     gate that is safe for concurrent use (gate.HazardGate is).
package astar
