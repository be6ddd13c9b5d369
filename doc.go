// Package hazardgrid finds low-cost routes across small weighted grids
// where some cells are walls and some are hazards that may turn a walker
// back on any given attempt.
//
// What is hazardgrid?
//
//	A compact, pure-Go toolkit built around one search:
//		• gridgraph: classified cells (Safe, Hazard, Blocked, Start, Goal) as an
//		  immutable, weighted, 8-connected graph
//		• gate:      per-attempt traversal decisions; HazardGate rejects Hazard
//		  cells with probability 0.8 by default, seedable for reproducible runs
//		• astar:     best-first search with g + Manhattan priority that consults
//		  the gate before every committed relaxation
//		• report:    text and JSON output with an explicit "unreachable" outcome
//		• scenario:  fixed scenario files in HCL, decoded into graph + endpoints + gate
//
// Quick ASCII example:
//
//	. . G
//	. W .
//	S . .
//
// From S the cheapest unit-weight route is the diagonal through W; with
// gate.RejectHazards the search walks around it instead.
//
// Note: the Manhattan heuristic is not admissible when diagonal steps cost
// less than 2. This is a property of the model, see package astar.
package hazardgrid
