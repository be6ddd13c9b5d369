// Package gate decides whether a search may enter a given cell on a given
// attempt.
//
// Overview:
//
//   - A Gate is a capability: given a cell, it yields a boolean traversal decision.
//   - HazardGate rejects entry into Hazard cells with a fixed probability
//     (DefaultBlockProbability = 0.8) and allows every other cell.
//   - Each call is an independent trial. A rejection means only "this attempt
//     failed"; the next attempt on the same cell rolls again.
//   - AllowAll and RejectHazards are deterministic gates for tests and for
//     callers who want a plain shortest path or a hazard-free one.
//
// Randomness:
//
//   - WithSeed makes a HazardGate reproducible: same seed, same sequence of calls,
//     same decisions.
//   - Without a seed the gate draws from a time-seeded source.
//   - The internal *rand.Rand is guarded by a mutex, so one gate may be shared by
//     concurrent searches (at the cost of cross-search interleaving). Fork derives
//     an independent, deterministic stream per search instead.
//
// Errors:
//
//   - ErrBadProbability: block probability outside [0,1] or NaN.
//   - ErrNilClassifier:  HazardGate constructed without a classifier.
//
// A Gate never panics and never returns an error at call time.
package gate
