package astar

import "github.com/katalvlaran/hazardgrid/gridgraph"

// Manhattan returns |goal.Row-c.Row| + |goal.Col-c.Col|.
//
// It overestimates the remaining cost when diagonal steps weigh less than 2,
// so it is not admissible on this 8-connected grid in general. See the
// package documentation.
func Manhattan(c, goal gridgraph.Cell) int64 {
	return int64(abs(goal.Row-c.Row) + abs(goal.Col-c.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
