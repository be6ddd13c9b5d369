package astar

import "github.com/katalvlaran/hazardgrid/gridgraph"

// entry is one frontier item: a cell and the priority g+h it was pushed with.
// Several entries for the same cell may coexist.
type entry struct {
	cell     gridgraph.Cell
	priority int64
	seq      uint64 // insertion order, last tie-breaker
}

// frontier is a min-heap of *entry ordered by priority, then row, then
// column, then insertion order. Stale entries are never removed; they are
// popped and expanded against the current cost map.
type frontier []*entry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by priority and breaks ties deterministically.
func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.cell.Row != b.cell.Row {
		return a.cell.Row < b.cell.Row
	}
	if a.cell.Col != b.cell.Col {
		return a.cell.Col < b.cell.Col
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *entry.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to *entry.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
