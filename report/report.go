// Package report renders the outcome of an astar search for people and
// for machines.
//
// A Report distinguishes three cases a caller must never confuse:
// a route with positive cost, the trivial start==goal route with cost 0,
// and no route at all. The last one carries a nil Cost, never 0.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hazardgrid/astar"
	"github.com/katalvlaran/hazardgrid/gridgraph"
)

// Report is the caller-facing view of an astar.Result.
type Report struct {
	Reachable bool
	Cost      *int64 // nil when unreachable
	Path      []gridgraph.Cell
}

// New builds a Report from res. A nil res reports as unreachable.
func New(res *astar.Result) Report {
	if !res.Reachable() {
		return Report{Path: []gridgraph.Cell{}}
	}
	cost := res.Cost

	return Report{
		Reachable: true,
		Cost:      &cost,
		Path:      append([]gridgraph.Cell(nil), res.Path...),
	}
}

// jsonReport is the wire shape: cells as [row, col] pairs.
type jsonReport struct {
	Reachable bool     `json:"reachable"`
	Cost      *int64   `json:"cost"`
	Path      [][2]int `json:"path"`
}

// MarshalJSON encodes the report as
// {"reachable":true,"cost":2,"path":[[2,0],[1,1],[0,2]]}.
func (r Report) MarshalJSON() ([]byte, error) {
	out := jsonReport{
		Reachable: r.Reachable,
		Cost:      r.Cost,
		Path:      make([][2]int, len(r.Path)),
	}
	for i, c := range r.Path {
		out.Path[i] = [2]int{c.Row, c.Col}
	}

	return json.Marshal(out)
}

// WriteJSON writes New(res) as one line of JSON.
func WriteJSON(w io.Writer, res *astar.Result) error {
	data, err := json.Marshal(New(res))
	if err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	data = append(data, '\n')
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("report: write json: %w", err)
	}

	return nil
}

// WriteText writes the minimum cost and the path in human-readable form,
// or a single "no path" line when the goal was unreachable.
func WriteText(w io.Writer, res *astar.Result) error {
	rep := New(res)
	var err error
	if !rep.Reachable {
		_, err = fmt.Fprintln(w, "No path from 'Start' to 'Goal' (A* with Manhattan distance heuristic)")
	} else {
		_, err = fmt.Fprintf(w,
			"Minimum cost from 'Start' to 'Goal' (A* with Manhattan distance heuristic):\n%d\n"+
				"Path from 'Start' to 'Goal' (A* with Manhattan distance heuristic):\n%s\n",
			*rep.Cost, formatPath(rep.Path))
	}
	if err != nil {
		return fmt.Errorf("report: write text: %w", err)
	}

	return nil
}

// Summary returns a one-line description such as
// "cost 2 via 3 cells: (2,0) → (1,1) → (0,2)" or "unreachable".
func Summary(res *astar.Result) string {
	rep := New(res)
	if !rep.Reachable {
		return "unreachable"
	}
	parts := make([]string, len(rep.Path))
	for i, c := range rep.Path {
		parts[i] = c.String()
	}

	return fmt.Sprintf("cost %d via %d cells: %s", *rep.Cost, len(rep.Path), strings.Join(parts, " → "))
}

// formatPath renders cells as "[(2,0), (1,1), (0,2)]".
func formatPath(p []gridgraph.Cell) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
