// Package scenario decodes a fixed treasure-hunt scenario from HCL and turns
// it into the inputs of a search: a built grid graph, its endpoints and a
// traversal gate.
//
// A scenario file looks like:
//
//	grid {
//	  rows = [
//	    "W..#...G",
//	    "........",
//	    "S.......",
//	  ]
//	}
//
//	weights {
//	  min  = min_weight # 1
//	  max  = max_weight # 7
//	  seed = 42
//	}
//
//	gate {
//	  block_probability = default_block_probability # 0.8
//	  seed              = 7
//	}
//
// The weights and gate blocks are optional, as is every attribute inside
// them. The variables min_weight, max_weight and default_block_probability
// are available to every expression.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/hazardgrid/gate"
	"github.com/katalvlaran/hazardgrid/gridgraph"
	"github.com/katalvlaran/hazardgrid/internal/ctxlog"
)

// Sentinel errors for scenario decoding.
var (
	// ErrMissingGrid indicates the file has no grid block.
	ErrMissingGrid = errors.New("scenario: grid block is required")
	// ErrBadWeights indicates an unusable weight range.
	ErrBadWeights = errors.New("scenario: weights require 1 ≤ min ≤ max")
	// ErrDecode indicates HCL syntax or decoding diagnostics.
	ErrDecode = errors.New("scenario: decode failed")
)

// fileRoot is the top-level shape of a scenario file.
type fileRoot struct {
	Grid    *gridBlock    `hcl:"grid,block"`
	Weights *weightsBlock `hcl:"weights,block"`
	Gate    *gateBlock    `hcl:"gate,block"`
}

type gridBlock struct {
	Rows []string `hcl:"rows"`
}

type weightsBlock struct {
	Min  *int64 `hcl:"min,optional"`
	Max  *int64 `hcl:"max,optional"`
	Seed *int64 `hcl:"seed,optional"`
}

type gateBlock struct {
	BlockProbability *float64 `hcl:"block_probability,optional"`
	Seed             *int64   `hcl:"seed,optional"`
}

// Scenario is a decoded, not yet built, scenario.
type Scenario struct {
	Rows             []string
	MinWeight        int64
	MaxWeight        int64
	WeightSeed       int64 // 0 ⇒ gridgraph default seed
	BlockProbability float64
	GateSeed         *int64 // nil ⇒ unseeded gate
}

// Built holds everything a search needs.
type Built struct {
	Graph *gridgraph.GridGraph
	Start gridgraph.Cell
	Goal  gridgraph.Cell
	Gate  *gate.HazardGate
}

// evalContext exposes the reference constants to scenario expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"min_weight":                cty.NumberIntVal(gridgraph.DefaultMinWeight),
			"max_weight":                cty.NumberIntVal(gridgraph.DefaultMaxWeight),
			"default_block_probability": cty.NumberFloatVal(gate.DefaultBlockProbability),
		},
	}
}

// Load reads and decodes the scenario file at path.
func Load(ctx context.Context, path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(ctx, src, path)
}

// Parse decodes scenario source. filename is used in diagnostics only.
func Parse(ctx context.Context, src []byte, filename string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing scenario.", "file", filename, "bytes", len(src))

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrDecode, filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrDecode, filename, diags)
	}
	if root.Grid == nil {
		return nil, ErrMissingGrid
	}

	sc := &Scenario{
		Rows:             root.Grid.Rows,
		MinWeight:        gridgraph.DefaultMinWeight,
		MaxWeight:        gridgraph.DefaultMaxWeight,
		BlockProbability: gate.DefaultBlockProbability,
	}
	if w := root.Weights; w != nil {
		if w.Min != nil {
			sc.MinWeight = *w.Min
		}
		if w.Max != nil {
			sc.MaxWeight = *w.Max
		}
		if w.Seed != nil {
			sc.WeightSeed = *w.Seed
		}
	}
	if g := root.Gate; g != nil {
		if g.BlockProbability != nil {
			sc.BlockProbability = *g.BlockProbability
		}
		sc.GateSeed = g.Seed
	}

	logger.Debug("Scenario decoded.",
		"rows", len(sc.Rows),
		"min_weight", sc.MinWeight,
		"max_weight", sc.MaxWeight,
		"block_probability", sc.BlockProbability,
		"gate_seeded", sc.GateSeed != nil)

	return sc, nil
}

// Build parses the layout, builds the graph, locates Start and Goal and
// constructs the hazard gate.
func (s *Scenario) Build() (*Built, error) {
	if s.MinWeight < 1 || s.MaxWeight < s.MinWeight {
		return nil, fmt.Errorf("%w: got min=%d max=%d", ErrBadWeights, s.MinWeight, s.MaxWeight)
	}
	labels, err := gridgraph.ParseLayout(s.Rows...)
	if err != nil {
		return nil, fmt.Errorf("scenario: layout: %w", err)
	}
	gg, err := gridgraph.NewGridGraph(labels,
		gridgraph.WithWeightFn(gridgraph.UniformWeightFn(s.MinWeight, s.MaxWeight)),
		gridgraph.WithSeed(s.WeightSeed))
	if err != nil {
		return nil, fmt.Errorf("scenario: grid: %w", err)
	}
	start, goal, err := gg.Endpoints()
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	opts := []gate.Option{gate.WithBlockProbability(s.BlockProbability)}
	if s.GateSeed != nil {
		opts = append(opts, gate.WithSeed(*s.GateSeed))
	}
	hg, err := gate.NewHazardGate(gg, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario: gate: %w", err)
	}

	return &Built{Graph: gg, Start: start, Goal: goal, Gate: hg}, nil
}
