// Package scenario loads scripted 2048 games from HCL files and replays them
// on a seeded engine.
//
// A file holds one or more scenario blocks:
//
//	scenario "merge-left" {
//	  seed  = 7
//	  grid  = [[2, 2, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0]]
//	  moves = ["left"]
//
//	  expect {
//	    score = 4
//	    over  = false
//	  }
//	}
//
// Without a grid the scenario starts from a fresh game on the given seed.
package scenario

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// DefaultSeed is used when a scenario has no seed attribute.
const DefaultSeed int64 = 1

// ErrNoScenarios is returned for files without any scenario block.
var ErrNoScenarios = errors.New("scenario: no scenario blocks")

// Scenario is a validated, ready to run scenario.
type Scenario struct {
	Name   string
	Seed   int64
	Score  int
	Grid   *t2048.Grid // nil starts a fresh game
	Moves  []t2048.Direction
	Expect *Expectation
}

// Expectation lists the checks applied to the final state. Nil fields are
// not checked.
type Expectation struct {
	Score   *int
	Over    *bool
	MaxTile *int
	Moved   *int
	Grid    *t2048.Grid
}

// LoadFile parses and validates every scenario in an HCL file.
func LoadFile(path string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: failed to parse %s: %s", path, diags.Error())
	}
	return decode(path, file)
}

// Parse is LoadFile for in-memory source. filename is used in diagnostics.
func Parse(src []byte, filename string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: failed to parse %s: %s", filename, diags.Error())
	}
	return decode(filename, file)
}

func decode(filename string, file *hcl.File) ([]Scenario, error) {
	var cfg fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("scenario: failed to decode %s: %s", filename, diags.Error())
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoScenarios, filename)
	}

	seen := make(map[string]bool, len(cfg.Scenarios))
	out := make([]Scenario, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		if seen[sc.Name] {
			return nil, fmt.Errorf("scenario: %s: duplicate scenario %q", filename, sc.Name)
		}
		seen[sc.Name] = true

		s, err := resolve(sc)
		if err != nil {
			return nil, fmt.Errorf("scenario: %s: %q: %w", filename, sc.Name, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func resolve(sc *scenarioConfig) (Scenario, error) {
	s := Scenario{Name: sc.Name, Seed: DefaultSeed}
	if sc.Seed != nil {
		s.Seed = *sc.Seed
	}
	if sc.Score != nil {
		if *sc.Score < 0 {
			return s, fmt.Errorf("negative score %d", *sc.Score)
		}
		s.Score = *sc.Score
	}

	grid, err := gridFromExpr(sc.Grid)
	if err != nil {
		return s, fmt.Errorf("grid: %w", err)
	}
	s.Grid = grid
	if s.Grid == nil && s.Score != 0 {
		return s, errors.New("score requires a grid")
	}

	for i, m := range sc.Moves {
		d, err := t2048.ParseDirection(m)
		if err != nil {
			return s, fmt.Errorf("moves[%d]: %w", i, err)
		}
		s.Moves = append(s.Moves, d)
	}

	if sc.Expect != nil {
		exp := &Expectation{
			Score:   sc.Expect.Score,
			Over:    sc.Expect.Over,
			MaxTile: sc.Expect.MaxTile,
			Moved:   sc.Expect.Moved,
		}
		if exp.Grid, err = gridFromExpr(sc.Expect.Grid); err != nil {
			return s, fmt.Errorf("expect grid: %w", err)
		}
		s.Expect = exp
	}
	return s, nil
}

var gridType = cty.List(cty.List(cty.Number))

// gridFromExpr evaluates a 4x4 nested list literal. An absent attribute
// evaluates to null and yields a nil grid.
func gridFromExpr(expr hcl.Expression) (*t2048.Grid, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}
	if val.IsNull() {
		return nil, nil
	}

	val, err := convert.Convert(val, gridType)
	if err != nil {
		return nil, fmt.Errorf("want a list of %d rows of %d numbers: %w", t2048.BoardSize, t2048.BoardSize, err)
	}
	if !val.IsWhollyKnown() {
		return nil, errors.New("grid must be a literal")
	}

	var rows [][]int
	if err := gocty.FromCtyValue(val, &rows); err != nil {
		return nil, err
	}
	if len(rows) != t2048.BoardSize {
		return nil, fmt.Errorf("want %d rows, got %d", t2048.BoardSize, len(rows))
	}

	var g t2048.Grid
	for r, row := range rows {
		if len(row) != t2048.BoardSize {
			return nil, fmt.Errorf("row %d: want %d cells, got %d", r, t2048.BoardSize, len(row))
		}
		copy(g[r][:], row)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}
