package scenario

import "github.com/hashicorp/hcl/v2"

// fileConfig is the top-level structure of a scenario file.
type fileConfig struct {
	Scenarios []*scenarioConfig `hcl:"scenario,block"`
}

// scenarioConfig is one `scenario "<name>" { ... }` block as written.
type scenarioConfig struct {
	Name   string         `hcl:"name,label"`
	Seed   *int64         `hcl:"seed,optional"`
	Score  *int           `hcl:"score,optional"`
	Grid   hcl.Expression `hcl:"grid,optional"`
	Moves  []string       `hcl:"moves,optional"`
	Expect *expectConfig  `hcl:"expect,block"`
}

// expectConfig holds the optional checks run after the last move.
type expectConfig struct {
	Score   *int           `hcl:"score,optional"`
	Over    *bool          `hcl:"over,optional"`
	MaxTile *int           `hcl:"max_tile,optional"`
	Moved   *int           `hcl:"moved,optional"`
	Grid    hcl.Expression `hcl:"grid,optional"`
}
