package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

const sample = `
scenario "merge-left" {
  seed  = 7
  grid  = [[2, 2, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0]]
  moves = ["left"]

  expect {
    score    = 4
    over     = false
    max_tile = 4
    moved    = 1
  }
}

scenario "fresh" {
  moves = ["Up", "l"]
}
`

func TestParse(t *testing.T) {
	got, err := Parse([]byte(sample), "sample.hcl")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(got))
	}

	merge := got[0]
	if merge.Name != "merge-left" || merge.Seed != 7 {
		t.Errorf("merge = %q seed %d", merge.Name, merge.Seed)
	}
	if merge.Grid == nil || merge.Grid[0] != [4]int{2, 2, 0, 0} {
		t.Errorf("grid = %v", merge.Grid)
	}
	if len(merge.Moves) != 1 || merge.Moves[0] != t2048.DirLeft {
		t.Errorf("moves = %v", merge.Moves)
	}
	if merge.Expect == nil || *merge.Expect.Score != 4 || *merge.Expect.Over || *merge.Expect.MaxTile != 4 {
		t.Errorf("expect = %+v", merge.Expect)
	}
	if merge.Expect.Grid != nil {
		t.Error("absent expect grid should stay nil")
	}

	fresh := got[1]
	if fresh.Seed != DefaultSeed {
		t.Errorf("default seed = %d, want %d", fresh.Seed, DefaultSeed)
	}
	if fresh.Grid != nil || fresh.Expect != nil {
		t.Errorf("fresh should have no grid and no expectations: %+v", fresh)
	}
	if len(fresh.Moves) != 2 || fresh.Moves[0] != t2048.DirUp || fresh.Moves[1] != t2048.DirLeft {
		t.Errorf("moves = %v", fresh.Moves)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", `scenario "x" {`, "failed to parse"},
		{"no blocks", `# nothing`, "no scenario blocks"},
		{"unknown attribute", `scenario "x" { speed = 3 }`, "failed to decode"},
		{"bad move", `scenario "x" { moves = ["sideways"] }`, "moves[0]"},
		{"short grid", `scenario "x" { grid = [[2, 0, 0, 0]] }`, "want 4 rows"},
		{"short row", `scenario "x" { grid = [[2], [0, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0]] }`, "row 0"},
		{"odd tile", `scenario "x" { grid = [[3, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0]] }`, "invalid tile 3"},
		{"fraction", `scenario "x" { grid = [[2.5, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0]] }`, "grid"},
		{"not a list", `scenario "x" { grid = "2048" }`, "want a list"},
		{"duplicate", "scenario \"x\" {}\nscenario \"x\" {}", "duplicate"},
		{"score without grid", `scenario "x" { score = 10 }`, "score requires a grid"},
		{"bad expect grid", `scenario "x" {
			expect { grid = [[1, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0]] }
		}`, "expect grid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseNoScenariosSentinel(t *testing.T) {
	_, err := Parse([]byte(""), "empty.hcl")
	if !errors.Is(err, ErrNoScenarios) {
		t.Errorf("error = %v, want ErrNoScenarios", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.hcl")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d scenarios, want 2", len(got))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.hcl")); err == nil {
		t.Error("LoadFile() on a missing file should fail")
	}
}

func TestRunPasses(t *testing.T) {
	scenarios, err := Parse([]byte(sample), "sample.hcl")
	if err != nil {
		t.Fatal(err)
	}

	res, err := Run(scenarios[0])
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.Passed() {
		t.Fatalf("unexpected failures: %v", res.Failures)
	}
	if len(res.Steps) != 1 || !res.Steps[0].Result.Moved || res.Steps[0].Result.Gained != 4 {
		t.Errorf("steps = %+v", res.Steps)
	}
	// One merged tile plus one spawn.
	if n := t2048.TileCount(res.Final.Grid); n != 2 {
		t.Errorf("final tile count = %d, want 2", n)
	}
}

func TestRunExactGrid(t *testing.T) {
	// Only one cell frees up, so the spawn position is forced.
	src := `
scenario "forced-spawn" {
  grid = [
    [2, 2, 4, 8],
    [4, 8, 16, 32],
    [8, 16, 32, 64],
    [16, 32, 64, 128],
  ]
  moves = ["left"]

  expect {
    score = 4
    grid = [
      [4, 4, 8, 2],
      [4, 8, 16, 32],
      [8, 16, 32, 64],
      [16, 32, 64, 128],
    ]
  }
}
`
	scenarios, err := Parse([]byte(src), "forced.hcl")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	res, err := Run(scenarios[0])
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.Passed() {
		t.Errorf("unexpected failures: %v", res.Failures)
	}
}

func TestRunReportsMismatches(t *testing.T) {
	src := `
scenario "wrong" {
  grid  = [[2, 2, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0]]
  moves = ["right"]

  expect {
    score    = 8
    over     = true
    max_tile = 2
    moved    = 3
  }
}
`
	scenarios, err := Parse([]byte(src), "wrong.hcl")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(scenarios[0])
	if err != nil {
		t.Fatal(err)
	}
	if res.Passed() {
		t.Fatal("scenario should fail")
	}
	if len(res.Failures) != 4 {
		t.Errorf("got %d failures, want 4: %v", len(res.Failures), res.Failures)
	}
	for _, prefix := range []string{"score:", "over:", "max_tile:", "moved:"} {
		found := false
		for _, f := range res.Failures {
			if strings.HasPrefix(f, prefix) {
				found = true
			}
		}
		if !found {
			t.Errorf("no failure starting with %q in %v", prefix, res.Failures)
		}
	}
}

func TestRunFreshIsDeterministic(t *testing.T) {
	s := Scenario{Name: "fresh", Seed: 42, Moves: []t2048.Direction{t2048.DirUp, t2048.DirLeft, t2048.DirDown}}

	a, err := Run(s)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(s)
	if err != nil {
		t.Fatal(err)
	}
	if a.Initial != b.Initial || a.Final.Grid != b.Final.Grid || a.Final.Score != b.Final.Score {
		t.Error("same seed should replay identically")
	}
	if n := t2048.TileCount(a.Initial); n != t2048.InitialTiles {
		t.Errorf("fresh start has %d tiles, want %d", n, t2048.InitialTiles)
	}
}

func TestRunAll(t *testing.T) {
	scenarios, err := Parse([]byte(sample), "sample.hcl")
	if err != nil {
		t.Fatal(err)
	}
	results, err := RunAll(scenarios)
	if err != nil {
		t.Fatalf("RunAll() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if !r.Passed() {
			t.Errorf("%s failed: %v", r.Name, r.Failures)
		}
	}
}

func TestBundledScenarios(t *testing.T) {
	scenarios, err := LoadFile(filepath.Join("testdata", "basics.hcl"))
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			res, err := Run(s)
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if !res.Passed() {
				t.Errorf("failures: %v", res.Failures)
			}
		})
	}
}
