package scenario

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Step is one replayed move.
type Step struct {
	Dir    t2048.Direction
	Result t2048.MoveResult
}

// Result is the outcome of running a scenario.
type Result struct {
	Name     string
	Initial  t2048.Grid
	Steps    []Step
	Final    t2048.MoveResult
	Moved    int
	Failures []string
}

// Passed reports whether every expectation held.
func (r Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run replays s on a fresh engine seeded with s.Seed.
func Run(s Scenario) (Result, error) {
	eng := t2048.NewSeededEngine(s.Seed)

	var final t2048.MoveResult
	if s.Grid != nil {
		if err := eng.Load(*s.Grid, s.Score); err != nil {
			return Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		final = t2048.MoveResult{Grid: eng.Grid(), Score: eng.Score(), GameOver: eng.IsGameOver()}
	} else {
		final = eng.Reset()
	}

	res := Result{Name: s.Name, Initial: eng.Grid()}
	for _, d := range s.Moves {
		final = eng.Move(d)
		res.Steps = append(res.Steps, Step{Dir: d, Result: final})
	}
	res.Final = final
	res.Moved = eng.Moves()

	if s.Expect != nil {
		res.Failures = s.Expect.check(res)
	}
	return res, nil
}

// RunAll runs every scenario and stops at the first hard error.
func RunAll(scenarios []Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		r, err := Run(s)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

func (e *Expectation) check(r Result) []string {
	var failures []string
	if e.Score != nil && r.Final.Score != *e.Score {
		failures = append(failures, fmt.Sprintf("score: got %d, want %d", r.Final.Score, *e.Score))
	}
	if e.Over != nil && r.Final.GameOver != *e.Over {
		failures = append(failures, fmt.Sprintf("over: got %t, want %t", r.Final.GameOver, *e.Over))
	}
	if e.MaxTile != nil {
		if got := t2048.MaxTile(r.Final.Grid); got != *e.MaxTile {
			failures = append(failures, fmt.Sprintf("max_tile: got %d, want %d", got, *e.MaxTile))
		}
	}
	if e.Moved != nil && r.Moved != *e.Moved {
		failures = append(failures, fmt.Sprintf("moved: got %d, want %d", r.Moved, *e.Moved))
	}
	if e.Grid != nil && r.Final.Grid != *e.Grid {
		failures = append(failures, fmt.Sprintf("grid: got\n%s\nwant\n%s", r.Final.Grid, *e.Grid))
	}
	return failures
}
