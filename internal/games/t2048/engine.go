package t2048

import (
	"fmt"
	"math/rand"
	"time"
)

// SpawnValue is the only value ever placed by a spawn.
const SpawnValue = 2

// InitialTiles is how many tiles a fresh game starts with.
const InitialTiles = 2

// Status is the engine's macro-state.
type Status int

const (
	StatusPlaying Status = iota
	StatusOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// MoveResult is the outcome of a move or reset.
type MoveResult struct {
	Grid     Grid
	Score    int  // Score after the move
	Gained   int  // Score added by this move's merges
	Moved    bool // Whether any cell changed position or value
	GameOver bool
}

// Engine owns one 4x4 grid and its running score.
// It is not safe for concurrent use; each game gets its own Engine.
type Engine struct {
	grid   Grid
	score  int
	moves  int
	status Status
	rng    *rand.Rand
}

// NewEngine creates an engine drawing spawn positions from rng.
// A nil rng is replaced by one seeded from the clock.
// The grid starts empty; call Reset to begin a game.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// NewSeededEngine creates an engine with a deterministic spawn sequence.
func NewSeededEngine(seed int64) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)))
}

// StartGame clears the grid and spawns the initial tiles.
// The score is left alone; Reset zeroes it first.
func (e *Engine) StartGame() {
	e.grid = Grid{}
	e.moves = 0
	e.status = StatusPlaying
	for range InitialTiles {
		e.SpawnRandomTile()
	}
}

// Reset zeroes the score and starts a new game.
func (e *Engine) Reset() MoveResult {
	e.score = 0
	e.StartGame()
	return e.result(0, false)
}

// Move slides every line toward dir. When anything moved a tile is
// spawned and the terminal state is recomputed; otherwise the grid and
// score are left untouched.
func (e *Engine) Move(dir Direction) MoveResult {
	next, gained, moved := Slide(e.grid, dir)
	if !moved {
		return e.result(0, false)
	}

	e.grid = next
	e.score += gained
	e.moves++
	e.SpawnRandomTile()

	if e.IsGameOver() {
		e.status = StatusOver
	}

	return e.result(gained, true)
}

// SpawnRandomTile places a 2 on a uniformly chosen empty cell.
// Returns the position and false when the grid is full.
func (e *Engine) SpawnRandomTile() (Pos, bool) {
	empty := EmptyCells(e.grid)
	if len(empty) == 0 {
		return Pos{}, false
	}

	p := empty[e.rng.Intn(len(empty))]
	e.grid[p.Row][p.Col] = SpawnValue
	return p, true
}

// IsGameOver reports whether no move can change the grid.
func (e *Engine) IsGameOver() bool {
	return IsGameOver(e.grid)
}

// Load replaces the grid and score, for scripted scenarios and tests.
func (e *Engine) Load(g Grid, score int) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if score < 0 {
		return fmt.Errorf("t2048: negative score %d", score)
	}

	e.grid = g
	e.score = score
	e.moves = 0
	e.status = StatusPlaying
	if IsGameOver(g) {
		e.status = StatusOver
	}
	return nil
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Moves returns how many moves changed the grid since the last start.
func (e *Engine) Moves() int {
	return e.moves
}

// Status returns Playing or Over.
func (e *Engine) Status() Status {
	return e.status
}

func (e *Engine) result(gained int, moved bool) MoveResult {
	return MoveResult{
		Grid:     e.grid,
		Score:    e.score,
		Gained:   gained,
		Moved:    moved,
		GameOver: e.status == StatusOver,
	}
}
