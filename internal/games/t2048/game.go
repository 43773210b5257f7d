// Package t2048 implements the 2048 sliding-tile puzzle on a fixed 4x4 grid.
package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// GameID is the registry identifier and score key of the game.
const GameID = "2048"

// Game adapts an Engine to the platform's tick loop.
type Game struct {
	engine     *Engine
	highScores *HighScores
	tick       uint64

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a 2048 game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// SetHighScores attaches the best-score keeper shown in the HUD.
func (g *Game) SetHighScores(h *HighScores) {
	g.highScores = h
}

// Engine exposes the underlying grid engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Reset seeds a fresh engine from cfg and starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewEngine(rand.New(rand.NewSource(cfg.Seed)))
	g.engine.Reset()
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick. At most one move is applied per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.engine.Reset()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	over := g.engine.Status() == StatusOver

	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}

	// Moves stop once the game is over; only restart brings it back.
	if g.paused || over {
		return core.StepResult{State: g.State()}
	}

	a, ok := in.First(core.IsDirection)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	res := g.engine.Move(directionFor(a))
	if res.Moved && g.highScores != nil {
		g.highScores.Record(res.Score)
	}

	return core.StepResult{State: g.State(), Moved: res.Moved}
}

// directionFor maps a move action to a Direction.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	default:
		return DirRight
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Status() == StatusOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Best returns the best score, or the current score without a keeper.
func (g *Game) Best() int {
	if g.highScores == nil {
		return g.engine.Score()
	}
	return max(g.highScores.Best(), g.engine.Score())
}
