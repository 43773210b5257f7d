package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Score   int
	Best    int
	Moves   int
	Board   Grid
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.Status() == StatusOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	grid := g.engine.Grid()
	return Snapshot{
		Tick:    g.tick,
		Score:   g.engine.Score(),
		Best:    g.Best(),
		Moves:   g.engine.Moves(),
		Board:   grid,
		MaxTile: MaxTile(grid),
		State:   state,
	}
}
