package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// lockedGrid has no empty cell and no equal neighbours.
var lockedGrid = t2048.Grid{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{4, 2, 4, 2},
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, opts Options) (Model, *t2048.Game) {
	t.Helper()
	game := t2048.New()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
	m := NewModel(game, cfg, opts)
	m.Init()
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestModelMovesOnTick(t *testing.T) {
	m, game := newTestModel(t, Options{})
	before := game.Engine().Grid()

	// Find a direction that changes the fresh board.
	for _, key := range []tea.KeyType{tea.KeyLeft, tea.KeyRight, tea.KeyUp, tea.KeyDown} {
		m = update(t, m, tea.KeyMsg{Type: key})
		m = tick(t, m)
		if game.Engine().Grid() != before {
			break
		}
	}

	if game.Engine().Moves() != 1 {
		t.Errorf("moves = %d, want 1", game.Engine().Moves())
	}
	if m.State().GameOver {
		t.Error("fresh game should not be over")
	}
}

func TestModelSavesScoreOnceOnGameOver(t *testing.T) {
	store := openStore(t)
	m, game := newTestModel(t, Options{Store: store, SessionID: "abc-123"})

	if err := game.Engine().Load(lockedGrid, 120); err != nil {
		t.Fatal(err)
	}
	m = tick(t, m)
	m = tick(t, m)

	if !m.State().GameOver {
		t.Fatal("model should observe game over")
	}

	scores, err := store.TopScores(t2048.GameID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want exactly 1", len(scores))
	}
	got := scores[0]
	if got.Score != 120 || got.MaxTile != 4 || got.SessionID != "abc-123" {
		t.Errorf("saved entry = %+v", got)
	}

	// Restarting re-arms the save.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(t, m)
	if m.State().GameOver {
		t.Fatal("restart should leave game over")
	}
	if err := game.Engine().Load(lockedGrid, 64); err != nil {
		t.Fatal(err)
	}
	tick(t, m)

	scores, _ = store.TopScores(t2048.GameID, 10)
	if len(scores) != 2 {
		t.Errorf("saved %d scores after second game, want 2", len(scores))
	}
}

func TestModelAttachesHighScores(t *testing.T) {
	store := openStore(t)
	if err := store.SetInt(t2048.HighScoreNamespace, t2048.HighScoreKey, 5000); err != nil {
		t.Fatal(err)
	}

	_, game := newTestModel(t, Options{Store: store})
	if game.Best() != 5000 {
		t.Errorf("Best() = %d, want persisted 5000", game.Best())
	}
}

func TestModelBackToMenu(t *testing.T) {
	tests := []struct {
		name      string
		allowBack bool
		pause     bool
		want      bool
	}{
		{"disabled", false, true, false},
		{"while playing", true, false, false},
		{"while paused", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, Options{AllowBack: tt.allowBack})
			if tt.pause {
				m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
				m = tick(t, m)
			}
			m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
			if m.BackToMenu() != tt.want {
				t.Errorf("BackToMenu() = %v, want %v", m.BackToMenu(), tt.want)
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m, game := newTestModel(t, Options{})
	before := game.Engine().Grid()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.Engine().Grid() != before {
		t.Error("resize should not reset the board")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	m = tick(t, m)
	if !m.State().Paused {
		t.Error("tiny window should pause the game")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m, _ := newTestModel(t, Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	matches, err := filepath.Glob(filepath.Join(dir, "2048_*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Errorf("found %d screenshots, want 1", len(matches))
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	out := m.View()
	if !strings.Contains(out, "Score") {
		t.Errorf("view should show the score:\n%s", out)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "plain")
	s.DrawStyledText(0, 1, "hot", core.ColorBrightWhite, t2048.TileColor(2048))

	out := RenderScreen(s, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "plain") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "hot") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
