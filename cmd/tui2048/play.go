package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (2048 by default).

Controls:
  Arrows/WASD/hjkl  - Slide the board
  P                 - Pause
  R                 - Restart
  Ctrl+S            - Save a screenshot to ~/.tui2048/screenshots
  Q/Ctrl+C          - Quit

Examples:
  tui2048 play
  tui2048 play 2048 --seed 42
  tui2048 play --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := t2048.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'tui2048 list' to see available games)", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, runtimeConfig(), tuiOptions(store))
}

// runtimeConfig builds the game config from the terminal size and app config.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appConfig.Game.TickRate
	cfg.Seed = appConfig.Game.Seed
	return cfg
}

// openStore opens the scores database. Play continues without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", appConfig.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// tuiOptions returns model options for a local session.
func tuiOptions(store *storage.Store) tui.Options {
	opts := tui.Options{
		Store:     store,
		Logger:    tuiLogger().WithPrefix("play"),
		SessionID: uuid.NewString(),
	}
	if home, err := os.UserHomeDir(); err == nil {
		opts.ScreenshotDir = filepath.Join(home, ".tui2048", "screenshots")
	}
	return opts
}
