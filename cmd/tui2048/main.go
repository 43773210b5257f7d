// tui2048 is the 2048 sliding-tile puzzle for the terminal, playable locally
// or over SSH.
//
// Usage:
//
//	tui2048 list              - List available games
//	tui2048 play [game]       - Play a game (default 2048)
//	tui2048 menu              - Start menu with game picker and scoreboard
//	tui2048 serve             - Start SSH server for remote play
//	tui2048 scores [game]     - Show high scores
//	tui2048 replay <file>...  - Replay HCL scenario files
//	tui2048 config            - Print or write the effective configuration
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.tui2048/config.yaml, ./configs/tui2048.yaml)
//	--fps <rate>       - Set tick rate
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Resolved in PersistentPreRunE
	appConfig config.AppConfig
	logger    *log.Logger
	logFile   *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `tui2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with the arrow keys, WASD or hjkl. Equal tiles merge and
add their value to your score. A new 2 appears after every move that
changes the board. The game ends when no move is left.

Available commands:
  list     - Show all available games
  play     - Play directly
  menu     - Interactive menu with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Run HCL scenario files
  config   - Show the effective configuration

Examples:
  tui2048 play
  tui2048 play --seed 42
  tui2048 serve
  tui2048 scores --limit 20
  tui2048 replay internal/scenario/testdata/basics.hcl`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, default from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal play logs nowhere otherwise)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the config, applies explicitly set flags and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Game.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tui2048",
		Level:           level,
	})
	appConfig = cfg
	return nil
}

// tuiLogger returns the logger for full-screen commands. Without --log-file
// it discards, since stderr shares the terminal with the game.
func tuiLogger() *log.Logger {
	if logFile != nil {
		return logger
	}
	return log.New(io.Discard)
}
