package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for a game (2048 by default).

On a terminal this opens the interactive scoreboard; when output is piped
or --plain is given, a text table is printed instead.

Examples:
  tui2048 scores
  tui2048 scores --plain --limit 20
  tui2048 scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to print")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores and the best score")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a text table even on a terminal")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := t2048.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("%w %q (run 'tui2048 list' to see available games)", registry.ErrUnknownGame, gameID)
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		if gameID == t2048.GameID {
			if err := store.SetInt(t2048.HighScoreNamespace, t2048.HighScoreKey, 0); err != nil {
				return err
			}
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Fprintf(out, "Scores for %s cleared.\n", gameID)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		_, err = tui.RunScoreboard(store, gameID, width, height)
		return err
	}

	return printScores(out, store, gameID, flagScoresLimit)
}

// printScores writes a plain text score table.
func printScores(out io.Writer, store *storage.Store, gameID string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'tui2048 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Tile", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.MaxTile, dateStr)
	}

	fmt.Fprintln(out)
	if gameID == t2048.GameID {
		best, err := store.GetInt(t2048.HighScoreNamespace, t2048.HighScoreKey, 0)
		if err == nil {
			fmt.Fprintf(out, "Best: %d\n", best)
		}
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(out, "Games: %d  Average: %.0f  Best tile: %d\n", stats.GamesCount, stats.AvgScore, stats.BestTile)
	}
	return nil
}
