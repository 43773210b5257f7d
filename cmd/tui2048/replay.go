package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/scenario"
)

var flagReplayVerbose bool

// errScenariosFailed is returned when any expectation did not hold.
var errScenariosFailed = errors.New("scenario expectations failed")

var replayCmd = &cobra.Command{
	Use:   "replay <file.hcl>...",
	Short: "Replay scripted games from HCL scenario files",
	Long: `Replay seeded move sequences and check their outcome.

Each file holds one or more scenario blocks:

  scenario "merge-left" {
    seed  = 7
    grid  = [[2, 2, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0]]
    moves = ["left"]

    expect {
      score = 4
      over  = false
    }
  }

The command exits non-zero when any expectation fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagReplayVerbose, "verbose", "v", false, "Print the grid after every move")
}

func runReplay(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		scenarios, err := scenario.LoadFile(path)
		if err != nil {
			return err
		}
		logger.Debug("loaded scenarios", "path", path, "count", len(scenarios))

		results, err := scenario.RunAll(scenarios)
		if err != nil {
			return err
		}
		for _, r := range results {
			printResult(out, r, flagReplayVerbose)
			if !r.Passed() {
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d %w", failed, errScenariosFailed)
	}
	return nil
}

// printResult writes one scenario outcome.
func printResult(out io.Writer, r scenario.Result, verbose bool) {
	status := "PASS"
	if !r.Passed() {
		status = "FAIL"
	}
	fmt.Fprintf(out, "%s  %s  score=%d max_tile=%d moved=%d over=%t\n",
		status, r.Name, r.Final.Score, t2048.MaxTile(r.Final.Grid), r.Moved, r.Final.GameOver)

	if verbose {
		fmt.Fprintf(out, "  start:\n%s\n", indent(r.Initial.String()))
		for i, step := range r.Steps {
			fmt.Fprintf(out, "  %d. %s (+%d):\n%s\n", i+1, step.Dir, step.Result.Gained, indent(step.Result.Grid.String()))
		}
	}

	for _, f := range r.Failures {
		fmt.Fprintf(out, "  - %s\n", f)
	}
}

func indent(s string) string {
	const pad = "    "
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
