// Package cmd provides the root command and CLI setup for minefield.
package cmd

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/minefield/internal/adapter"
	"github.com/mouse-blink/minefield/internal/controller"
	"github.com/mouse-blink/minefield/internal/domain"
	m "github.com/mouse-blink/minefield/internal/model"
)

const defaultMines = 150

var minesFlag int
var seedFlag int64
var simpleFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minefield",
		Short: "Terminal minesweeper",
		Long: `Minefield is a terminal minesweeper on a fixed 1000x1000 grid.

On a terminal it opens an interactive board. With output piped, or with
--simple, it speaks a line protocol instead: first line is the mine count
(unless --mines is given), then one line per turn:

  col row        reveal the cell at 1-based (col, row)
  col row mine   toggle a mine flag on that cell

The game ends when every mine is flagged and nothing else is (win), or
when a reveal hits a mine (loss).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if simpleFlag || !controller.IsTTY(os.Stdout) {
				return runSimple(cmd)
			}

			return runTUI(cmd)
		},
	}

	cmd.PersistentFlags().IntVarP(&minesFlag, "mines", "m", defaultMines, "number of mines to place")
	cmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "mine placement seed, 0 means time-based")
	cmd.Flags().BoolVar(&simpleFlag, "simple", false, "force the line-mode UI even on a terminal")

	return cmd
}

// runSimple plays one game over the line protocol. The setup line is
// only consumed when the mine count was not given as a flag.
func runSimple(cmd *cobra.Command) error {
	turns := adapter.NewTurnReader(cmd.InOrStdin())

	mines := minesFlag

	if !cmd.Flags().Changed("mines") {
		count, err := turns.ReadMineCount()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if err == nil {
			mines = count
		}
	}

	game := domain.NewGame(m.DefaultConfig(gameSeed()), mines)

	return controller.NewSimpleUI(cmd, turns).Play(game)
}

// runTUI plays one game interactively.
func runTUI(cmd *cobra.Command) error {
	game := domain.NewGame(m.DefaultConfig(gameSeed()), minesFlag)

	return controller.NewTUI(cmd.OutOrStdout()).Play(game)
}

// gameSeed resolves the --seed flag, falling back to the clock.
func gameSeed() int64 {
	if seedFlag != 0 {
		return seedFlag
	}

	return time.Now().UnixNano()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
