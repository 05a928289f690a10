package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/minefield/internal/controller"
	"github.com/mouse-blink/minefield/internal/domain"
	m "github.com/mouse-blink/minefield/internal/model"
)

var statsGamesFlag int
var statsWorkersFlag int

// statsCmd represents the stats command.
var statsCmd = newStatsCmd()

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Simulate random games and report outcomes",
		Long: `Simulate a batch of games played by a random reveal policy and report
how they ended. Game i uses seed+i, so a batch is reproducible.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := domain.SimArgs{
				Config:  m.DefaultConfig(gameSeed()),
				Mines:   minesFlag,
				Games:   statsGamesFlag,
				Workers: statsWorkersFlag,
			}

			result, err := domain.Simulate(args)
			if err != nil {
				return err
			}

			controller.RenderSimReport(cmd.OutOrStdout(), args, result)

			return nil
		},
	}

	cmd.Flags().IntVarP(&statsGamesFlag, "games", "g", 10, "number of games to simulate")
	cmd.Flags().IntVarP(&statsWorkersFlag, "parallel", "p", 1, "number of games to run concurrently")

	return cmd
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
