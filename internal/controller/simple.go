package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/minefield/internal/adapter"
	"github.com/mouse-blink/minefield/internal/domain"
	m "github.com/mouse-blink/minefield/internal/model"
)

// SimpleUI implements UI over cobra Command writers and the line-based
// turn protocol. It prints the whole board after every accepted turn.
type SimpleUI struct {
	cmd   *cobra.Command
	turns *adapter.TurnReader
}

// NewSimpleUI creates a SimpleUI reading turns from the given reader.
func NewSimpleUI(cmd *cobra.Command, turns *adapter.TurnReader) *SimpleUI {
	return &SimpleUI{cmd: cmd, turns: turns}
}

// Play drives the game with turns from the reader until the game ends or
// the input runs out. Malformed lines are reported and skipped; the game
// keeps going.
func (s *SimpleUI) Play(game *domain.Game) error {
	s.printBoard(game)

	turns := 0

	for game.State() == m.InProgress {
		turn, err := s.turns.Next()
		if errors.Is(err, io.EOF) {
			s.printf("out of input, game abandoned\n")

			return nil
		}

		if err != nil {
			s.printf("ignored: %v\n", err)

			continue
		}

		if turn.Mark {
			game.Mark(turn.X, turn.Y)
		} else {
			game.Reveal(turn.X, turn.Y)
		}

		turns++

		s.printBoard(game)
	}

	switch game.State() {
	case m.Lost:
		s.printf("boom, you stepped on a mine\n")
	case m.Won:
		s.printf("all mines accounted for, you win\n")
	}

	s.printSummary(game, turns)

	return nil
}

func (s *SimpleUI) printBoard(game *domain.Game) {
	board := game.Board()

	s.printf("mines left: %d\n", game.Remaining())

	for y := 0; y < board.Rows(); y++ {
		s.printf("%s\n", board.Row(y))
	}
}

func (s *SimpleUI) printSummary(game *domain.Game, turns int) {
	board := game.Board()

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Outcome", game.State().String()})
	table.Append([]string{"Turns", fmt.Sprintf("%d", turns)})
	table.Append([]string{"Mines", fmt.Sprintf("%d", board.Mines())})
	table.Append([]string{"Marked", fmt.Sprintf("%d", board.Marks())})
	table.Append([]string{"Revealed", fmt.Sprintf("%d", board.Revealed())})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
