package domain

import (
	"strings"

	m "github.com/mouse-blink/minefield/internal/model"
)

// Game owns one board for its whole lifetime and is the only mutator of
// it. It runs the InProgress -> Won/Lost state machine; both terminal
// states are sticky.
type Game struct {
	board *Board
	state m.GameState
}

// NewGame builds a board from cfg, places the requested number of mines
// (clamped to the board size) and starts in InProgress.
func NewGame(cfg m.Config, mines int) *Game {
	board := NewBoard(cfg)
	board.PlaceMines(mines)

	return &Game{
		board: board,
		state: m.InProgress,
	}
}

// State returns the current game state.
func (g *Game) State() m.GameState {
	return g.state
}

// Board returns the board owned by the game.
func (g *Game) Board() *Board {
	return g.board
}

// Remaining returns the mine count minus the number of marks, the
// counter shown to the player. It can go negative when safe cells are
// misflagged.
func (g *Game) Remaining() int {
	return g.board.Mines() - g.board.Marks()
}

// Reveal uncovers the cell at (x, y). Out-of-bounds coordinates are
// silently ignored. Revealing a mine loses the game immediately, with no
// other cell touched; anything else flood-fills from the target and then
// checks for victory. The win predicate is only ever evaluated here,
// never after a mark.
func (g *Game) Reveal(x, y int) m.GameState {
	if g.state != m.InProgress {
		return g.state
	}

	if !g.board.InBounds(x, y) {
		return g.state
	}

	if g.board.Cell(x, y).Content == m.Mine {
		g.state = m.Lost

		return g.state
	}

	g.board.flood(x, y)

	if g.board.Won() {
		g.state = m.Won
	}

	return g.state
}

// Mark toggles the flag on the cell at (x, y). Marking alone never ends
// the game, even if it happens to complete the win predicate: that is
// only checked on the next reveal.
func (g *Game) Mark(x, y int) {
	if g.state != m.InProgress {
		return
	}

	g.board.ToggleMark(x, y)
}

// Render returns the whole board as newline-separated rows in the
// per-cell rune contract.
func (g *Game) Render() string {
	var sb strings.Builder

	sb.Grow((g.board.Cols() + 1) * g.board.Rows())

	for y := 0; y < g.board.Rows(); y++ {
		sb.WriteString(g.board.Row(y))
		sb.WriteByte('\n')
	}

	return sb.String()
}
