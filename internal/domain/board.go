// Package domain implements the minesweeper board, the flood-fill reveal
// engine and the game state machine. It is UI-agnostic and, given a seed,
// fully deterministic.
package domain

import (
	"math/rand"
	"strings"

	m "github.com/mouse-blink/minefield/internal/model"
)

// neighbors8 lists the coordinate offsets of the 8-connectivity
// neighborhood: the 4 orthogonal plus the 4 diagonal cells.
var neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Board is a fixed-size grid of cells. It owns mine placement and hint
// bookkeeping; revealing is driven by the Game through the flood fill.
type Board struct {
	cfg   m.Config
	cells [][]m.Cell // indexed [y][x]
	mines int
	rng   *rand.Rand

	// Mark bookkeeping, split by content so the win predicate is O(1):
	// the game is won when every mine is marked and nothing else is.
	minesMarked int
	safeMarked  int
}

// NewBoard creates an all-covered board of cfg.Rows x cfg.Cols cells with
// no mines placed yet. The PRNG is seeded from cfg.Seed.
func NewBoard(cfg m.Config) *Board {
	cells := make([][]m.Cell, cfg.Rows)
	for y := range cells {
		cells[y] = make([]m.Cell, cfg.Cols)
	}

	return &Board{
		cfg:   cfg,
		cells: cells,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.cfg.Rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cfg.Cols }

// Mines returns the number of mines placed.
func (b *Board) Mines() int { return b.mines }

// Marks returns the number of currently marked cells.
func (b *Board) Marks() int { return b.minesMarked + b.safeMarked }

// InBounds reports whether (x, y) addresses a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cfg.Cols && y >= 0 && y < b.cfg.Rows
}

// Cell returns a copy of the cell at (x, y). It must only be called with
// in-bounds coordinates.
func (b *Board) Cell(x, y int) m.Cell {
	return b.cells[y][x]
}

// PlaceMines scatters count mines uniformly over the board by rejection
// sampling: positions already mined are redrawn. count is clamped to
// [0, Rows*Cols]. Each placement bumps the hint of every non-mine
// neighbor; mines themselves never carry hints.
func (b *Board) PlaceMines(count int) {
	if count < 0 {
		count = 0
	}

	if total := b.cfg.Size(); count > total {
		count = total
	}

	b.mines = count

	for placed := 0; placed < count; {
		if b.placeMine(b.rng.Intn(b.cfg.Cols), b.rng.Intn(b.cfg.Rows)) {
			placed++
		}
	}
}

// placeMine puts a mine on the in-bounds cell (x, y) and bumps the hint
// of every non-mine neighbor. Reports whether the cell was newly mined;
// an existing mine is left alone so the caller can redraw.
func (b *Board) placeMine(x, y int) bool {
	cell := &b.cells[y][x]
	if cell.Content == m.Mine {
		return false
	}

	cell.Content = m.Mine
	cell.Hint = 0

	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		if !b.InBounds(nx, ny) {
			continue
		}

		neighbor := &b.cells[ny][nx]
		if neighbor.Content == m.Mine {
			continue
		}

		neighbor.Content = m.Hint
		neighbor.Hint++
	}

	return true
}

// ToggleMark flips the mark on the covered cell at (x, y). Out-of-bounds
// coordinates and already-revealed cells are ignored; content is never
// touched, so unmarking restores the cell exactly.
func (b *Board) ToggleMark(x, y int) {
	if !b.InBounds(x, y) {
		return
	}

	cell := &b.cells[y][x]
	if cell.Revealed {
		return
	}

	cell.Marked = !cell.Marked

	delta := 1
	if !cell.Marked {
		delta = -1
	}

	if cell.Content == m.Mine {
		b.minesMarked += delta
	} else {
		b.safeMarked += delta
	}
}

// Won reports whether every mine is marked and no safe cell is marked.
// Revealed cells don't matter to the predicate: flagging, not clearing,
// is the victory condition.
func (b *Board) Won() bool {
	return b.minesMarked == b.mines && b.safeMarked == 0
}

// Revealed returns the number of revealed cells.
func (b *Board) Revealed() int {
	n := 0

	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x].Revealed {
				n++
			}
		}
	}

	return n
}

// Row renders row y as one rune per cell, using the Cell.Rune contract.
func (b *Board) Row(y int) string {
	var sb strings.Builder

	sb.Grow(b.cfg.Cols)

	for x := 0; x < b.cfg.Cols; x++ {
		sb.WriteRune(b.cells[y][x].Rune())
	}

	return sb.String()
}
