package domain

import (
	"testing"

	m "github.com/mouse-blink/minefield/internal/model"
)

func countRevealed(b *Board) int {
	n := 0

	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			if b.Cell(x, y).Revealed {
				n++
			}
		}
	}

	return n
}

func TestFlood_ZeroMinesRevealsEverything(t *testing.T) {
	b := newTestBoard(4, 5)

	b.flood(2, 1)

	if got := countRevealed(b); got != 20 {
		t.Fatalf("flood on mine-free board revealed %d cells, want 20", got)
	}
}

func TestFlood_SingleMineCorner(t *testing.T) {
	// 3x3 with the mine in a corner: the three cells around it carry
	// hint 1, the rest are empty. One reveal from the opposite corner
	// must expose all 8 safe cells and leave the mine alone.
	b := newTestBoard(3, 3)
	b.placeMine(2, 2)
	b.mines = 1

	b.flood(0, 0)

	if got := countRevealed(b); got != 8 {
		t.Fatalf("revealed %d cells, want 8", got)
	}

	mine := b.Cell(2, 2)
	if mine.Revealed || mine.Marked {
		t.Fatalf("mine cell touched by flood: %+v", mine)
	}

	for _, pos := range []struct{ x, y int }{{1, 1}, {2, 1}, {1, 2}} {
		cell := b.Cell(pos.x, pos.y)
		if cell.Content != m.Hint || cell.Hint != 1 {
			t.Fatalf("cell (%d,%d) = %+v, want hint 1", pos.x, pos.y, cell)
		}
	}
}

func TestFlood_StopsAtHintRing(t *testing.T) {
	// One row, mine in the middle: the fill from the left end must stop
	// at the hint left of the mine and never reach the right side.
	b := newTestBoard(1, 7)
	b.placeMine(3, 0)
	b.mines = 1

	b.flood(0, 0)

	if got := b.Row(0); got != "//1...." {
		t.Fatalf("Row(0) = %q, want %q", got, "//1....")
	}
}

func TestFlood_StartOnHintRevealsOnlyThatCell(t *testing.T) {
	b := newTestBoard(1, 7)
	b.placeMine(3, 0)
	b.mines = 1

	b.flood(2, 0)

	if got := b.Row(0); got != "..1...." {
		t.Fatalf("Row(0) = %q, want %q", got, "..1....")
	}
}

func TestFlood_ClearsMarksItReaches(t *testing.T) {
	b := newTestBoard(3, 3)
	b.placeMine(2, 2)
	b.mines = 1

	// A misflagged empty cell inside the region and a misflagged hint
	// cell on the border both end up revealed and unmarked.
	b.ToggleMark(0, 1)
	b.ToggleMark(1, 1)

	b.flood(0, 0)

	for _, pos := range []struct{ x, y int }{{0, 1}, {1, 1}} {
		cell := b.Cell(pos.x, pos.y)
		if !cell.Revealed || cell.Marked {
			t.Fatalf("cell (%d,%d) = %+v, want revealed and unmarked", pos.x, pos.y, cell)
		}
	}

	if b.Marks() != 0 {
		t.Fatalf("Marks() = %d after flood, want 0", b.Marks())
	}
}

func TestFlood_MarkedMineUntouched(t *testing.T) {
	b := newTestBoard(3, 3)
	b.placeMine(2, 2)
	b.mines = 1

	b.ToggleMark(2, 2)
	b.flood(0, 0)

	mine := b.Cell(2, 2)
	if !mine.Marked || mine.Revealed {
		t.Fatalf("marked mine changed by flood: %+v", mine)
	}
}

func TestFlood_OutOfBoundsStart(t *testing.T) {
	b := newTestBoard(2, 2)

	b.flood(-3, 10)

	if got := countRevealed(b); got != 0 {
		t.Fatalf("out-of-bounds flood revealed %d cells", got)
	}
}

func TestFlood_Idempotent(t *testing.T) {
	b := newTestBoard(4, 4)

	b.flood(0, 0)
	first := countRevealed(b)

	b.flood(3, 3)

	if got := countRevealed(b); got != first {
		t.Fatalf("second flood changed revealed count: %d -> %d", first, got)
	}
}
