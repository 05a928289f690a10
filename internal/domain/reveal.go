package domain

import (
	m "github.com/mouse-blink/minefield/internal/model"
)

type coord struct {
	x, y int
}

// flood reveals the maximal connected region of empty cells around the
// starting coordinate and the ring of hint cells bordering it.
//
// The walk is iterative on purpose: the region can span the whole board,
// and a 1000x1000 recursion would risk blowing the stack. Pending
// coordinates live in a set rather than a queue so that a cell enqueued
// by several neighbors is still processed at most once.
func (b *Board) flood(x, y int) {
	pending := map[coord]struct{}{{x: x, y: y}: {}}

	for len(pending) > 0 {
		var cur coord
		for c := range pending {
			cur = c

			break
		}

		delete(pending, cur)

		if !b.InBounds(cur.x, cur.y) {
			continue
		}

		cell := &b.cells[cur.y][cur.x]

		switch {
		case cell.Content == m.Empty && (!cell.Revealed || cell.Marked):
			// Inside the fill region: expose it and keep flooding.
			b.expose(cell)

			for _, d := range neighbors8 {
				pending[coord{x: cur.x + d[0], y: cur.y + d[1]}] = struct{}{}
			}
		case cell.Content == m.Hint && !cell.Revealed:
			// Border ring: expose but never enqueue, the fill stops here.
			b.expose(cell)
		}
	}
}

// expose reveals a cell, clearing any mark so the marked/revealed
// exclusion holds. The flood only ever exposes safe cells, so a cleared
// mark always was a misflag.
func (b *Board) expose(cell *m.Cell) {
	if cell.Marked {
		cell.Marked = false
		b.safeMarked--
	}

	cell.Revealed = true
}
