// Package model defines the data structures for the minesweeper core.
package model

// Content represents what a cell holds once mine placement completes.
type Content int

// Available Content values.
const (
	// Empty is a safe cell with no adjacent mines.
	Empty Content = iota
	// Mine is a cell holding a mine.
	Mine
	// Hint is a safe cell adjacent to at least one mine; the count lives
	// in Cell.Hint.
	Hint
)

// String returns the string representation of a content kind.
func (c Content) String() string {
	switch c {
	case Empty:
		return "empty"
	case Mine:
		return "mine"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Cell is a single square of the board. The zero value is an untouched
// empty cell, which is exactly the state every cell starts in.
//
// Marked and Revealed are never both true: marking is only meaningful
// before a cell is revealed, and revealing clears any mark.
type Cell struct {
	Content  Content
	Hint     int // adjacent mine count, meaningful only when Content == Hint
	Revealed bool
	Marked   bool
}

// Rune returns the single-character rendering of the cell:
// '/' for a revealed empty cell, '*' for a marked cell regardless of
// content, the hint count mod 10 for a revealed hint cell, and '.' for
// anything still covered and unmarked.
func (c Cell) Rune() rune {
	switch {
	case c.Marked:
		return '*'
	case c.Revealed && c.Content == Empty:
		return '/'
	case c.Revealed && c.Content == Hint:
		return rune('0' + c.Hint%10)
	default:
		return '.'
	}
}
