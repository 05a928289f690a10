// Package adapter contains the IO edges of the game. The core never sees
// raw player input: everything is parsed and validated here first.
package adapter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// markToken is the literal third token that turns a reveal into a mark.
const markToken = "mine"

// Turn is one parsed player action with 0-based coordinates.
type Turn struct {
	X    int
	Y    int
	Mark bool
}

// TurnReader parses the line protocol of a game: one setup line holding
// the mine count, then one line per turn of the form "col row [mine]"
// with 1-based coordinates. Malformed lines are reported as errors and
// never reach the core.
type TurnReader struct {
	scanner *bufio.Scanner
}

// NewTurnReader wraps r in a TurnReader.
func NewTurnReader(r io.Reader) *TurnReader {
	return &TurnReader{scanner: bufio.NewScanner(r)}
}

// ReadMineCount reads the setup line: a single non-negative integer.
func (t *TurnReader) ReadMineCount() (int, error) {
	line, err := t.readLine()
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("mine count %q is not a number", line)
	}

	if count < 0 {
		return 0, fmt.Errorf("mine count %d is negative", count)
	}

	return count, nil
}

// Next reads one turn line. Coordinates are converted from the 1-based
// protocol to the 0-based core addressing; bounds are not checked here,
// the core ignores out-of-range coordinates by policy. Returns io.EOF
// once the input is exhausted.
func (t *TurnReader) Next() (Turn, error) {
	line, err := t.readLine()
	if err != nil {
		return Turn{}, err
	}

	fields := strings.Fields(line)
	if len(fields) != 2 && len(fields) != 3 {
		return Turn{}, fmt.Errorf("turn %q: want \"col row [%s]\"", line, markToken)
	}

	col, err := strconv.Atoi(fields[0])
	if err != nil {
		return Turn{}, fmt.Errorf("turn %q: column %q is not a number", line, fields[0])
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return Turn{}, fmt.Errorf("turn %q: row %q is not a number", line, fields[1])
	}

	turn := Turn{X: col - 1, Y: row - 1}

	if len(fields) == 3 {
		if fields[2] != markToken {
			return Turn{}, fmt.Errorf("turn %q: unknown token %q", line, fields[2])
		}

		turn.Mark = true
	}

	return turn, nil
}

// readLine returns the next non-blank line, trimmed, or io.EOF.
func (t *TurnReader) readLine() (string, error) {
	for t.scanner.Scan() {
		line := strings.TrimSpace(t.scanner.Text())
		if line != "" {
			return line, nil
		}
	}

	if err := t.scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}
