// Package controller provides the user-facing surfaces of the game: a
// plain line-mode UI for pipes and scripts, and an interactive Bubble
// Tea UI for terminals.
package controller

import (
	"io"
	"os"

	"github.com/mouse-blink/minefield/internal/domain"
)

// UI runs one game from start to a terminal state.
// Implementations can use different input/output methods (line protocol,
// TUI, etc).
type UI interface {
	Play(game *domain.Game) error
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
