package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

func renderBoard(w io.Writer, b *mines.Board) {
	fmt.Fprint(w, "\nCurrent Board:\n")
	fmt.Fprint(w, b.Grid().ToString(b.Size))
	fmt.Fprint(w, "\n")
}

func describePreset(name string, p mines.Params) string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", titleCase(name), p.Size, p.Size, p.MineCount)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// rejection maps a refused move to the line shown to the player.
func rejection(err error) string {
	switch {
	case errors.Is(err, mines.ErrOutOfBounds):
		return "Invalid input. Please try again."
	case errors.Is(err, mines.ErrAlreadyFlagged):
		return "This cell is already flagged."
	case errors.Is(err, mines.ErrNotFlagged):
		return "This cell is not flagged."
	case errors.Is(err, mines.ErrCellNotRevealable):
		return "This cell cannot be uncovered. Remove the flag first if it has one."
	case errors.Is(err, mines.ErrCellNotFlaggable):
		return "This cell is already uncovered and cannot be flagged."
	case errors.Is(err, mines.ErrGameOver):
		return "The game is already over."
	default:
		return "Something went wrong: " + err.Error()
	}
}
