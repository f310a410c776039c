package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Covered  CellState = -2
	Flagged  CellState = -1
	Exploded CellState = 65
	/*
	 * Each item in the player grid is one of the following values:
	 *
	 * 	- 0 to 8 mean the cell is revealed and has a surrounding mine
	 * 	  count.
	 *
	 * 	- -1 means the cell is marked as a mine.
	 *
	 * 	- -2 means the cell is still covered.
	 *
	 * 	- 65 means the cell had a mine revealed and this was the one
	 * 	  the player hit.
	 */
)

// Revealed reports the adjacent mine count of a revealed cell.
func (s CellState) Revealed() (int, bool) {
	if 0 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

func (s CellState) String() string {
	switch {
	case s == Covered:
		return "U"
	case s == Flagged:
		return "F"
	case s == Exploded:
		return "*"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is a row-major copy of the player's view of a board.
type Grid []CellState

func (g Grid) Rows(size int) [][]string {
	if size <= 0 {
		return nil
	}
	rows := make([][]string, 0, len(g)/size)
	for y := range len(g) / size {
		row := make([]string, size)
		for x := range size {
			row[x] = g[y*size+x].String()
		}
		rows = append(rows, row)
	}
	return rows
}

func (g Grid) ToString(size int) string {
	var b strings.Builder
	for _, row := range g.Rows(size) {
		fmt.Fprintln(&b, strings.Join(row, " "))
	}
	return b.String()
}

type Status int8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

type Coordinate struct {
	Row, Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Moore neighbourhood offsets.
var neighbours = [8]Coordinate{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
