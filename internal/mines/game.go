package mines

import (
	"fmt"
	"math/rand/v2"
)

// Board is a single game of minesweeper on a square grid. It is not safe for
// concurrent use; a board belongs to exactly one session.
type Board struct {
	Params
	mines    []bool // real mine points
	grid     Grid   // player knowledge
	revealed int
	status   Status
}

// New builds a board with mineCount mines placed uniformly at random.
func New(size, mineCount int, r *rand.Rand) (*Board, error) {
	params := Params{Size: size, MineCount: mineCount}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return newBoard(params, params.newMineGrid(r)), nil
}

// NewWithMines builds a board with a fixed mine layout.
func NewWithMines(size int, mines []Coordinate) (*Board, error) {
	params := Params{Size: size, MineCount: len(mines)}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	grid := make([]bool, size*size)
	for _, c := range mines {
		if !params.InBounds(c) {
			return nil, fmt.Errorf("%w: mine %s outside of %dx%d board",
				ErrInvalidConfiguration, c, size, size)
		}
		i := c.Row*size + c.Col
		if grid[i] {
			return nil, fmt.Errorf("%w: duplicate mine %s",
				ErrInvalidConfiguration, c)
		}
		grid[i] = true
	}
	return newBoard(params, grid), nil
}

func newBoard(params Params, mines []bool) *Board {
	grid := make(Grid, len(mines))
	for i := range grid {
		grid[i] = Covered
	}
	return &Board{
		Params: params,
		mines:  mines,
		grid:   grid,
		status: InProgress,
	}
}

func (b *Board) index(c Coordinate) int {
	return c.Row*b.Size + c.Col
}

func (b *Board) Status() Status {
	return b.status
}

func (b *Board) RevealedCount() int {
	return b.revealed
}

func (b *Board) Cell(c Coordinate) (CellState, error) {
	if !b.InBounds(c) {
		return Covered, moveError("cell", c, ErrOutOfBounds)
	}
	return b.grid[b.index(c)], nil
}

// Grid returns a copy of the player grid.
func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.grid))
	copy(grid, b.grid)
	return grid
}

func (b *Board) Rows() [][]string {
	return b.grid.Rows(b.Size)
}

// Mines lists the mine layout in row-major order.
func (b *Board) Mines() []Coordinate {
	return b.collect(func(i int) bool { return b.mines[i] })
}

// Flagged lists the currently flagged cells in row-major order.
func (b *Board) Flagged() []Coordinate {
	return b.collect(func(i int) bool { return b.grid[i] == Flagged })
}

func (b *Board) collect(pred func(i int) bool) []Coordinate {
	var out []Coordinate
	for i := range b.grid {
		if pred(i) {
			out = append(out, Coordinate{Row: i / b.Size, Col: i % b.Size})
		}
	}
	return out
}

// AdjacentMines counts the mines among the in-bounds Moore neighbours of c.
func (b *Board) AdjacentMines(c Coordinate) int {
	v := 0
	for _, d := range neighbours {
		n := Coordinate{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if b.InBounds(n) && b.mines[b.index(n)] {
			v++
		}
	}
	return v
}

func (b *Board) Reveal(c Coordinate) (CellState, error) {
	if !b.InBounds(c) {
		return Covered, moveError("reveal", c, ErrOutOfBounds)
	}
	if b.status.Terminal() {
		return b.grid[b.index(c)], moveError("reveal", c, ErrGameOver)
	}

	i := b.index(c)
	if b.grid[i] != Covered {
		return b.grid[i], moveError("reveal", c, ErrCellNotRevealable)
	}

	if b.mines[i] {
		b.grid[i] = Exploded
		b.status = Lost
		return Exploded, nil
	}

	b.grid[i] = CellState(b.AdjacentMines(c))
	b.revealed++

	if b.revealed == b.Size*b.Size-b.MineCount {
		b.status = Won
	}

	return b.grid[i], nil
}

func (b *Board) Flag(c Coordinate) error {
	if !b.InBounds(c) {
		return moveError("flag", c, ErrOutOfBounds)
	}
	if b.status.Terminal() {
		return moveError("flag", c, ErrGameOver)
	}
	i := b.index(c)
	switch b.grid[i] {
	case Covered:
		b.grid[i] = Flagged
		return nil
	case Flagged:
		return moveError("flag", c, ErrAlreadyFlagged)
	default:
		return moveError("flag", c, ErrCellNotFlaggable)
	}
}

func (b *Board) Unflag(c Coordinate) error {
	if !b.InBounds(c) {
		return moveError("unflag", c, ErrOutOfBounds)
	}
	if b.status.Terminal() {
		return moveError("unflag", c, ErrGameOver)
	}
	i := b.index(c)
	if b.grid[i] != Flagged {
		return moveError("unflag", c, ErrNotFlagged)
	}
	b.grid[i] = Covered
	return nil
}
