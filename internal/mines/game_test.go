package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diagonalBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewWithMines(5, []Coordinate{
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4},
	})
	require.NoError(t, err)
	return b
}

func TestNewInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		size, mineCount int
	}{
		{"zero size", 0, 0},
		{"negative size", -3, 1},
		{"negative mines", 3, -1},
		{"mines fill board", 3, 9},
		{"more mines than cells", 2, 5},
	}
	r := rand.New(rand.NewPCG(1, 2))
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := New(test.size, test.mineCount, r)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, b)
		})
	}
}

func TestNewWithMinesRejectsBadLayout(t *testing.T) {
	_, err := NewWithMines(3, []Coordinate{{0, 0}, {0, 0}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewWithMines(3, []Coordinate{{3, 0}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewWithMines(3, []Coordinate{{0, -1}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestFreshBoard(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for size := 1; size <= 8; size++ {
		for mineCount := 0; mineCount < size*size; mineCount++ {
			b, err := New(size, mineCount, r)
			require.NoError(t, err)

			mines := b.Mines()
			assert.Len(t, mines, mineCount)
			seen := make(map[Coordinate]bool)
			for _, c := range mines {
				assert.True(t, b.InBounds(c), "mine %s out of bounds", c)
				assert.False(t, seen[c], "duplicate mine %s", c)
				seen[c] = true
			}

			for _, cell := range b.Grid() {
				assert.Equal(t, Covered, cell)
			}
			assert.Equal(t, InProgress, b.Status())
			assert.Zero(t, b.RevealedCount())
			assert.Empty(t, b.Flagged())
		}
	}
}

func TestRevealAdjacentCount(t *testing.T) {
	b := diagonalBoard(t)

	state, err := b.Reveal(Coordinate{0, 1})
	require.NoError(t, err)
	n, ok := state.Revealed()
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, InProgress, b.Status())
	assert.Equal(t, 1, b.RevealedCount())
}

func TestRevealMineLoses(t *testing.T) {
	b := diagonalBoard(t)

	_, err := b.Reveal(Coordinate{0, 1})
	require.NoError(t, err)

	state, err := b.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	assert.Equal(t, Exploded, state)
	assert.Equal(t, Lost, b.Status())
	assert.Equal(t, 1, b.RevealedCount())

	cell, err := b.Cell(Coordinate{0, 0})
	require.NoError(t, err)
	assert.Equal(t, "*", cell.String())
}

func TestRevealAnyMineFirstLoses(t *testing.T) {
	for _, mine := range diagonalBoard(t).Mines() {
		b := diagonalBoard(t)
		_, err := b.Reveal(mine)
		require.NoError(t, err)
		assert.Equal(t, Lost, b.Status())
		assert.Zero(t, b.RevealedCount())

		// every further move is refused
		for _, other := range b.Mines() {
			_, err := b.Reveal(other)
			assert.ErrorIs(t, err, ErrGameOver)
		}
		assert.ErrorIs(t, b.Flag(Coordinate{0, 1}), ErrGameOver)
		assert.ErrorIs(t, b.Unflag(Coordinate{0, 1}), ErrGameOver)
	}
}

func TestRevealAllSafeCellsWins(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		b, err := New(6, 7, r)
		require.NoError(t, err)

		mined := make(map[Coordinate]bool)
		for _, c := range b.Mines() {
			mined[c] = true
		}

		var safe []Coordinate
		for row := range b.Size {
			for col := range b.Size {
				if c := (Coordinate{row, col}); !mined[c] {
					safe = append(safe, c)
				}
			}
		}
		r.Shuffle(len(safe), func(i, j int) { safe[i], safe[j] = safe[j], safe[i] })

		for i, c := range safe {
			assert.Equal(t, InProgress, b.Status())
			_, err := b.Reveal(c)
			require.NoError(t, err)
			assert.Equal(t, i+1, b.RevealedCount())
		}
		assert.Equal(t, Won, b.Status())
	}
}

func TestSmallBoardWithoutMines(t *testing.T) {
	b, err := New(2, 0, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.Equal(t, InProgress, b.Status())

	cells := []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, c := range cells {
		state, err := b.Reveal(c)
		require.NoError(t, err)
		assert.Equal(t, CellState(0), state)
		assert.Equal(t, i+1, b.RevealedCount())
		if i < len(cells)-1 {
			assert.Equal(t, InProgress, b.Status())
		}
	}
	assert.Equal(t, Won, b.Status())
}

func TestAdjacentMinesAtEdges(t *testing.T) {
	b, err := NewWithMines(3, []Coordinate{
		{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1},
	})
	require.NoError(t, err)

	tests := []struct {
		c    Coordinate
		want int
	}{
		{Coordinate{0, 0}, 3},
		{Coordinate{0, 2}, 3},
		{Coordinate{2, 0}, 3},
		{Coordinate{2, 2}, 3},
	}
	for _, test := range tests {
		state, err := b.Reveal(test.c)
		require.NoError(t, err)
		n, ok := state.Revealed()
		require.True(t, ok)
		assert.Equal(t, test.want, n, "at %s", test.c)
	}
	assert.Equal(t, Won, b.Status())
}

func TestAdjacentMinesInterior(t *testing.T) {
	var mines []Coordinate
	for row := range 3 {
		for col := range 3 {
			if row != 1 || col != 1 {
				mines = append(mines, Coordinate{row, col})
			}
		}
	}
	b, err := NewWithMines(4, mines)
	require.NoError(t, err)
	assert.Equal(t, 8, b.AdjacentMines(Coordinate{1, 1}))
	assert.Equal(t, 1, b.AdjacentMines(Coordinate{3, 3}))
	assert.Equal(t, 2, b.AdjacentMines(Coordinate{3, 0}))
}

func TestRevealRejections(t *testing.T) {
	b := diagonalBoard(t)

	_, err := b.Reveal(Coordinate{0, 1})
	require.NoError(t, err)

	_, err = b.Reveal(Coordinate{0, 1})
	assert.ErrorIs(t, err, ErrCellNotRevealable)
	assert.Equal(t, 1, b.RevealedCount())

	require.NoError(t, b.Flag(Coordinate{0, 2}))
	_, err = b.Reveal(Coordinate{0, 2})
	assert.ErrorIs(t, err, ErrCellNotRevealable)
	cell, _ := b.Cell(Coordinate{0, 2})
	assert.Equal(t, Flagged, cell)

	var moveErr *MoveError
	require.ErrorAs(t, err, &moveErr)
	assert.Equal(t, "reveal", moveErr.Op)
	assert.Equal(t, Coordinate{0, 2}, moveErr.Coordinate)
}

func TestFlagUnflag(t *testing.T) {
	b := diagonalBoard(t)
	before := b.Grid()

	c := Coordinate{2, 3}
	require.NoError(t, b.Flag(c))
	cell, _ := b.Cell(c)
	assert.Equal(t, Flagged, cell)
	assert.Equal(t, []Coordinate{c}, b.Flagged())

	assert.ErrorIs(t, b.Flag(c), ErrAlreadyFlagged)
	cell, _ = b.Cell(c)
	assert.Equal(t, Flagged, cell)

	require.NoError(t, b.Unflag(c))
	assert.Equal(t, before, b.Grid())
	assert.Empty(t, b.Flagged())

	assert.ErrorIs(t, b.Unflag(c), ErrNotFlagged)
	assert.Equal(t, before, b.Grid())
}

func TestFlagRevealedCell(t *testing.T) {
	b := diagonalBoard(t)
	c := Coordinate{4, 0}

	_, err := b.Reveal(c)
	require.NoError(t, err)
	before := b.Grid()

	assert.ErrorIs(t, b.Flag(c), ErrCellNotFlaggable)
	assert.ErrorIs(t, b.Unflag(c), ErrNotFlagged)
	assert.Equal(t, before, b.Grid())
}

func TestOutOfBounds(t *testing.T) {
	b := diagonalBoard(t)
	before := b.Grid()

	for _, c := range []Coordinate{
		{5, 0}, {0, 5}, {-1, 0}, {0, -1}, {5, 5}, {100, -100},
	} {
		_, err := b.Reveal(c)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.ErrorIs(t, b.Flag(c), ErrOutOfBounds)
		assert.ErrorIs(t, b.Unflag(c), ErrOutOfBounds)
		_, err = b.Cell(c)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
	assert.Equal(t, before, b.Grid())
	assert.Equal(t, InProgress, b.Status())

	// bounds are checked before terminal state
	_, err := b.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	_, err = b.Reveal(Coordinate{5, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestGridIsCopy(t *testing.T) {
	b := diagonalBoard(t)
	grid := b.Grid()
	grid[1] = Exploded

	cell, err := b.Cell(Coordinate{0, 1})
	require.NoError(t, err)
	assert.Equal(t, Covered, cell)
}
