package mines

import "math/rand/v2"

// newMineGrid places mineCount mines on a flat size*size grid by drawing
// without replacement from the list of every cell index.
func (p Params) newMineGrid(r *rand.Rand) []bool {
	size, mineCount := p.Unpack()

	grid := make([]bool, size*size)

	candidates := make([]int, size*size)
	for i := range candidates {
		candidates[i] = i
	}

	/*
	 * Pick n off the list at random, moving the last live candidate
	 * into the hole each time.
	 */
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return grid
}
