package mines

import (
	"fmt"
	"strings"
)

// Params describes the dimensions of a square board.
type Params struct {
	Size, MineCount int
}

func (p Params) Unpack() (size int, mineCount int) {
	return p.Size, p.MineCount
}

// MaxSize bounds the side of a board so that size*size cells always fit in
// memory and never overflow an int.
const MaxSize = 256

func (p Params) Validate() error {
	if p.Size <= 0 || p.Size > MaxSize {
		return fmt.Errorf("%w: size must be in [1, %d] (size = %d)",
			ErrInvalidConfiguration, MaxSize, p.Size)
	}
	if p.MineCount < 0 || p.MineCount >= p.Size*p.Size {
		return fmt.Errorf("%w: mine count must be in [0, %d) (mine_count = %d)",
			ErrInvalidConfiguration, p.Size*p.Size, p.MineCount)
	}
	return nil
}

func (p Params) InBounds(c Coordinate) bool {
	return 0 <= c.Row && c.Row < p.Size && 0 <= c.Col && c.Col < p.Size
}

// String encodes the params as "size:mine_count".
func (p Params) String() string {
	return fmt.Sprintf("%d:%d", p.Size, p.MineCount)
}

func ParseParams(s string) (Params, error) {
	var p Params
	ss := strings.ReplaceAll(strings.TrimSpace(s), ":", " ")
	n, err := fmt.Sscanf(ss, "%d %d", &p.Size, &p.MineCount)
	if n != 2 || err != nil {
		return Params{}, fmt.Errorf(
			`invalid board params (s = "%s", n = %d, err = %w)`, s, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
