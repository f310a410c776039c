package session

import (
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Preset struct {
	Name      string `json:"name" yaml:"name"`
	Size      int    `json:"size" yaml:"size"`
	MineCount int    `json:"mine_count" yaml:"mine_count"`
}

func (p Preset) Params() mines.Params {
	return mines.Params{Size: p.Size, MineCount: p.MineCount}
}

func DefaultPresets() []Preset {
	return []Preset{
		{Name: "small", Size: 5, MineCount: 5},
		{Name: "large", Size: 10, MineCount: 15},
	}
}

func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}
