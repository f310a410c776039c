package handlers

import (
	"fmt"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

var ErrMissingParams = fmt.Errorf("query must contain either preset or size and mine_count")

type PlayDTO struct {
	Preset    string `schema:"preset"`
	Size      *int   `schema:"size"`
	MineCount *int   `schema:"mine_count"`
}

func ParsePlayDTO(src map[string][]string) (PlayDTO, error) {
	var dto PlayDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// Params resolves the requested board against the known presets.
func (dto PlayDTO) Params(presets []session.Preset) (mines.Params, error) {
	if dto.Preset != "" {
		preset, ok := session.FindPreset(presets, dto.Preset)
		if !ok {
			return mines.Params{}, fmt.Errorf("unknown preset %q", dto.Preset)
		}
		return preset.Params(), nil
	}
	if dto.Size == nil || dto.MineCount == nil {
		return mines.Params{}, ErrMissingParams
	}
	params := mines.Params{Size: *dto.Size, MineCount: *dto.MineCount}
	if err := params.Validate(); err != nil {
		return mines.Params{}, err
	}
	return params, nil
}
