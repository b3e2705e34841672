package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// Preset is one of the board sizes offered at startup.
type Preset struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

var Presets = []Preset{
	{Name: "5x8", Rows: 5, Cols: 8},
	{Name: "6x10", Rows: 6, Cols: 10},
	{Name: "7x12", Rows: 7, Cols: 12},
}

func PresetByName(name string) (Preset, error) {
	for _, preset := range Presets {
		if preset.Name == name {
			return preset, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", apperror.ErrUnknownPreset, name)
}

// Label - the caption shown in the size menu.
func (that Preset) Label() string {
	return fmt.Sprintf("%d rows x %d columns", that.Rows, that.Cols)
}
