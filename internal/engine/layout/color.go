package layout

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// DefaultPalette is the ordered colour list used when settings provide none.
var DefaultPalette = []string{
	"#4E79A7",
	"#F28E2B",
	"#E15759",
	"#76B7B2",
	"#59A14F",
	"#EDC948",
	"#B07AA1",
	"#FF9DA7",
	"#9C755F",
	"#BAB0AC",
	"#8B5CF6",
	"#22A06B",
}

// ColorAssigner maps task ids to palette entries by hash, so a task keeps its
// colour regardless of list position, run or process.
type ColorAssigner struct {
	palette []string
}

// NewColorAssigner copies the palette. An empty palette selects DefaultPalette.
func NewColorAssigner(palette []string) *ColorAssigner {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &ColorAssigner{palette: slices.Clone(palette)}
}

// Color returns the palette entry for id.
func (c *ColorAssigner) Color(id string) string {
	return c.palette[xxhash.Sum64String(id)%uint64(len(c.palette))]
}

// Palette returns a copy of the assigner's palette.
func (c *ColorAssigner) Palette() []string {
	return slices.Clone(c.palette)
}
