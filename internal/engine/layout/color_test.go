package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scaffold/internal/engine/layout"
)

func TestColorAssigner(t *testing.T) {
	t.Parallel()

	c := layout.NewColorAssigner(nil)
	assert.Equal(t, layout.DefaultPalette, c.Palette())

	for _, id := range []string{"a", "b", "task-42", ""} {
		got := c.Color(id)
		assert.Contains(t, layout.DefaultPalette, got)
		assert.Equal(t, got, layout.NewColorAssigner(nil).Color(id), "stable across assigners")
	}
}

func TestColorAssigner_CustomPalette(t *testing.T) {
	t.Parallel()

	palette := []string{"#000000"}
	c := layout.NewColorAssigner(palette)
	palette[0] = "#FFFFFF"

	assert.Equal(t, "#000000", c.Color("anything"))
}
