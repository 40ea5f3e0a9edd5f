package svg

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the SVG renderer Graft node.
const NodeID graft.ID = "adapter.renderer.svg"

func init() {
	graft.Register(graft.Node[*Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Renderer, error) {
			return NewRenderer(DefaultTheme()), nil
		},
	})
}
