package terminal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/ui/output"
)

// NodeID is the unique identifier for the terminal renderer Graft node.
const NodeID graft.ID = "adapter.renderer.text"

func init() {
	graft.Register(graft.Node[*Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Renderer, error) {
			return NewRenderer(output.ColorProfile), nil
		},
	})
}
