package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/core/ports"
)

// NodeID is the unique identifier for the render info store Graft node.
const NodeID graft.ID = "adapter.render_info_store"

func init() {
	graft.Register(graft.Node[ports.RenderInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RenderInfoStore, error) {
			return NewStore("."), nil
		},
	})
}
