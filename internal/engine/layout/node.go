package layout

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/scaffold/internal/core/ports"
)

// NodeID is the unique identifier for the layout engine Graft node.
const NodeID graft.ID = "engine.layout"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(tracer), nil
		},
	})
}
