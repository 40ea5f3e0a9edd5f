package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/jsondoc"  //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/svg"      //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/terminal" //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/scaffold/internal/engine/layout"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
	// RenderersNodeID is the unique identifier for the renderer set Graft node.
	RenderersNodeID graft.ID = "app.renderers"
)

func init() {
	graft.Register(graft.Node[Renderers]{
		ID:        RenderersNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			jsondoc.NodeID,
			svg.NodeID,
			terminal.NodeID,
		},
		Run: runRenderersNode,
	})

	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.SettingsNodeID,
			cas.NodeID,
			logger.NodeID,
			layout.NodeID,
			RenderersNodeID,
			detector.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runRenderersNode(ctx context.Context) (Renderers, error) {
	jsonRenderer, err := graft.Dep[*jsondoc.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	svgRenderer, err := graft.Dep[*svg.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	textRenderer, err := graft.Dep[*terminal.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	return Renderers{
		domain.FormatJSON: jsonRenderer,
		domain.FormatSVG:  svgRenderer,
		domain.FormatText: textRenderer,
	}, nil
}

func runAppNode(ctx context.Context) (*App, error) {
	schedules, err := graft.Dep[ports.ScheduleLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RenderInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*layout.Engine](ctx)
	if err != nil {
		return nil, err
	}

	renderers, err := graft.Dep[Renderers](ctx)
	if err != nil {
		return nil, err
	}

	env, err := graft.Dep[detector.Environment](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(schedules, settings, store, log, engine, renderers, env, newWatcher), nil
}
