// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scaffold/internal/adapters/cas"
	_ "go.trai.ch/scaffold/internal/adapters/config"
	_ "go.trai.ch/scaffold/internal/adapters/detector"
	_ "go.trai.ch/scaffold/internal/adapters/jsondoc"
	_ "go.trai.ch/scaffold/internal/adapters/logger"
	_ "go.trai.ch/scaffold/internal/adapters/svg"
	_ "go.trai.ch/scaffold/internal/adapters/telemetry"
	_ "go.trai.ch/scaffold/internal/adapters/terminal"
	_ "go.trai.ch/scaffold/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/scaffold/internal/app"
	_ "go.trai.ch/scaffold/internal/engine/layout"
)
