package logger

import (
	"context"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// Environment defaults applied before command-line flags are parsed, so
// settings and schedule loading already log in the requested mode.
const (
	// EnvLogFormat selects "json" or "pretty" output.
	EnvLogFormat = "SCAFFOLD_LOG_FORMAT"
	// EnvLogLevel set to "debug" enables verbose output.
	EnvLogLevel = "SCAFFOLD_LOG_LEVEL"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return FromEnv(os.Getenv), nil
		},
	})
}

// FromEnv creates a Logger configured from the scaffold log variables.
func FromEnv(getenv func(string) string) *Logger {
	l := New().(*Logger)
	if strings.EqualFold(strings.TrimSpace(getenv(EnvLogFormat)), "json") {
		l.SetJSON(true)
	}
	if strings.EqualFold(strings.TrimSpace(getenv(EnvLogLevel)), "debug") {
		l.SetVerbose(true)
	}
	return l
}
