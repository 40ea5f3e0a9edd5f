package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaffold/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colour disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		verbose    bool
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("rendered gantt.svg") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("unscheduled: T4") },
			goldenName: "warn_basic",
		},
		{
			name:       "debug hidden by default",
			log:        func(l *logger.Logger) { l.Debug("layout pass") },
			goldenName: "debug_filtered",
		},
		{
			name:       "debug in verbose mode",
			verbose:    true,
			log:        func(l *logger.Logger) { l.Debug("layout pass") },
			goldenName: "debug_verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.SetVerbose(tt.verbose)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(zerr.Wrap(errors.New("open plan.yaml: no such file"), "failed to load schedule"))

	assert.Equal(t,
		"✗ Error: failed to load schedule\n\n  Caused by:\n    → open plan.yaml: no such file\n",
		buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Warn("indent gap")
	lg.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var warn, failure map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &warn))
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "WARN", warn["level"])
	assert.Equal(t, "indent gap", warn["msg"])
	assert.Equal(t, "operation failed", failure["msg"])
	assert.Equal(t, "boom", failure["error"])
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.New(h).With("key", "value").Warn("skipped")

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		logger.EnvLogFormat: "JSON",
		logger.EnvLogLevel:  "debug",
	}
	lg := logger.FromEnv(func(key string) string { return env[key] })

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Debug("layout pass")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "layout pass", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])

	plain := logger.FromEnv(func(string) string { return "" })
	buf.Reset()
	plain.SetOutput(buf)
	plain.Debug("hidden")
	assert.Empty(t, buf.String())
}
