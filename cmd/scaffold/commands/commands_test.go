package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaffold/cmd/scaffold/commands"
	"go.trai.ch/scaffold/internal/app"
	"go.trai.ch/scaffold/internal/build"
	"go.trai.ch/scaffold/internal/core/domain"
)

type mockApp struct {
	verbose, jsonLogs bool

	gantt    *app.RenderOptions
	calendar *app.CalendarOptions
	watch    *app.WatchOptions
	err      error
}

func (m *mockApp) ConfigureLogging(verbose, jsonLogs bool) {
	m.verbose = verbose
	m.jsonLogs = jsonLogs
}

func (m *mockApp) Gantt(_ context.Context, opts app.RenderOptions) error {
	m.gantt = &opts
	return m.err
}

func (m *mockApp) Calendar(_ context.Context, opts app.CalendarOptions) error {
	m.calendar = &opts
	return m.err
}

func (m *mockApp) Watch(_ context.Context, opts app.WatchOptions) error {
	m.watch = &opts
	return m.err
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Gantt(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "gantt", "plan.yaml", "-f", "svg", "-o", "plan.svg", "--force", "-c", "team.yaml", "-v")
		require.NoError(t, err)

		require.NotNil(t, m.gantt)
		assert.Equal(t, app.RenderOptions{
			Schedule:   "plan.yaml",
			ConfigPath: "team.yaml",
			Format:     domain.FormatSVG,
			Output:     "plan.svg",
			Force:      true,
		}, *m.gantt)
		assert.True(t, m.verbose)
		assert.False(t, m.jsonLogs)
	})

	t.Run("defaults", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "gantt", "plan.csv", "--json-logs")
		require.NoError(t, err)

		require.NotNil(t, m.gantt)
		assert.Equal(t, domain.FormatAuto, m.gantt.Format)
		assert.Empty(t, m.gantt.Output)
		assert.True(t, m.jsonLogs)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "gantt", "plan.yaml", "--format", "pdf")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnsupportedFormat.Error())
		assert.Nil(t, m.gantt)
	})

	t.Run("requires a schedule", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "gantt")
		require.Error(t, err)
		assert.Nil(t, m.gantt)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		m := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, m, "gantt", "plan.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Calendar(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "calendar", "plan.yaml", "--month", "2024-02", "-i")
	require.NoError(t, err)

	require.NotNil(t, m.calendar)
	assert.Equal(t, "plan.yaml", m.calendar.Schedule)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), m.calendar.Month)
	assert.True(t, m.calendar.Interactive)

	m = &mockApp{}
	_, err = execute(t, m, "calendar", "plan.yaml", "-m", "February")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidMonth.Error())
	assert.Nil(t, m.calendar)
}

func TestCommands_Watch(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "watch", "plan.yaml", "--view", "calendar", "-m", "2024-03", "-o", "cal.svg")
	require.NoError(t, err)

	require.NotNil(t, m.watch)
	assert.Equal(t, domain.ViewCalendar, m.watch.View)
	assert.Equal(t, time.March, m.watch.Month.Month())
	assert.Equal(t, "cal.svg", m.watch.Output)
	assert.False(t, m.watch.Interactive)

	m = &mockApp{}
	_, err = execute(t, m, "watch", "plan.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewGantt, m.watch.View)
	assert.True(t, m.watch.Month.IsZero())

	_, err = execute(t, &mockApp{}, "watch", "plan.yaml", "--view", "kanban")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedView.Error())
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "scaffold version "+build.Version)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Commit)
}
