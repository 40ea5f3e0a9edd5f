// Package app implements the application layer for scaffold.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/scaffold/internal/adapters/detector"
	"go.trai.ch/scaffold/internal/adapters/watcher"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/scaffold/internal/engine/layout"
	"go.trai.ch/scaffold/internal/tui"
	"go.trai.ch/zerr"
)

// Renderers maps each concrete output format to its renderer.
type Renderers map[domain.Format]ports.Renderer

// logConfigurer is implemented by loggers whose verbosity and encoding can change.
type logConfigurer interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	schedules  ports.ScheduleLoader
	settings   ports.SettingsLoader
	store      ports.RenderInfoStore
	logger     ports.Logger
	engine     *layout.Engine
	renderers  Renderers
	env        detector.Environment
	newWatcher watcher.Factory

	stdout     io.Writer
	now        func() time.Time
	debounce   time.Duration
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	schedules ports.ScheduleLoader,
	settings ports.SettingsLoader,
	store ports.RenderInfoStore,
	log ports.Logger,
	engine *layout.Engine,
	renderers Renderers,
	env detector.Environment,
	newWatcher watcher.Factory,
) *App {
	return &App{
		schedules:  schedules,
		settings:   settings,
		store:      store,
		logger:     log,
		engine:     engine,
		renderers:  renderers,
		env:        env,
		newWatcher: newWatcher,
		stdout:     os.Stdout,
		now:        time.Now,
		debounce:   watcher.DefaultDebounceWindow,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithStdout redirects output written to stdout.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithClock replaces the wall clock used for timestamps and the pager's today.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithDebounceWindow sets how long watch mode waits for file events to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounce = d
	return a
}

// ConfigureLogging sets the log level and encoding.
func (a *App) ConfigureLogging(verbose, jsonLogs bool) {
	l, ok := a.logger.(logConfigurer)
	if !ok {
		return
	}
	// Flags only switch modes on; environment defaults otherwise stand.
	if verbose {
		l.SetVerbose(true)
	}
	if jsonLogs {
		l.SetJSON(true)
	}
}

// Gantt lays out the schedule as a Gantt chart and writes it once.
func (a *App) Gantt(ctx context.Context, opts RenderOptions) error {
	in, err := a.load(opts)
	if err != nil {
		return err
	}
	return a.render(ctx, in, opts, domain.ViewGantt, time.Time{})
}

// Calendar lays out one month of the schedule. In interactive mode it opens
// the month pager instead of writing once.
func (a *App) Calendar(ctx context.Context, opts CalendarOptions) error {
	in, err := a.load(opts.RenderOptions)
	if err != nil {
		return err
	}

	if opts.Interactive {
		if a.env.Interactive() {
			return a.pager(ctx, in, opts.Month, nil)
		}
		a.logger.Warn("interactive calendar needs a terminal, writing once instead")
	}
	return a.render(ctx, in, opts.RenderOptions, domain.ViewCalendar, opts.Month)
}

// inputs is everything one render pass reads from disk.
type inputs struct {
	tasks        []domain.Task
	settings     *domain.Settings
	settingsPath string
}

func (a *App) load(opts RenderOptions) (inputs, error) {
	path := opts.ConfigPath
	if path == "" {
		discovered, err := a.settings.Discover(".")
		if err != nil {
			return inputs{}, err
		}
		path = discovered
	}

	settings, err := a.settings.Load(path)
	if err != nil {
		return inputs{}, zerr.Wrap(err, "failed to load settings")
	}

	tasks, err := a.schedules.Load(opts.Schedule)
	if err != nil {
		return inputs{}, zerr.Wrap(err, "failed to load schedule")
	}

	return inputs{tasks: tasks, settings: settings, settingsPath: path}, nil
}

// render runs one layout pass and writes it to the requested output. A file
// output whose inputs have not changed since the last pass is left alone.
//
//nolint:cyclop // orchestration function
func (a *App) render(ctx context.Context, in inputs, opts RenderOptions, view domain.View, month time.Time) error {
	format := detector.ResolveFormat(opts.Format, in.settings.Output.Format, opts.Output, a.env)
	renderer, ok := a.renderers[format]
	if !ok {
		return zerr.With(domain.ErrUnsupportedFormat, "format", string(format))
	}

	toStdout := detector.IsStdout(opts.Output)

	hash, err := fingerprint(in, view, month, format)
	if err != nil {
		return err
	}
	if !toStdout && !opts.Force {
		fresh, err := a.upToDate(opts.Output, hash)
		if err != nil {
			return err
		}
		if fresh {
			a.logger.Info(opts.Output + " is up to date")
			return nil
		}
	}

	draw := func(w io.Writer) error {
		if view == domain.ViewCalendar {
			out := a.engine.Calendar(ctx, in.tasks, layout.CalendarOptionsFrom(in.settings, month))
			a.warnDiagnostics(out.Diagnostics)
			return renderer.RenderCalendar(w, &out)
		}
		out := a.engine.Gantt(ctx, in.tasks, layout.GanttOptionsFrom(in.settings))
		a.warnDiagnostics(out.Diagnostics)
		return renderer.RenderGantt(w, &out)
	}

	if toStdout {
		return draw(a.stdout)
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputCreateFailed.Error()), "path", opts.Output)
	}
	if err := draw(f); err != nil {
		_ = f.Close()
		_ = os.Remove(opts.Output)
		return zerr.With(err, "path", opts.Output)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(opts.Output)
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", opts.Output)
	}

	if err := a.store.Put(domain.RenderInfo{
		Output:    opts.Output,
		InputHash: hash,
		Timestamp: a.now(),
	}); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("wrote %s view to %s", view, opts.Output))
	return nil
}

// upToDate reports whether output exists and was last written from inputs
// with the given fingerprint.
func (a *App) upToDate(output, hash string) (bool, error) {
	info, err := a.store.Get(output)
	if err != nil {
		return false, err
	}
	if info == nil || info.InputHash != hash {
		return false, nil
	}
	if _, err := os.Stat(output); err != nil {
		return false, nil //nolint:nilerr // A missing output is simply stale.
	}
	return true, nil
}

func (a *App) warnDiagnostics(diags []domain.Diagnostic) {
	for _, d := range diags {
		a.logger.Warn(d.String())
	}
}

// calendarFunc binds the loaded inputs to a month-to-layout function for the pager.
func (a *App) calendarFunc(ctx context.Context, in inputs) tui.LayoutFunc {
	return func(month time.Time) domain.CalendarLayout {
		return a.engine.Calendar(ctx, in.tasks, layout.CalendarOptionsFrom(in.settings, month))
	}
}

// pager runs the interactive month calendar until the user quits.
func (a *App) pager(ctx context.Context, in inputs, month time.Time, reload tui.ReloadSource) error {
	renderer, ok := a.renderers[domain.FormatText]
	if !ok {
		return zerr.With(domain.ErrUnsupportedFormat, "format", string(domain.FormatText))
	}

	fn := a.calendarFunc(ctx, in)
	first := fn(month)
	a.warnDiagnostics(first.Diagnostics)
	if month.IsZero() {
		month = first.Month
	}
	if month.IsZero() {
		month = a.now()
	}

	m := tui.NewModel(month, a.now(), fn, renderer)
	if reload != nil {
		m = m.WithReload(ctx, reload)
	}

	err := tui.Run(ctx, m, a.teaOptions...)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
