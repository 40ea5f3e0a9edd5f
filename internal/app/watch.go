package app

import (
	"context"
	"strings"

	"go.trai.ch/scaffold/internal/adapters/watcher"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/tui"
	"golang.org/x/sync/errgroup"
)

// Watch renders once, then renders again whenever the schedule or the
// settings file changes, until ctx is cancelled. Bursts of file events are
// coalesced and at most one pass runs at a time.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	in, err := a.load(opts.RenderOptions)
	if err != nil {
		return err
	}

	files := []string{opts.Schedule}
	if in.settingsPath != "" {
		files = append(files, in.settingsPath)
	}

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(ctx, files); err != nil {
		return err
	}

	// One pending trigger is enough: a pass always reloads every input.
	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		a.logger.Debug("changed: " + strings.Join(paths, ", "))
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	if opts.Interactive && opts.View == domain.ViewCalendar && a.env.Interactive() {
		reloads := make(chan tui.Reload)
		g.Go(func() error {
			defer cancel()
			return a.pager(ctx, in, opts.Month, tui.ChanSource(reloads))
		})
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-trigger:
				}
				next, err := a.load(opts.RenderOptions)
				r := tui.Reload{Err: err}
				if err == nil {
					r.Layout = a.calendarFunc(ctx, next)
				}
				select {
				case reloads <- r:
				case <-ctx.Done():
					return nil
				}
			}
		})
		return g.Wait()
	}

	a.logger.Info("watching " + strings.Join(files, ", "))
	if err := a.render(ctx, in, opts.RenderOptions, opts.View, opts.Month); err != nil {
		a.logger.Error(err)
	}

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-trigger:
			}
			if err := a.rerender(ctx, opts); err != nil {
				a.logger.Error(err)
			}
		}
	})

	return g.Wait()
}

func (a *App) rerender(ctx context.Context, opts WatchOptions) error {
	in, err := a.load(opts.RenderOptions)
	if err != nil {
		return err
	}
	return a.render(ctx, in, opts.RenderOptions, opts.View, opts.Month)
}
