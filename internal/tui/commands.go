// Package tui provides an interactive month calendar for the terminal.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ReloadSource delivers a new layout function each time the schedule changes.
type ReloadSource interface {
	// Next blocks until the schedule changed. It returns io.EOF when no more
	// reloads will follow.
	Next(ctx context.Context) (LayoutFunc, error)
}

// WaitForReload returns a Bubble Tea command that waits for the next reload.
func WaitForReload(ctx context.Context, src ReloadSource) tea.Cmd {
	return func() tea.Msg {
		layout, err := src.Next(ctx)
		switch {
		case err == nil:
			return MsgLayoutChanged{Layout: layout}
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			return MsgReloadEnded{}
		default:
			return MsgReloadFailed{Err: err}
		}
	}
}

// Reload is the outcome of reloading the schedule.
type Reload struct {
	Layout LayoutFunc
	Err    error
}

// ChanSource is a ReloadSource fed from a channel.
type ChanSource <-chan Reload

// Next returns the next reload sent on the channel.
func (c ChanSource) Next(ctx context.Context) (LayoutFunc, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r, ok := <-c:
		if !ok {
			return nil, io.EOF
		}
		return r.Layout, r.Err
	}
}
