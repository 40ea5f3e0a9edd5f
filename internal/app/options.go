package app

import (
	"strings"
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/zerr"
)

// RenderOptions configures one render pass.
type RenderOptions struct {
	// Schedule is the path of the task schedule file.
	Schedule string
	// ConfigPath is the settings file. Empty discovers scaffold.yaml.
	ConfigPath string
	// Format selects the renderer. FormatAuto resolves from Output and the terminal.
	Format domain.Format
	// Output is the destination file. Empty or "-" writes to stdout.
	Output string
	// Force rewrites the output even when its inputs are unchanged.
	Force bool
}

// CalendarOptions configures the calendar command.
type CalendarOptions struct {
	RenderOptions

	// Month selects the month to lay out. A zero value picks the month of the
	// earliest scheduled task.
	Month time.Time
	// Interactive opens the month pager instead of writing once.
	Interactive bool
}

// WatchOptions configures the watch command.
type WatchOptions struct {
	RenderOptions

	View        domain.View
	Month       time.Time
	Interactive bool
}

// ParseMonth parses a YYYY-MM month argument. The empty string yields the
// zero time.
func ParseMonth(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, zerr.With(domain.ErrInvalidMonth, "month", s)
	}
	return t, nil
}

// ParseView validates a view name. The empty string means ViewGantt.
func ParseView(s string) (domain.View, error) {
	switch v := domain.View(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return domain.ViewGantt, nil
	case domain.ViewGantt, domain.ViewCalendar:
		return v, nil
	default:
		return "", zerr.With(domain.ErrUnsupportedView, "view", s)
	}
}
