package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Format selects how a layout is written out.
type Format string

const (
	// FormatAuto picks a format from the output path and the terminal.
	FormatAuto Format = "auto"
	// FormatJSON writes the layout records as JSON.
	FormatJSON Format = "json"
	// FormatSVG writes a standalone SVG document.
	FormatSVG Format = "svg"
	// FormatText writes a coloured terminal chart.
	FormatText Format = "text"
)

// ParseFormat validates a format name. The empty string means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJSON, FormatSVG, FormatText:
		return f, nil
	default:
		return "", zerr.With(ErrUnsupportedFormat, "format", s)
	}
}

// View selects which layout a pass produces.
type View string

const (
	// ViewGantt is the row-per-task timeline.
	ViewGantt View = "gantt"
	// ViewCalendar is the month grid with lanes per week.
	ViewCalendar View = "calendar"
)
