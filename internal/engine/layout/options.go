package layout

import (
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
)

// RouterOptions configures connector routing.
type RouterOptions struct {
	// Offset is the horizontal step taken out of the predecessor and into the
	// successor when the successor does not start clear of the predecessor.
	Offset float64
	// Margin is the gap required between the two bars for a direct route.
	Margin float64
	// ArrowSize is the length of the arrowhead along the path.
	ArrowSize float64
}

// GanttOptions configures a Gantt layout pass.
type GanttOptions struct {
	PixelsPerDay float64
	RowHeight    float64
	BarHeight    float64

	// WindowStart and WindowEnd bound the date headers. A zero value is
	// derived from the scheduled tasks.
	WindowStart time.Time
	WindowEnd   time.Time

	MinCanvasWidth  float64
	MinCanvasHeight float64
	CanvasMargin    float64

	Router  RouterOptions
	Palette []string
}

// CalendarOptions configures a calendar layout pass.
type CalendarOptions struct {
	// Month is any date within the month to lay out. A zero value selects the
	// month of the earliest scheduled task.
	Month        time.Time
	FirstWeekday time.Weekday

	CellWidth     float64
	LaneHeight    float64
	LaneGap       float64
	HeaderHeight  float64
	MinWeekHeight float64

	Palette []string
}

// DefaultRouterOptions returns the default connector routing parameters.
func DefaultRouterOptions() RouterOptions {
	return RouterOptions{
		Offset:    domain.DefaultConnectorOffset,
		Margin:    domain.DefaultConnectorMargin,
		ArrowSize: domain.DefaultArrowSize,
	}
}

// DefaultGanttOptions returns the default Gantt parameters.
func DefaultGanttOptions() GanttOptions {
	return GanttOptions{
		PixelsPerDay:    domain.DefaultPixelsPerDay,
		RowHeight:       domain.DefaultRowHeight,
		BarHeight:       domain.DefaultBarHeight,
		MinCanvasWidth:  domain.DefaultMinCanvasWidth,
		MinCanvasHeight: domain.DefaultMinCanvasHeight,
		CanvasMargin:    domain.DefaultCanvasMargin,
		Router:          DefaultRouterOptions(),
	}
}

// DefaultCalendarOptions returns the default calendar parameters.
func DefaultCalendarOptions() CalendarOptions {
	return CalendarOptions{
		FirstWeekday:  domain.DefaultFirstWeekday,
		CellWidth:     domain.DefaultCellWidth,
		LaneHeight:    domain.DefaultLaneHeight,
		LaneGap:       domain.DefaultLaneGap,
		HeaderHeight:  domain.DefaultHeaderHeight,
		MinWeekHeight: domain.DefaultMinWeekHeight,
	}
}

// GanttOptionsFrom builds Gantt options from project settings.
func GanttOptionsFrom(s *domain.Settings) GanttOptions {
	if s == nil {
		return DefaultGanttOptions()
	}
	return GanttOptions{
		PixelsPerDay:    s.Gantt.PixelsPerDay,
		RowHeight:       s.Gantt.RowHeight,
		BarHeight:       s.Gantt.BarHeight,
		MinCanvasWidth:  s.Gantt.MinCanvasWidth,
		MinCanvasHeight: s.Gantt.MinCanvasHeight,
		CanvasMargin:    s.Gantt.CanvasMargin,
		Router: RouterOptions{
			Offset:    s.Connectors.Offset,
			Margin:    s.Connectors.Margin,
			ArrowSize: s.Connectors.ArrowSize,
		},
		Palette: s.Palette,
	}
}

// CalendarOptionsFrom builds calendar options from project settings.
func CalendarOptionsFrom(s *domain.Settings, month time.Time) CalendarOptions {
	if s == nil {
		opts := DefaultCalendarOptions()
		opts.Month = month
		return opts
	}
	return CalendarOptions{
		Month:         month,
		FirstWeekday:  s.Calendar.FirstWeekday,
		CellWidth:     s.Calendar.CellWidth,
		LaneHeight:    s.Calendar.LaneHeight,
		LaneGap:       s.Calendar.LaneGap,
		HeaderHeight:  s.Calendar.HeaderHeight,
		MinWeekHeight: s.Calendar.MinWeekHeight,
		Palette:       s.Palette,
	}
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func (o RouterOptions) normalized() RouterOptions {
	return RouterOptions{
		Offset:    orDefault(o.Offset, domain.DefaultConnectorOffset),
		Margin:    orDefault(o.Margin, domain.DefaultConnectorMargin),
		ArrowSize: orDefault(o.ArrowSize, domain.DefaultArrowSize),
	}
}

// normalized replaces non-positive values with defaults and keeps the bar
// inside its row.
func (o GanttOptions) normalized() GanttOptions {
	o.PixelsPerDay = orDefault(o.PixelsPerDay, domain.DefaultPixelsPerDay)
	o.RowHeight = orDefault(o.RowHeight, domain.DefaultRowHeight)
	o.BarHeight = min(orDefault(o.BarHeight, domain.DefaultBarHeight), o.RowHeight)
	o.MinCanvasWidth = orDefault(o.MinCanvasWidth, domain.DefaultMinCanvasWidth)
	o.MinCanvasHeight = orDefault(o.MinCanvasHeight, domain.DefaultMinCanvasHeight)
	o.CanvasMargin = orDefault(o.CanvasMargin, domain.DefaultCanvasMargin)
	o.Router = o.Router.normalized()
	o.WindowStart = domain.DateOf(o.WindowStart)
	o.WindowEnd = domain.DateOf(o.WindowEnd)
	return o
}

func (o CalendarOptions) normalized() CalendarOptions {
	if o.FirstWeekday < time.Sunday || o.FirstWeekday > time.Saturday {
		o.FirstWeekday = domain.DefaultFirstWeekday
	}
	o.CellWidth = orDefault(o.CellWidth, domain.DefaultCellWidth)
	o.LaneHeight = orDefault(o.LaneHeight, domain.DefaultLaneHeight)
	o.HeaderHeight = orDefault(o.HeaderHeight, domain.DefaultHeaderHeight)
	o.MinWeekHeight = orDefault(o.MinWeekHeight, domain.DefaultMinWeekHeight)
	if o.LaneGap < 0 || o.LaneGap >= o.LaneHeight {
		o.LaneGap = 0
	}
	return o
}
