package domain

import "time"

// Layout defaults used when settings leave a value unset.
const (
	DefaultPixelsPerDay    = 50.0
	DefaultRowHeight       = 30.0
	DefaultBarHeight       = 20.0
	DefaultMinCanvasWidth  = 800.0
	DefaultMinCanvasHeight = 400.0
	DefaultCanvasMargin    = 40.0

	DefaultConnectorOffset = 10.0
	DefaultConnectorMargin = 20.0
	DefaultArrowSize       = 6.0

	DefaultCellWidth     = 120.0
	DefaultLaneHeight    = 20.0
	DefaultLaneGap       = 2.0
	DefaultHeaderHeight  = 20.0
	DefaultMinWeekHeight = 80.0
	DefaultFirstWeekday  = time.Monday
)

// GanttSettings configures the Gantt geometry.
type GanttSettings struct {
	PixelsPerDay    float64
	RowHeight       float64
	BarHeight       float64
	MinCanvasWidth  float64
	MinCanvasHeight float64
	CanvasMargin    float64
}

// CalendarSettings configures the month calendar geometry.
type CalendarSettings struct {
	FirstWeekday  time.Weekday
	CellWidth     float64
	LaneHeight    float64
	LaneGap       float64
	HeaderHeight  float64
	MinWeekHeight float64
}

// ConnectorSettings configures dependency connector routing.
type ConnectorSettings struct {
	Offset    float64
	Margin    float64
	ArrowSize float64
}

// OutputSettings holds rendering defaults.
type OutputSettings struct {
	Format Format
}

// Settings is the project-level configuration read from scaffold.yaml.
type Settings struct {
	Gantt      GanttSettings
	Calendar   CalendarSettings
	Connectors ConnectorSettings
	Palette    []string
	Output     OutputSettings
}

// DefaultSettings returns the settings used when no scaffold.yaml is found.
func DefaultSettings() *Settings {
	return &Settings{
		Gantt: GanttSettings{
			PixelsPerDay:    DefaultPixelsPerDay,
			RowHeight:       DefaultRowHeight,
			BarHeight:       DefaultBarHeight,
			MinCanvasWidth:  DefaultMinCanvasWidth,
			MinCanvasHeight: DefaultMinCanvasHeight,
			CanvasMargin:    DefaultCanvasMargin,
		},
		Calendar: CalendarSettings{
			FirstWeekday:  DefaultFirstWeekday,
			CellWidth:     DefaultCellWidth,
			LaneHeight:    DefaultLaneHeight,
			LaneGap:       DefaultLaneGap,
			HeaderHeight:  DefaultHeaderHeight,
			MinWeekHeight: DefaultMinWeekHeight,
		},
		Connectors: ConnectorSettings{
			Offset:    DefaultConnectorOffset,
			Margin:    DefaultConnectorMargin,
			ArrowSize: DefaultArrowSize,
		},
		Output: OutputSettings{Format: FormatAuto},
	}
}
