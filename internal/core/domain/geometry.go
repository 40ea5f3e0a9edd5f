package domain

import "time"

// SpanType classifies how one calendar cell of a multi-day task is capped.
type SpanType uint8

const (
	// SpanSingle is a cell that is both the first and last day of the task.
	SpanSingle SpanType = iota
	// SpanStart is the first day of a task that continues into later cells.
	SpanStart
	// SpanMiddle is neither the first nor the last day of the task.
	SpanMiddle
	// SpanEnd is the last day of a task that began in an earlier cell.
	SpanEnd
)

// String returns the lower-case name of the span type.
func (s SpanType) String() string {
	switch s {
	case SpanSingle:
		return "single"
	case SpanStart:
		return "start"
	case SpanMiddle:
		return "middle"
	case SpanEnd:
		return "end"
	default:
		return "unknown"
	}
}

// MarshalText encodes the span type by name.
func (s SpanType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RoundsLeft reports whether the cell draws a rounded left edge.
func (s SpanType) RoundsLeft() bool {
	return s == SpanSingle || s == SpanStart
}

// RoundsRight reports whether the cell draws a rounded right edge.
func (s SpanType) RoundsRight() bool {
	return s == SpanSingle || s == SpanEnd
}

// Point is a coordinate on the rendering canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PositionedTask is a task placed on the canvas.
// In the Gantt view Index is the row; in the calendar view it is the lane.
type PositionedTask struct {
	TaskID string   `json:"taskId"`
	Name   string   `json:"name"`
	Left   float64  `json:"left"`
	Width  float64  `json:"width"`
	Top    float64  `json:"top"`
	Height float64  `json:"height"`
	Index  int      `json:"index"`
	Span   SpanType `json:"spanType"`
	Color  string   `json:"color"`

	Children []string `json:"childRefs,omitempty"`

	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	IsSummary       bool      `json:"isSummary"`
	Depth           int       `json:"depth"`
	PercentComplete float64   `json:"percentComplete"`
	AssignedTo      string    `json:"assignedTo,omitempty"`
}

// Right returns the x coordinate of the bar's right edge.
func (p PositionedTask) Right() float64 {
	return p.Left + p.Width
}

// Bottom returns the y coordinate of the bar's lower edge.
func (p PositionedTask) Bottom() float64 {
	return p.Top + p.Height
}

// MidY returns the y coordinate of the bar's horizontal centre line.
func (p PositionedTask) MidY() float64 {
	return p.Top + p.Height/2
}

// ConnectorPath is an orthogonal line between two positioned tasks.
type ConnectorPath struct {
	FromTaskID string           `json:"fromTaskId"`
	ToTaskID   string           `json:"toTaskId"`
	Type       RelationshipType `json:"type"`
	Points     []Point          `json:"points"`
	Arrow      []Point          `json:"arrowPoints"`
}

// DateHeader is one day column of the Gantt header band.
type DateHeader struct {
	Date             time.Time `json:"date"`
	ColumnLeft       float64   `json:"columnLeft"`
	Width            float64   `json:"width"`
	IsAlternateShade bool      `json:"isAlternateShade"`
}

// GanttLayout is the result of one Gantt layout pass.
type GanttLayout struct {
	Tasks        []PositionedTask `json:"tasks"`
	Connectors   []ConnectorPath  `json:"connectors"`
	Headers      []DateHeader     `json:"headers"`
	CanvasWidth  float64          `json:"canvasWidth"`
	CanvasHeight float64          `json:"canvasHeight"`
	WindowStart  time.Time        `json:"windowStart"`
	WindowEnd    time.Time        `json:"windowEnd"`
	PixelsPerDay float64          `json:"pixelsPerDay"`
	RowHeight    float64          `json:"rowHeight"`
	Diagnostics  []Diagnostic     `json:"diagnostics,omitempty"`
}

// CalendarWeek is one 7-day row of the month calendar.
type CalendarWeek struct {
	Start     time.Time        `json:"start"`
	End       time.Time        `json:"end"`
	LaneCount int              `json:"laneCount"`
	Top       float64          `json:"top"`
	Height    float64          `json:"height"`
	Cells     []PositionedTask `json:"cells"`
}

// CalendarLayout is the result of one calendar layout pass.
type CalendarLayout struct {
	Month        time.Time      `json:"month"`
	Weeks        []CalendarWeek `json:"weeks"`
	CellWidth    float64        `json:"cellWidth"`
	HeaderHeight float64        `json:"headerHeight"`
	CanvasWidth  float64        `json:"canvasWidth"`
	CanvasHeight float64        `json:"canvasHeight"`
	Diagnostics  []Diagnostic   `json:"diagnostics,omitempty"`
}

// DiagnosticKind names an input defect the layout recovered from.
type DiagnosticKind string

const (
	// DiagnosticUnscheduled marks a task without a start date.
	DiagnosticUnscheduled DiagnosticKind = "unscheduled"
	// DiagnosticInvertedInterval marks a task whose end preceded its start.
	DiagnosticInvertedInterval DiagnosticKind = "inverted_interval"
	// DiagnosticIndentGap marks a task nested more than one level below its predecessor.
	DiagnosticIndentGap DiagnosticKind = "indent_gap"
	// DiagnosticUnresolvedPredecessor marks a predecessor id with no positioned task.
	DiagnosticUnresolvedPredecessor DiagnosticKind = "unresolved_predecessor"
)

// Diagnostic records one recovered input defect.
type Diagnostic struct {
	Kind   DiagnosticKind `json:"kind"`
	TaskID string         `json:"taskId"`
	Detail string         `json:"detail,omitempty"`
}

// String formats the diagnostic for log output.
func (d Diagnostic) String() string {
	s := string(d.Kind) + ": " + d.TaskID
	if d.Detail != "" {
		s += " (" + d.Detail + ")"
	}
	return s
}
