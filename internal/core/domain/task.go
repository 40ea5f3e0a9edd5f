package domain

import (
	"strconv"
	"time"
)

// RelationshipType is the integer code carried by a predecessor link.
type RelationshipType int

// FinishToStart means the successor starts once the predecessor finishes.
// Other codes are stored as given and routed the same way.
const FinishToStart RelationshipType = 1

// String returns the short form used in logs and JSON output.
func (r RelationshipType) String() string {
	if r == FinishToStart {
		return "FS"
	}
	return "type(" + strconv.Itoa(int(r)) + ")"
}

// Predecessor is one incoming dependency edge of a task.
type Predecessor struct {
	TaskID string
	Type   RelationshipType
}

// Task is one entry of a flat, depth-first ordered schedule.
type Task struct {
	ID          string
	Name        string
	Start       time.Time
	End         time.Time
	OrderIndex  int
	IndentLevel int
	IsGroup     bool

	Predecessors []Predecessor

	// PercentComplete and AssignedTo are carried through to renderers untouched.
	PercentComplete float64
	AssignedTo      string
}

// Scheduled reports whether the task has a start date.
func (t Task) Scheduled() bool {
	return !t.Start.IsZero()
}

// Interval returns the task's calendar dates with a missing end resolved to the
// start and an inverted range clamped to a single day.
// The clamped result reports whether the stored end preceded the start.
func (t Task) Interval() (start, end time.Time, clamped bool) {
	start = DateOf(t.Start)
	end = DateOf(t.End)
	if end.IsZero() {
		return start, start, false
	}
	if end.Before(start) {
		return start, start, true
	}
	return start, end, false
}
