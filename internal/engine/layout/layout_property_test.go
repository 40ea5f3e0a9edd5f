package layout_test

import (
	"fmt"
	"testing"
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/engine/layout"
	"pgregory.net/rapid"
)

var propertyBase = day(2024, 1, 1)

func genSchedule(t *rapid.T) []domain.Task {
	n := rapid.IntRange(0, 25).Draw(t, "numTasks")
	tasks := make([]domain.Task, n)
	prevIndent := 0
	for i := range tasks {
		indent := rapid.IntRange(0, prevIndent+2).Draw(t, "indent")
		prevIndent = indent

		tk := domain.Task{
			ID:          fmt.Sprintf("T%02d", i),
			Name:        fmt.Sprintf("task %d", i),
			OrderIndex:  i,
			IndentLevel: indent,
			IsGroup:     rapid.Bool().Draw(t, "group"),
		}
		if rapid.IntRange(0, 9).Draw(t, "scheduled") > 0 {
			tk.Start = propertyBase.AddDate(0, 0, rapid.IntRange(0, 60).Draw(t, "startOffset"))
			tk.End = tk.Start.AddDate(0, 0, rapid.IntRange(-3, 14).Draw(t, "duration"))
		}
		if i > 0 && rapid.Bool().Draw(t, "hasPredecessor") {
			p := rapid.IntRange(0, n-1).Draw(t, "predecessor")
			tk.Predecessors = []domain.Predecessor{{TaskID: fmt.Sprintf("T%02d", p), Type: domain.FinishToStart}}
		}
		tasks[i] = tk
	}
	return tasks
}

// TestProperty_SummaryContainsChildren verifies that every positioned summary
// bar spans all of its positioned children.
func TestProperty_SummaryContainsChildren(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		out := layout.Gantt(genSchedule(rt), layout.DefaultGanttOptions())
		got := byID(out.Tasks)

		for _, p := range out.Tasks {
			for _, ref := range p.Children {
				c, ok := got[ref]
				if !ok {
					rt.Fatalf("child %s of %s is not positioned", ref, p.TaskID)
				}
				if p.Left > c.Left {
					rt.Fatalf("%s left %v > child %s left %v", p.TaskID, p.Left, ref, c.Left)
				}
				if p.Right() < c.Right() {
					rt.Fatalf("%s right %v < child %s right %v", p.TaskID, p.Right(), ref, c.Right())
				}
				if p.Start.After(c.Start) || p.End.Before(c.End) {
					rt.Fatalf("%s [%v, %v] does not cover child %s [%v, %v]",
						p.TaskID, p.Start, p.End, ref, c.Start, c.End)
				}
			}
		}
	})
}

// TestProperty_CalendarSummaryCoversChildren verifies that a summary occupies
// every calendar day one of its children occupies.
func TestProperty_CalendarSummaryCoversChildren(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		opts := layout.DefaultCalendarOptions()
		opts.Month = propertyBase.AddDate(0, rapid.IntRange(0, 2).Draw(rt, "month"), 0)
		out := layout.Calendar(genSchedule(rt), opts)

		occupied := map[string]map[time.Time]bool{}
		children := map[string][]string{}
		for _, w := range out.Weeks {
			for _, c := range w.Cells {
				date := w.Start.AddDate(0, 0, int(c.Left/opts.CellWidth))
				if occupied[c.TaskID] == nil {
					occupied[c.TaskID] = map[time.Time]bool{}
				}
				occupied[c.TaskID][date] = true
				children[c.TaskID] = c.Children
			}
		}

		for parent, refs := range children {
			for _, ref := range refs {
				for date := range occupied[ref] {
					if !occupied[parent][date] {
						rt.Fatalf("%s is missing %v occupied by child %s", parent, date, ref)
					}
				}
			}
		}
	})
}

// TestProperty_MinimumWidth verifies that no bar is narrower than one day.
func TestProperty_MinimumWidth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		opts := layout.DefaultGanttOptions()
		opts.PixelsPerDay = float64(rapid.IntRange(1, 80).Draw(rt, "pixelsPerDay"))

		out := layout.Gantt(genSchedule(rt), opts)
		for _, p := range out.Tasks {
			if p.Width < opts.PixelsPerDay {
				rt.Fatalf("%s width %v < %v", p.TaskID, p.Width, opts.PixelsPerDay)
			}
		}
	})
}

// TestProperty_RowsAreContiguous verifies that rows are numbered 0..n-1 in
// document order with no gaps left by unscheduled tasks.
func TestProperty_RowsAreContiguous(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		out := layout.Gantt(genSchedule(rt), layout.DefaultGanttOptions())
		for row, p := range out.Tasks {
			if p.Index != row {
				rt.Fatalf("task %s has row %d at position %d", p.TaskID, p.Index, row)
			}
		}
	})
}

// TestProperty_Deterministic verifies that repeated passes are identical.
func TestProperty_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tasks := genSchedule(rt)
		month := propertyBase.AddDate(0, rapid.IntRange(0, 2).Draw(rt, "month"), 0)

		g1 := layout.Gantt(tasks, layout.DefaultGanttOptions())
		g2 := layout.Gantt(tasks, layout.DefaultGanttOptions())
		if fmt.Sprintf("%#v", g1) != fmt.Sprintf("%#v", g2) {
			rt.Fatalf("gantt layouts differ")
		}

		opts := layout.DefaultCalendarOptions()
		opts.Month = month
		c1 := layout.Calendar(tasks, opts)
		c2 := layout.Calendar(tasks, opts)
		if fmt.Sprintf("%#v", c1) != fmt.Sprintf("%#v", c2) {
			rt.Fatalf("calendar layouts differ")
		}
	})
}

// TestProperty_LanesDoNotOverlap verifies that no two cells in one window share
// a day and a lane.
func TestProperty_LanesDoNotOverlap(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ws := propertyBase.AddDate(0, 0, rapid.IntRange(0, 20).Draw(rt, "windowOffset"))
		we := ws.AddDate(0, 0, 6)

		n := rapid.IntRange(0, 20).Draw(rt, "numItems")
		items := make([]layout.LaneInterval, n)
		for i := range items {
			start := propertyBase.AddDate(0, 0, rapid.IntRange(-5, 35).Draw(rt, "start"))
			items[i] = layout.LaneInterval{
				Key:   fmt.Sprintf("I%d", i),
				Start: start,
				End:   start.AddDate(0, 0, rapid.IntRange(0, 10).Draw(rt, "length")),
			}
		}

		got := layout.AssignLanes(ws, we, items)
		type slot struct{ day, lane int }
		seen := make(map[slot]string)
		for _, c := range got.Cells {
			if c.DayIndex < 0 || c.DayIndex > 6 {
				rt.Fatalf("cell of %s outside window at day %d", c.Key, c.DayIndex)
			}
			s := slot{c.DayIndex, c.Lane}
			if other, dup := seen[s]; dup {
				rt.Fatalf("%s and %s share lane %d on day %d", other, c.Key, c.Lane, c.DayIndex)
			}
			seen[s] = c.Key
			if c.Lane >= got.LaneCount {
				rt.Fatalf("lane %d >= lane count %d", c.Lane, got.LaneCount)
			}
		}
	})
}

// TestProperty_ColorIgnoresPosition verifies that a task's colour does not
// depend on where it appears in the input.
func TestProperty_ColorIgnoresPosition(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 15).Draw(rt, "numTasks")
		tasks := make([]domain.Task, n)
		for i := range tasks {
			tasks[i] = task(fmt.Sprintf("C%d", i), i, 0, propertyBase, propertyBase.Add(48*time.Hour))
		}
		shuffled := rapid.Permutation(tasks).Draw(rt, "shuffled")
		for i := range shuffled {
			shuffled[i].OrderIndex = i
		}

		a := byID(layout.Gantt(tasks, layout.DefaultGanttOptions()).Tasks)
		b := byID(layout.Gantt(shuffled, layout.DefaultGanttOptions()).Tasks)
		for id, p := range a {
			if b[id].Color != p.Color {
				rt.Fatalf("colour of %s changed from %s to %s", id, p.Color, b[id].Color)
			}
		}
	})
}
