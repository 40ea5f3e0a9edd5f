package layout

import (
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
)

// Calendar lays out the month as whole weeks starting on the configured first
// weekday. Each week packs the scheduled tasks it shows into lanes, and every
// visible day of a task becomes one cell.
func Calendar(tasks []domain.Task, opts CalendarOptions) domain.CalendarLayout {
	opts = opts.normalized()
	tree := BuildTree(tasks)
	spans, diags := resolve(tree)
	propagate(tree, spans)

	month := opts.Month
	if month.IsZero() {
		month, _ = window(spans)
	}

	out := domain.CalendarLayout{
		CellWidth:    opts.CellWidth,
		HeaderHeight: opts.HeaderHeight,
		CanvasWidth:  7 * opts.CellWidth,
		Diagnostics:  diags,
	}
	if month.IsZero() {
		return out
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	gridStart := domain.AddDays(first, -MonthOffset(first.Weekday(), opts.FirstWeekday))
	out.Month = first

	nodes := make([]int, 0, tree.Len())
	items := make([]LaneInterval, 0, tree.Len())
	for i, n := range tree.All() {
		if !spans[i].ok {
			continue
		}
		nodes = append(nodes, i)
		items = append(items, LaneInterval{Key: n.Task.ID, Start: spans[i].start, End: spans[i].end})
	}

	colors := NewColorAssigner(opts.Palette)
	top := 0.0
	for ws := gridStart; !ws.After(last); ws = domain.AddDays(ws, 7) {
		we := domain.AddDays(ws, 6)
		assigned := AssignLanes(ws, we, items)

		week := domain.CalendarWeek{
			Start:     ws,
			End:       we,
			LaneCount: assigned.LaneCount,
			Top:       top,
			Height:    max(opts.MinWeekHeight, opts.HeaderHeight+float64(assigned.LaneCount)*opts.LaneHeight),
			Cells:     make([]domain.PositionedTask, 0, len(assigned.Cells)),
		}
		for _, c := range assigned.Cells {
			i := nodes[c.Item]
			n := &tree.Nodes[i]
			week.Cells = append(week.Cells, domain.PositionedTask{
				TaskID:          n.Task.ID,
				Name:            n.Task.Name,
				Left:            float64(c.DayIndex) * opts.CellWidth,
				Width:           opts.CellWidth,
				Top:             top + opts.HeaderHeight + float64(c.Lane)*opts.LaneHeight,
				Height:          opts.LaneHeight - opts.LaneGap,
				Index:           c.Lane,
				Span:            c.Span,
				Color:           colors.Color(n.Task.ID),
				Children:        childRefs(tree, spans, i),
				Start:           spans[i].start,
				End:             spans[i].end,
				IsSummary:       tree.IsSummary(i),
				Depth:           n.Depth,
				PercentComplete: n.Task.PercentComplete,
				AssignedTo:      n.Task.AssignedTo,
			})
		}

		out.Weeks = append(out.Weeks, week)
		top += week.Height
	}
	out.CanvasHeight = top

	return out
}

// MonthOffset returns how many days the grid starts before a month whose
// first day falls on weekday.
func MonthOffset(weekday, firstWeekday time.Weekday) int {
	return (int(weekday) - int(firstWeekday) + 7) % 7
}
