package layout

import (
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
)

// Gantt lays out the tasks as one row per scheduled task.
//
// Unscheduled tasks take no row and are reported as diagnostics. Summary bars
// cover all of their scheduled descendants. One connector is emitted per
// predecessor edge whose endpoints are both positioned; other edges are
// reported and skipped.
func Gantt(tasks []domain.Task, opts GanttOptions) domain.GanttLayout {
	opts = opts.normalized()
	tree := BuildTree(tasks)
	spans, diags := resolve(tree)
	propagate(tree, spans)

	ws, we := window(spans)
	if !opts.WindowStart.IsZero() {
		ws = opts.WindowStart
	}
	if !opts.WindowEnd.IsZero() {
		we = opts.WindowEnd
	}

	geo := GeometryMapper{
		WindowStart:  ws,
		PixelsPerDay: opts.PixelsPerDay,
		RowHeight:    opts.RowHeight,
		BarHeight:    opts.BarHeight,
	}
	colors := NewColorAssigner(opts.Palette)

	positioned := make([]domain.PositionedTask, 0, tree.Len())
	nodeOf := make([]int, 0, tree.Len())
	byID := make(map[string]int, tree.Len())
	for i, n := range tree.All() {
		span := spans[i]
		if !span.ok {
			continue
		}
		row := len(positioned)
		positioned = append(positioned, domain.PositionedTask{
			TaskID:          n.Task.ID,
			Name:            n.Task.Name,
			Left:            geo.Left(span.start),
			Width:           geo.Width(span.start, span.rightEdge()),
			Top:             geo.Top(row),
			Height:          opts.BarHeight,
			Index:           row,
			Span:            domain.SpanSingle,
			Color:           colors.Color(n.Task.ID),
			Children:        childRefs(tree, spans, i),
			Start:           span.start,
			End:             span.end,
			IsSummary:       tree.IsSummary(i),
			Depth:           n.Depth,
			PercentComplete: n.Task.PercentComplete,
			AssignedTo:      n.Task.AssignedTo,
		})
		nodeOf = append(nodeOf, i)
		if _, dup := byID[n.Task.ID]; !dup {
			byID[n.Task.ID] = row
		}
	}

	router := NewRouter(opts.Router)
	var connectors []domain.ConnectorPath
	for row, succ := range positioned {
		for _, p := range tree.Nodes[nodeOf[row]].Task.Predecessors {
			predRow, ok := byID[p.TaskID]
			if !ok {
				diags = append(diags, domain.Diagnostic{
					Kind:   domain.DiagnosticUnresolvedPredecessor,
					TaskID: succ.TaskID,
					Detail: "predecessor " + p.TaskID,
				})
				continue
			}
			connectors = append(connectors, router.Route(positioned[predRow], succ, p.Type))
		}
	}

	totalDays := 0
	if !ws.IsZero() && !we.Before(ws) {
		totalDays = domain.DaysBetween(ws, we) + 1
	}
	width, height := geo.Canvas(totalDays, len(positioned), opts.MinCanvasWidth, opts.MinCanvasHeight, opts.CanvasMargin)

	return domain.GanttLayout{
		Tasks:        positioned,
		Connectors:   connectors,
		Headers:      geo.Headers(we),
		CanvasWidth:  width,
		CanvasHeight: height,
		WindowStart:  ws,
		WindowEnd:    we,
		PixelsPerDay: opts.PixelsPerDay,
		RowHeight:    opts.RowHeight,
		Diagnostics:  diags,
	}
}

// window returns the earliest start and latest end over scheduled nodes.
func window(spans []interval) (start, end time.Time) {
	for _, s := range spans {
		if !s.ok {
			continue
		}
		if start.IsZero() || s.start.Before(start) {
			start = s.start
		}
		if end.IsZero() || s.end.After(end) {
			end = s.end
		}
	}
	return start, end
}

// childRefs lists the ids of the node's scheduled direct children.
func childRefs(tree *Tree, spans []interval, i int) []string {
	var refs []string
	for _, c := range tree.Nodes[i].Children {
		if spans[c].ok {
			refs = append(refs, tree.Nodes[c].Task.ID)
		}
	}
	return refs
}
