package layout

import (
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
)

// interval is a node's rendered date range. End is the last day the task
// occupies. Edge is set on summaries to the furthest child bar boundary.
type interval struct {
	start time.Time
	end   time.Time
	edge  time.Time
	ok    bool
}

// rightEdge is the exclusive day boundary the bar extends to, never less than
// one day after the start.
func (iv interval) rightEdge() time.Time {
	if !iv.edge.IsZero() {
		return iv.edge
	}
	if !iv.end.After(iv.start) {
		return domain.AddDays(iv.start, MinDurationDays)
	}
	return iv.end
}

// resolve computes each node's own interval, recording unscheduled and
// inverted tasks.
func resolve(tree *Tree) ([]interval, []domain.Diagnostic) {
	spans := make([]interval, tree.Len())
	var diags []domain.Diagnostic

	for i, n := range tree.All() {
		if !n.Task.Scheduled() {
			diags = append(diags, domain.Diagnostic{Kind: domain.DiagnosticUnscheduled, TaskID: n.Task.ID})
			continue
		}
		start, end, clamped := n.Task.Interval()
		if clamped {
			diags = append(diags, domain.Diagnostic{
				Kind:   domain.DiagnosticInvertedInterval,
				TaskID: n.Task.ID,
				Detail: "end clamped to start",
			})
		}
		spans[i] = interval{start: start, end: end, ok: true}
	}

	for _, i := range tree.Gaps() {
		diags = append(diags, domain.Diagnostic{
			Kind:   domain.DiagnosticIndentGap,
			TaskID: tree.Nodes[i].Task.ID,
			Detail: "attached to nearest shallower ancestor",
		})
	}

	return spans, diags
}

// propagate rewrites every scheduled summary interval to exactly cover its
// scheduled children. Nodes are visited in reverse pre-order so children are
// final before their parent. A summary without scheduled children keeps its
// own interval. Unscheduled nodes stay excluded even when their children are
// scheduled.
func propagate(tree *Tree, spans []interval) {
	for i := tree.Len() - 1; i >= 0; i-- {
		children := tree.Nodes[i].Children
		if len(children) == 0 || !spans[i].ok {
			continue
		}

		var merged interval
		for _, c := range children {
			child := spans[c]
			if !child.ok {
				continue
			}
			right := child.rightEdge()
			if !merged.ok {
				merged = interval{start: child.start, end: child.end, edge: right, ok: true}
				continue
			}
			if child.start.Before(merged.start) {
				merged.start = child.start
			}
			if child.end.After(merged.end) {
				merged.end = child.end
			}
			if right.After(merged.edge) {
				merged.edge = right
			}
		}

		if merged.ok {
			spans[i] = merged
		}
	}
}
