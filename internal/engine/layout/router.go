package layout

import "go.trai.ch/scaffold/internal/core/domain"

// Router draws orthogonal connectors between positioned tasks.
type Router struct {
	opts RouterOptions
}

// NewRouter creates a Router. Non-positive options fall back to defaults.
func NewRouter(opts RouterOptions) *Router {
	return &Router{opts: opts.normalized()}
}

// Route connects the predecessor's right edge to the successor's left edge.
// Every relationship code is routed as finish-to-start.
//
// When the successor starts clear of the predecessor the path has three
// segments meeting at the horizontal midpoint. Otherwise it steps out of the
// predecessor, runs along a channel between the two rows and steps back into
// the successor, so the line never lies on top of either bar.
func (r *Router) Route(pred, succ domain.PositionedTask, rel domain.RelationshipType) domain.ConnectorPath {
	x1, y1 := pred.Right(), pred.MidY()
	x2, y2 := succ.Left, succ.MidY()

	var points []domain.Point
	if x2 > x1+r.opts.Margin {
		midX := (x1 + x2) / 2
		points = []domain.Point{
			{X: x1, Y: y1},
			{X: midX, Y: y1},
			{X: midX, Y: y2},
			{X: x2, Y: y2},
		}
	} else {
		off := r.opts.Offset
		channel := r.channelY(pred, succ)
		points = []domain.Point{
			{X: x1, Y: y1},
			{X: x1 + off, Y: y1},
			{X: x1 + off, Y: channel},
			{X: x2 - off, Y: channel},
			{X: x2 - off, Y: y2},
			{X: x2, Y: y2},
		}
	}

	return domain.ConnectorPath{
		FromTaskID: pred.TaskID,
		ToTaskID:   succ.TaskID,
		Type:       rel,
		Points:     points,
		Arrow:      r.arrow(x2, y2),
	}
}

// channelY picks the y of the horizontal run in the overlap case: halfway
// through the gap between the bars, or just below both when they share rows.
func (r *Router) channelY(pred, succ domain.PositionedTask) float64 {
	switch {
	case succ.Top >= pred.Bottom():
		return (pred.Bottom() + succ.Top) / 2
	case pred.Top >= succ.Bottom():
		return (succ.Bottom() + pred.Top) / 2
	default:
		return max(pred.Bottom(), succ.Bottom()) + r.opts.Offset/2
	}
}

// arrow returns a triangle pointing right with its tip on (x, y).
func (r *Router) arrow(x, y float64) []domain.Point {
	s := r.opts.ArrowSize
	return []domain.Point{
		{X: x, Y: y},
		{X: x - s, Y: y - s/2},
		{X: x - s, Y: y + s/2},
	}
}
