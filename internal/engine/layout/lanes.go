package layout

import (
	"slices"
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
)

// LaneInterval is one candidate bar for lane assignment. End is inclusive.
type LaneInterval struct {
	Key   string
	Start time.Time
	End   time.Time
}

// LaneCell is one day of a task inside the window.
type LaneCell struct {
	Key      string
	Item     int
	DayIndex int
	Date     time.Time
	Lane     int
	Span     domain.SpanType
}

// LaneAssignment is the result of one window's lane assignment.
type LaneAssignment struct {
	// Lanes holds the lane of each input interval, or -1 when the interval
	// lies outside the window.
	Lanes     []int
	Cells     []LaneCell
	LaneCount int
}

type clipped struct {
	item     int
	start    time.Time
	end      time.Time
	duration int
}

// AssignLanes greedily packs the intervals into lanes for the window
// [windowStart, windowEnd].
//
// Intervals are clipped to the window and visited by clipped start, then by
// longer original duration, then by input order. Each takes the lowest lane
// whose previous occupant ended before its clipped start, opening a new lane
// when none is free. The visiting order fixes the visible stacking, so equal
// input always yields equal lanes.
func AssignLanes(windowStart, windowEnd time.Time, items []LaneInterval) LaneAssignment {
	ws, we := domain.DateOf(windowStart), domain.DateOf(windowEnd)
	result := LaneAssignment{Lanes: make([]int, len(items))}

	visible := make([]clipped, 0, len(items))
	for i, it := range items {
		result.Lanes[i] = -1
		start, end := domain.DateOf(it.Start), domain.DateOf(it.End)
		if end.Before(start) {
			end = start
		}
		if end.Before(ws) || start.After(we) {
			continue
		}
		visible = append(visible, clipped{
			item:     i,
			start:    maxTime(start, ws),
			end:      minTime(end, we),
			duration: domain.DaysBetween(start, end),
		})
	}

	slices.SortStableFunc(visible, func(a, b clipped) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}
		return b.duration - a.duration
	})

	var busyUntil []time.Time
	for _, v := range visible {
		lane := -1
		for l, until := range busyUntil {
			if until.Before(v.start) {
				lane = l
				break
			}
		}
		if lane < 0 {
			lane = len(busyUntil)
			busyUntil = append(busyUntil, v.end)
		} else {
			busyUntil[lane] = v.end
		}
		result.Lanes[v.item] = lane

		it := items[v.item]
		trueStart, trueEnd := domain.DateOf(it.Start), maxTime(domain.DateOf(it.End), domain.DateOf(it.Start))
		for d := v.start; !d.After(v.end); d = d.AddDate(0, 0, 1) {
			result.Cells = append(result.Cells, LaneCell{
				Key:      it.Key,
				Item:     v.item,
				DayIndex: domain.DaysBetween(ws, d),
				Date:     d,
				Lane:     lane,
				Span:     spanType(d.Equal(trueStart), d.Equal(trueEnd)),
			})
		}
	}

	result.LaneCount = len(busyUntil)
	return result
}

func spanType(isStart, isEnd bool) domain.SpanType {
	switch {
	case isStart && isEnd:
		return domain.SpanSingle
	case isStart:
		return domain.SpanStart
	case isEnd:
		return domain.SpanEnd
	default:
		return domain.SpanMiddle
	}
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
