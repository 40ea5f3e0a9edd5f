package layout

import (
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
)

// MinDurationDays is the narrowest bar, in days, any scheduled task renders as.
const MinDurationDays = 1

// GeometryMapper converts dates and row numbers into canvas coordinates.
type GeometryMapper struct {
	WindowStart  time.Time
	PixelsPerDay float64
	RowHeight    float64
	BarHeight    float64
}

// Left returns the x offset of a bar starting on start. Dates before the
// window start are pinned to the left edge.
func (g GeometryMapper) Left(start time.Time) float64 {
	return float64(max(0, domain.DaysBetween(g.WindowStart, start))) * g.PixelsPerDay
}

// Width returns the bar width for the range. Zero and negative durations are
// widened to MinDurationDays.
func (g GeometryMapper) Width(start, end time.Time) float64 {
	return float64(max(domain.DaysBetween(start, end), MinDurationDays)) * g.PixelsPerDay
}

// Top returns the y offset of a bar in the given row, centred vertically.
func (g GeometryMapper) Top(row int) float64 {
	return float64(row)*g.RowHeight + (g.RowHeight-g.BarHeight)/2
}

// Headers returns one column per day from the window start to end inclusive.
// Every other column is shaded.
func (g GeometryMapper) Headers(windowEnd time.Time) []domain.DateHeader {
	if g.WindowStart.IsZero() || windowEnd.Before(g.WindowStart) {
		return nil
	}
	days := domain.DaysBetween(g.WindowStart, windowEnd) + 1
	headers := make([]domain.DateHeader, days)
	for d := range days {
		headers[d] = domain.DateHeader{
			Date:             domain.AddDays(g.WindowStart, d),
			ColumnLeft:       float64(d) * g.PixelsPerDay,
			Width:            g.PixelsPerDay,
			IsAlternateShade: d%2 == 1,
		}
	}
	return headers
}

// Canvas returns the drawing surface extents, never smaller than the minimums.
func (g GeometryMapper) Canvas(totalDays, rows int, minWidth, minHeight, margin float64) (width, height float64) {
	width = max(minWidth, float64(totalDays)*g.PixelsPerDay)
	height = max(minHeight, float64(rows)*g.RowHeight+margin)
	return width, height
}
