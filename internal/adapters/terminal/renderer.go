// Package terminal prints layouts as character charts for a terminal.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/scaffold/internal/ui/output"
	"go.trai.ch/scaffold/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

const (
	maxLabelWidth = 32
	minLabelWidth = 4
	// calendarColumn is the character width of one calendar day.
	calendarColumn = 10
	separator      = " │"
)

// Renderer implements ports.Renderer for terminal text.
// One character column stands for one day in the Gantt chart.
type Renderer struct {
	profile func() termenv.Profile
}

// NewRenderer creates a Renderer whose colours follow profile.
func NewRenderer(profile func() termenv.Profile) *Renderer {
	return &Renderer{profile: profile}
}

// RenderGantt writes a Gantt chart to w.
func (r *Renderer) RenderGantt(w io.Writer, layout *domain.GanttLayout) error {
	bw := bufio.NewWriter(w)
	out := output.NewWithProfile(bw, r.profile)

	if len(layout.Tasks) == 0 || layout.PixelsPerDay <= 0 {
		_, _ = bw.WriteString("no scheduled tasks\n")
		return flush(bw)
	}

	days := len(layout.Headers)
	lw := labelWidth(layout.Tasks)
	pad := strings.Repeat(" ", lw) + separator

	months := blankRow(days)
	digits := blankRow(days)
	for i, h := range layout.Headers {
		if i == 0 || h.Date.Day() == 1 {
			writeAt(months, i, h.Date.Format("Jan"))
		}
		digits[i] = string(rune('0' + h.Date.Day()%10))
	}
	r.line(bw, out, pad, months, "")
	r.line(bw, out, pad, digits, "")

	for _, task := range layout.Tasks {
		cells := blankRow(days)
		start := int(math.Round(task.Left / layout.PixelsPerDay))
		n := max(1, int(math.Round(task.Width/layout.PixelsPerDay)))
		done := int(math.Round(float64(n) * min(max(task.PercentComplete, 0), 100) / 100))
		for k := range n {
			if start+k >= days {
				break
			}
			switch {
			case task.IsSummary:
				cells[start+k] = style.BarSummary
			case k < done:
				cells[start+k] = style.BarDone
			default:
				cells[start+k] = style.BarPending
			}
		}
		label := fit(strings.Repeat("  ", task.Depth)+task.Name, lw)
		r.line(bw, out, label+separator, cells, task.Color)
	}

	_, _ = fmt.Fprintf(bw, "\n%d tasks, %d dependencies, %s to %s\n",
		len(layout.Tasks), len(layout.Connectors),
		layout.WindowStart.Format("2006-01-02"), layout.WindowEnd.Format("2006-01-02"))

	return flush(bw)
}

// RenderCalendar writes a month grid to w with one row per lane.
func (r *Renderer) RenderCalendar(w io.Writer, layout *domain.CalendarLayout) error {
	bw := bufio.NewWriter(w)
	out := output.NewWithProfile(bw, r.profile)

	if layout.Month.IsZero() || len(layout.Weeks) == 0 {
		_, _ = bw.WriteString("no scheduled tasks\n")
		return flush(bw)
	}

	_, _ = bw.WriteString(r.styled(out, layout.Month.Format("January 2006"), string(style.Iris), true) + "\n")

	names := make([]string, 7)
	for i := range 7 {
		names[i] = fit(domain.AddDays(layout.Weeks[0].Start, i).Weekday().String()[:3], calendarColumn)
	}
	_, _ = bw.WriteString(strings.TrimRight(strings.Join(names, " "), " ") + "\n")

	for _, week := range layout.Weeks {
		dates := make([]string, 7)
		for i := range 7 {
			dates[i] = fit(fmt.Sprint(domain.AddDays(week.Start, i).Day()), calendarColumn)
		}
		_, _ = bw.WriteString(strings.TrimRight(strings.Join(dates, " "), " ") + "\n")

		for lane := range week.LaneCount {
			cols := make([]string, 7)
			for i := range cols {
				cols[i] = strings.Repeat(" ", calendarColumn)
			}
			for _, cell := range week.Cells {
				if cell.Index != lane {
					continue
				}
				col := int(math.Round(cell.Left / layout.CellWidth))
				if col < 0 || col > 6 {
					continue
				}
				cols[col] = r.styled(out, calendarCell(cell, col), cell.Color, false)
			}
			_, _ = bw.WriteString(strings.TrimRight(strings.Join(cols, " "), " ") + "\n")
		}
	}

	return flush(bw)
}

// calendarCell draws one day of a task. Closed caps mark the first and last
// day; open caps continue into the neighbouring cell.
func calendarCell(cell domain.PositionedTask, col int) string {
	left, right := style.CapCont, style.CapCont
	if cell.Span.RoundsLeft() {
		left = style.CapOpen
	}
	if cell.Span.RoundsRight() {
		right = style.CapClose
	}

	inner := calendarColumn - 2
	label := ""
	if cell.Span.RoundsLeft() || col == 0 {
		label = truncate(cell.Name, inner)
	}
	fill := style.CapCont
	if cell.Span == domain.SpanSingle {
		fill = " "
	}
	return left + label + strings.Repeat(fill, inner-lipgloss.Width(label)) + right
}

func (r *Renderer) line(w io.Writer, out *termenv.Output, prefix string, cells []string, color string) {
	row := strings.TrimRight(strings.Join(cells, ""), " ")
	if color != "" {
		row = r.styled(out, row, color, false)
	}
	_, _ = io.WriteString(w, strings.TrimRight(prefix+row, " ")+"\n")
}

func (r *Renderer) styled(out *termenv.Output, s, color string, bold bool) string {
	if out.Profile == termenv.Ascii || s == "" {
		return s
	}
	st := out.String(s).Foreground(out.Color(color))
	if bold {
		st = st.Bold()
	}
	return st.String()
}

func labelWidth(tasks []domain.PositionedTask) int {
	lw := minLabelWidth
	for _, t := range tasks {
		lw = max(lw, 2*t.Depth+lipgloss.Width(t.Name))
	}
	return min(lw, maxLabelWidth)
}

func blankRow(n int) []string {
	row := make([]string, n)
	for i := range row {
		row[i] = style.BarEmpty
	}
	return row
}

// writeAt copies s into row starting at column i, clipping at the end.
func writeAt(row []string, i int, s string) {
	for _, ch := range s {
		if i >= len(row) {
			return
		}
		row[i] = string(ch)
		i++
	}
}

// fit truncates or pads s to exactly width columns.
func fit(s string, width int) string {
	s = truncate(s, width)
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func flush(bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", string(domain.FormatText))
	}
	return nil
}
