// Package svg draws layouts as standalone SVG documents.
package svg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Theme holds the fixed colours and fonts of the drawing.
type Theme struct {
	Background string
	Grid       string
	Shade      string
	Text       string
	Muted      string
	Connector  string
	FontFamily string
	FontSize   int
	BandHeight float64
	Radius     float64
}

// DefaultTheme returns the light theme used by the CLI.
func DefaultTheme() Theme {
	return Theme{
		Background: "#FFFFFF",
		Grid:       "#E4E7EC",
		Shade:      "#F6F7FB",
		Text:       "#0B0F19",
		Muted:      "#667085",
		Connector:  "#475467",
		FontFamily: "Helvetica, Arial, sans-serif",
		FontSize:   12,
		BandHeight: 32,
		Radius:     3,
	}
}

// Renderer implements ports.Renderer for SVG output.
type Renderer struct {
	theme Theme
}

// NewRenderer creates a Renderer with the given theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// RenderGantt writes a Gantt layout to w. Day labels sit in a band above the
// layout, which is drawn unchanged below it.
func (r *Renderer) RenderGantt(w io.Writer, layout *domain.GanttLayout) error {
	bw := bufio.NewWriter(w)
	t := r.theme

	r.open(bw, layout.CanvasWidth, layout.CanvasHeight+t.BandHeight)

	_, _ = bw.WriteString(`<g class="headers">` + "\n")
	for _, h := range layout.Headers {
		if h.IsAlternateShade {
			fmt.Fprintf(bw, `<rect x="%s" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
				num(h.ColumnLeft), num(h.Width), num(layout.CanvasHeight+t.BandHeight), t.Shade)
		}
		fmt.Fprintf(bw, `<text class="date" x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
			num(h.ColumnLeft+h.Width/2), num(t.BandHeight/2), dayLabel(h.Date, h.Width))
	}
	fmt.Fprintf(bw, `<line x1="0" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
		num(t.BandHeight), num(layout.CanvasWidth), num(t.BandHeight), t.Grid)
	_, _ = bw.WriteString("</g>\n")

	fmt.Fprintf(bw, `<g class="body" transform="translate(0,%s)">`+"\n", num(t.BandHeight))

	for _, c := range layout.Connectors {
		fmt.Fprintf(bw, `<polyline class="connector" data-from="%s" data-to="%s" points="%s" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
			escapeXML(c.FromTaskID), escapeXML(c.ToTaskID), points(c.Points), t.Connector)
		if len(c.Arrow) > 0 {
			fmt.Fprintf(bw, `<polygon class="arrow" points="%s" fill="%s"/>`+"\n", points(c.Arrow), t.Connector)
		}
	}

	for _, task := range layout.Tasks {
		r.bar(bw, task, true, true)
		fmt.Fprintf(bw, `<text class="label" x="%s" y="%s" dominant-baseline="middle">%s</text>`+"\n",
			num(task.Right()+4), num(task.MidY()), escapeXML(task.Name))
	}

	_, _ = bw.WriteString("</g>\n</svg>\n")
	return flush(bw)
}

// RenderCalendar writes a calendar layout to w. The month title and weekday
// names sit in a band above the weeks.
func (r *Renderer) RenderCalendar(w io.Writer, layout *domain.CalendarLayout) error {
	bw := bufio.NewWriter(w)
	t := r.theme
	cw := layout.CellWidth

	r.open(bw, layout.CanvasWidth, layout.CanvasHeight+t.BandHeight)

	if !layout.Month.IsZero() {
		fmt.Fprintf(bw, `<text class="title" x="4" y="%s" dominant-baseline="middle">%s</text>`+"\n",
			num(t.BandHeight/4), layout.Month.Format("January 2006"))
	}
	if len(layout.Weeks) > 0 {
		for i := range 7 {
			day := domain.AddDays(layout.Weeks[0].Start, i)
			fmt.Fprintf(bw, `<text class="date" x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
				num(float64(i)*cw+cw/2), num(t.BandHeight*3/4), day.Weekday().String()[:3])
		}
	}

	fmt.Fprintf(bw, `<g class="body" transform="translate(0,%s)">`+"\n", num(t.BandHeight))
	for _, week := range layout.Weeks {
		for i := range 7 {
			day := domain.AddDays(week.Start, i)
			class := "date"
			if day.Month() != layout.Month.Month() {
				class = "date outside"
			}
			fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s"/>`+"\n",
				num(float64(i)*cw), num(week.Top), num(cw), num(week.Height), t.Grid)
			fmt.Fprintf(bw, `<text class="%s" x="%s" y="%s" dominant-baseline="middle">%d</text>`+"\n",
				class, num(float64(i)*cw+4), num(week.Top+layout.HeaderHeight/2), day.Day())
		}
		for _, cell := range week.Cells {
			r.bar(bw, cell, cell.Span.RoundsLeft(), cell.Span.RoundsRight())
			if cell.Span.RoundsLeft() || cell.Left == 0 {
				fmt.Fprintf(bw, `<text class="label" x="%s" y="%s" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
					num(cell.Left+4), num(cell.MidY()), t.Background, escapeXML(cell.Name))
			}
		}
	}
	_, _ = bw.WriteString("</g>\n</svg>\n")
	return flush(bw)
}

func (r *Renderer) open(w io.Writer, width, height float64) {
	t := r.theme
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.date { font-family: %s; font-size: %dpx; fill: %s; }
.date.outside { fill: %s; opacity: 0.5; }
.label { font-family: %s; font-size: %dpx; fill: %s; }
.title { font-family: %s; font-size: %dpx; font-weight: bold; fill: %s; }
</style>
</defs>
`, num(width), num(height), num(width), num(height), t.Background,
		t.FontFamily, t.FontSize-2, t.Muted,
		t.Muted,
		t.FontFamily, t.FontSize, t.Text,
		t.FontFamily, t.FontSize+2, t.Text)
}

// bar draws one task rectangle. Open edges are square so multi-cell spans
// read as one continuous bar.
func (r *Renderer) bar(w io.Writer, task domain.PositionedTask, roundLeft, roundRight bool) {
	class := "bar"
	if task.IsSummary {
		class = "bar summary"
	}
	fmt.Fprintf(w, `<path class="%s" data-task="%s" d="%s" fill="%s"/>`+"\n",
		class, escapeXML(task.TaskID), barPath(task.Left, task.Top, task.Width, task.Height, r.theme.Radius, roundLeft, roundRight), task.Color)

	if pct := min(max(task.PercentComplete, 0), 100); pct > 0 && !task.IsSummary {
		fmt.Fprintf(w, `<rect class="progress" x="%s" y="%s" width="%s" height="%s" fill="#000000" fill-opacity="0.2"/>`+"\n",
			num(task.Left), num(task.Top), num(task.Width*pct/100), num(task.Height))
	}
}

// barPath returns an SVG path for a rectangle with optionally rounded sides.
func barPath(x, y, w, h, radius float64, roundLeft, roundRight bool) string {
	rad := min(radius, w/2, h/2)
	rl, rr := 0.0, 0.0
	if roundLeft {
		rl = rad
	}
	if roundRight {
		rr = rad
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", num(x+rl), num(y))
	fmt.Fprintf(&b, " H%s", num(x+w-rr))
	if rr > 0 {
		fmt.Fprintf(&b, " A%s,%s 0 0 1 %s,%s", num(rr), num(rr), num(x+w), num(y+rr))
	}
	fmt.Fprintf(&b, " V%s", num(y+h-rr))
	if rr > 0 {
		fmt.Fprintf(&b, " A%s,%s 0 0 1 %s,%s", num(rr), num(rr), num(x+w-rr), num(y+h))
	}
	fmt.Fprintf(&b, " H%s", num(x+rl))
	if rl > 0 {
		fmt.Fprintf(&b, " A%s,%s 0 0 1 %s,%s", num(rl), num(rl), num(x), num(y+h-rl))
	}
	fmt.Fprintf(&b, " V%s", num(y+rl))
	if rl > 0 {
		fmt.Fprintf(&b, " A%s,%s 0 0 1 %s,%s", num(rl), num(rl), num(x+rl), num(y))
	}
	b.WriteString(" Z")
	return b.String()
}

func points(ps []domain.Point) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

// dayLabel shortens the header text when columns are narrow.
func dayLabel(d time.Time, width float64) string {
	switch {
	case width >= 40:
		return d.Format("Jan 2")
	case d.Day() == 1 || width >= 16:
		return strconv.Itoa(d.Day())
	default:
		return ""
	}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// escapeXML escapes special XML characters for use in text and attributes.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

func flush(bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", string(domain.FormatSVG))
	}
	return nil
}
