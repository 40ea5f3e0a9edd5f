// Package jsondoc writes layouts as indented JSON documents for other tools.
package jsondoc

import (
	"encoding/json"
	"io"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Document is the top-level JSON object. Exactly one of Gantt and Calendar is set.
type Document struct {
	View     domain.View            `json:"view"`
	Gantt    *domain.GanttLayout    `json:"gantt,omitempty"`
	Calendar *domain.CalendarLayout `json:"calendar,omitempty"`
}

// Renderer implements ports.Renderer for JSON output.
type Renderer struct {
	indent string
}

// NewRenderer creates a Renderer indenting nested values by two spaces.
func NewRenderer() *Renderer {
	return &Renderer{indent: "  "}
}

// RenderGantt writes a Gantt layout to w.
func (r *Renderer) RenderGantt(w io.Writer, layout *domain.GanttLayout) error {
	return r.encode(w, Document{View: domain.ViewGantt, Gantt: layout})
}

// RenderCalendar writes a calendar layout to w.
func (r *Renderer) RenderCalendar(w io.Writer, layout *domain.CalendarLayout) error {
	return r.encode(w, Document{View: domain.ViewCalendar, Calendar: layout})
}

func (r *Renderer) encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", r.indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", string(domain.FormatJSON))
	}
	return nil
}
