package layout

import (
	"context"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
)

// Engine runs layout passes inside tracing spans.
type Engine struct {
	tracer ports.Tracer
}

// NewEngine creates an Engine reporting to tracer.
func NewEngine(tracer ports.Tracer) *Engine {
	return &Engine{tracer: tracer}
}

// Gantt runs a Gantt pass.
func (e *Engine) Gantt(ctx context.Context, tasks []domain.Task, opts GanttOptions) domain.GanttLayout {
	_, span := e.tracer.Start(ctx, "layout.gantt")
	defer span.End()

	out := Gantt(tasks, opts)
	span.SetAttribute("tasks.input", len(tasks))
	span.SetAttribute("tasks.positioned", len(out.Tasks))
	span.SetAttribute("connectors", len(out.Connectors))
	span.SetAttribute("diagnostics", len(out.Diagnostics))
	return out
}

// Calendar runs a calendar pass.
func (e *Engine) Calendar(ctx context.Context, tasks []domain.Task, opts CalendarOptions) domain.CalendarLayout {
	_, span := e.tracer.Start(ctx, "layout.calendar")
	defer span.End()

	out := Calendar(tasks, opts)
	cells := 0
	for _, w := range out.Weeks {
		cells += len(w.Cells)
	}
	span.SetAttribute("tasks.input", len(tasks))
	span.SetAttribute("weeks", len(out.Weeks))
	span.SetAttribute("cells", cells)
	span.SetAttribute("diagnostics", len(out.Diagnostics))
	return out
}
