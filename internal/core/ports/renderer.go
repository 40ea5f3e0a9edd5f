package ports

import (
	"io"

	"go.trai.ch/scaffold/internal/core/domain"
)

// Renderer writes finished layouts in one output format.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderGantt writes a Gantt layout to w.
	RenderGantt(w io.Writer, layout *domain.GanttLayout) error

	// RenderCalendar writes a calendar layout to w.
	RenderCalendar(w io.Writer, layout *domain.CalendarLayout) error
}
