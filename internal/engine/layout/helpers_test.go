package layout_test

import (
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func task(id string, order, indent int, start, end time.Time) domain.Task {
	return domain.Task{
		ID:          id,
		Name:        "Task " + id,
		Start:       start,
		End:         end,
		OrderIndex:  order,
		IndentLevel: indent,
	}
}

func byID(tasks []domain.PositionedTask) map[string]domain.PositionedTask {
	m := make(map[string]domain.PositionedTask, len(tasks))
	for _, t := range tasks {
		m[t.TaskID] = t
	}
	return m
}
