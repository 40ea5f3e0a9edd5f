// Package config loads task schedules and project settings.
package config

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// dateLayouts are tried in order for every date field.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006",
	"02.01.2006",
}

// ScheduleLoader implements ports.ScheduleLoader for YAML, JSON and CSV files.
type ScheduleLoader struct {
	Logger ports.Logger
}

// NewScheduleLoader creates a new ScheduleLoader with the given logger.
func NewScheduleLoader(logger ports.Logger) *ScheduleLoader {
	return &ScheduleLoader{Logger: logger}
}

// Load reads the schedule at path. The format is chosen by file extension.
func (l *ScheduleLoader) Load(path string) ([]domain.Task, error) {
	// #nosec G304 -- path is supplied by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrScheduleNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScheduleReadFailed.Error()), "path", path)
	}

	var dtos []TaskDTO
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		var schedule Schedule
		if err := yaml.Unmarshal(data, &schedule); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScheduleParseFailed.Error()), "path", path)
		}
		dtos = schedule.Tasks
	case ".json":
		var schedule Schedule
		if err := json.Unmarshal(data, &schedule); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScheduleParseFailed.Error()), "path", path)
		}
		dtos = schedule.Tasks
	case ".csv":
		dtos, err = decodeCSV(bytes.NewReader(data))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScheduleParseFailed.Error()), "path", path)
		}
	default:
		return nil, zerr.With(domain.ErrUnsupportedFormat, "extension", ext)
	}

	tasks, err := toTasks(dtos)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if len(tasks) == 0 {
		l.Logger.Warn(fmt.Sprintf("schedule %s contains no tasks", path))
	}
	return tasks, nil
}

// toTasks validates the entries and converts them in file order.
func toTasks(dtos []TaskDTO) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(dtos))
	seen := make(map[string]bool, len(dtos))
	explicitGroup := make([]bool, 0, len(dtos))

	for i, dto := range dtos {
		id := strings.TrimSpace(dto.ID)
		if id == "" {
			return nil, zerr.With(domain.ErrMissingTaskID, "index", i)
		}
		if seen[id] {
			return nil, zerr.With(domain.ErrDuplicateTaskID, "id", id)
		}
		seen[id] = true

		if dto.Indent < 0 {
			return nil, zerr.With(zerr.With(domain.ErrInvalidIndent, "id", id), "indent", dto.Indent)
		}

		start, err := parseDate(dto.Start)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "id", id), "field", "start")
		}
		end, err := parseDate(dto.End)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "id", id), "field", "end")
		}

		task := domain.Task{
			ID:              id,
			Name:            strings.TrimSpace(dto.Name),
			Start:           start,
			End:             end,
			OrderIndex:      i,
			IndentLevel:     dto.Indent,
			PercentComplete: dto.Progress,
			AssignedTo:      strings.TrimSpace(dto.AssignedTo),
		}
		if task.Name == "" {
			task.Name = id
		}
		if dto.Order != nil {
			task.OrderIndex = *dto.Order
		}
		if dto.Group != nil {
			task.IsGroup = *dto.Group
		}
		explicitGroup = append(explicitGroup, dto.Group != nil)
		for _, p := range dto.DependsOn {
			if p.ID == "" {
				continue
			}
			rel := domain.RelationshipType(p.Type)
			if p.Type == 0 {
				rel = domain.FinishToStart
			}
			task.Predecessors = append(task.Predecessors, domain.Predecessor{TaskID: p.ID, Type: rel})
		}

		tasks = append(tasks, task)
	}

	inferGroups(tasks, explicitGroup)
	return tasks, nil
}

// inferGroups marks a task as a group when the next task in document order is
// indented deeper. Document order is OrderIndex, not file order.
func inferGroups(tasks []domain.Task, explicit []bool) {
	order := make([]int, len(tasks))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(tasks[a].OrderIndex, tasks[b].OrderIndex)
	})

	for k, i := range order {
		if explicit[i] {
			continue
		}
		tasks[i].IsGroup = k+1 < len(order) && tasks[order[k+1]].IndentLevel > tasks[i].IndentLevel
	}
}

// parseDate accepts any of dateLayouts. An empty string is the zero time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.DateOf(t), nil
		}
	}
	return time.Time{}, zerr.With(domain.ErrInvalidDate, "value", s)
}
