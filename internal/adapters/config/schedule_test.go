package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaffold/internal/adapters/config"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newScheduleLoader(t *testing.T) *config.ScheduleLoader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewScheduleLoader(mockLogger)
}

func TestScheduleLoader_LoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "plan.yaml", `
version: "1"
project: launch
tasks:
  - id: P
    name: Phase 1
  - id: A
    name: Design
    indent: 1
    start: "2024-01-01"
    end: "2024-01-03"
    progress: 50
    assignedTo: ana
  - id: B
    indent: 1
    start: "01/05/2024"
    end: "2024-01-06T00:00:00Z"
    dependsOn:
      - A
      - id: P
        type: 2
`)

	tasks, err := newScheduleLoader(t).Load(path)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	p, a, b := tasks[0], tasks[1], tasks[2]

	assert.Equal(t, "P", p.ID)
	assert.Equal(t, "Phase 1", p.Name)
	assert.True(t, p.IsGroup, "group inferred from the deeper next entry")
	assert.False(t, p.Scheduled())
	assert.Equal(t, 0, p.OrderIndex)

	assert.Equal(t, "Design", a.Name)
	assert.Equal(t, 1, a.IndentLevel)
	assert.Equal(t, date(2024, time.January, 1), a.Start)
	assert.Equal(t, date(2024, time.January, 3), a.End)
	assert.InDelta(t, 50.0, a.PercentComplete, 0.001)
	assert.Equal(t, "ana", a.AssignedTo)
	assert.False(t, a.IsGroup)

	assert.Equal(t, "B", b.Name, "name defaults to id")
	assert.Equal(t, date(2024, time.January, 5), b.Start)
	assert.Equal(t, date(2024, time.January, 6), b.End)
	assert.Equal(t, []domain.Predecessor{
		{TaskID: "A", Type: domain.FinishToStart},
		{TaskID: "P", Type: domain.RelationshipType(2)},
	}, b.Predecessors)
}

func TestScheduleLoader_LoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "plan.json", `{
  "tasks": [
    {"id": "A", "start": "2024-03-01", "end": "2024-03-02", "order": 5},
    {"id": "B", "start": "2024-03-04", "dependsOn": ["A", {"id": "A", "type": 1}], "group": true}
  ]
}`)

	tasks, err := newScheduleLoader(t).Load(path)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, 5, tasks[0].OrderIndex)
	assert.Equal(t, 1, tasks[1].OrderIndex)
	assert.True(t, tasks[1].IsGroup)
	assert.True(t, tasks[1].End.IsZero())
	assert.Len(t, tasks[1].Predecessors, 2)
}

func TestScheduleLoader_InfersGroupsInDocumentOrder(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "plan.yaml", `tasks:
  - id: C
    indent: 1
    order: 2
    start: "2024-01-02"
  - id: P
    order: 0
    start: "2024-01-01"
  - id: Q
    order: 1
    start: "2024-01-01"
`)

	tasks, err := newScheduleLoader(t).Load(path)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	groups := map[string]bool{}
	for _, tk := range tasks {
		groups[tk.ID] = tk.IsGroup
	}
	assert.Equal(t, map[string]bool{"C": false, "P": false, "Q": true}, groups)
}

func TestScheduleLoader_LoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "plan.csv", "ID,Name,Start,End,Indent,Progress,Owner,Predecessors\n"+
		"P,Phase,,,0,,,\n"+
		"A,Design,2024-01-01,2024-01-03,1,25%,ana,\n"+
		"B,Build,2024-01-04,2024-01-08,1,,bo,A;P:1\n")

	tasks, err := newScheduleLoader(t).Load(path)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.True(t, tasks[0].IsGroup)
	assert.InDelta(t, 25.0, tasks[1].PercentComplete, 0.001)
	assert.Equal(t, "ana", tasks[1].AssignedTo)
	assert.Equal(t, date(2024, time.January, 8), tasks[2].End)
	assert.Equal(t, []domain.Predecessor{
		{TaskID: "A", Type: domain.FinishToStart},
		{TaskID: "P", Type: domain.FinishToStart},
	}, tasks[2].Predecessors)
}

func TestScheduleLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name:    "missing id",
			file:    "plan.yaml",
			content: "tasks:\n  - name: nameless\n",
			wantErr: domain.ErrMissingTaskID.Error(),
		},
		{
			name:    "duplicate id",
			file:    "plan.yaml",
			content: "tasks:\n  - id: A\n  - id: A\n",
			wantErr: domain.ErrDuplicateTaskID.Error(),
		},
		{
			name:    "invalid date",
			file:    "plan.yaml",
			content: "tasks:\n  - id: A\n    start: \"next tuesday\"\n",
			wantErr: domain.ErrInvalidDate.Error(),
		},
		{
			name:    "negative indent",
			file:    "plan.yaml",
			content: "tasks:\n  - id: A\n    indent: -1\n",
			wantErr: domain.ErrInvalidIndent.Error(),
		},
		{
			name:    "malformed yaml",
			file:    "plan.yaml",
			content: "tasks: [\n",
			wantErr: domain.ErrScheduleParseFailed.Error(),
		},
		{
			name:    "csv without id column",
			file:    "plan.csv",
			content: "name,start\nx,2024-01-01\n",
			wantErr: domain.ErrScheduleParseFailed.Error(),
		},
		{
			name:    "unsupported extension",
			file:    "plan.toml",
			content: "",
			wantErr: domain.ErrUnsupportedFormat.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createFile(t, t.TempDir(), tt.file, tt.content)
			_, err := newScheduleLoader(t).Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestScheduleLoader_NotFound(t *testing.T) {
	_, err := newScheduleLoader(t).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrScheduleNotFound.Error())
}

func TestScheduleLoader_EmptyWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	path := createFile(t, t.TempDir(), "plan.yaml", "tasks: []\n")
	tasks, err := config.NewScheduleLoader(mockLogger).Load(path)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
