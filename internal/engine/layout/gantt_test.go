package layout_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/engine/layout"
)

func TestGantt_SummaryContainsChildren(t *testing.T) {
	t.Parallel()

	parent := task("P", 0, 0, day(2024, 1, 1), day(2024, 1, 5))
	parent.IsGroup = true
	tasks := []domain.Task{
		parent,
		task("C1", 1, 1, day(2024, 1, 3), day(2024, 1, 10)),
		task("C2", 2, 1, day(2023, 12, 28), day(2024, 1, 4)),
	}

	out := layout.Gantt(tasks, layout.DefaultGanttOptions())
	require.Len(t, out.Tasks, 3)
	got := byID(out.Tasks)

	p := got["P"]
	assert.Equal(t, day(2023, 12, 28), p.Start)
	assert.Equal(t, day(2024, 1, 10), p.End)
	assert.InDelta(t, 0.0, p.Left, 0)
	assert.InDelta(t, 650.0, p.Width, 0)
	assert.True(t, p.IsSummary)
	assert.Equal(t, []string{"C1", "C2"}, p.Children)

	assert.InDelta(t, 300.0, got["C1"].Left, 0)
	assert.InDelta(t, 350.0, got["C1"].Width, 0)
	assert.InDelta(t, 0.0, got["C2"].Left, 0)
	assert.Equal(t, 1, got["C1"].Depth)

	assert.Equal(t, day(2023, 12, 28), out.WindowStart)
	assert.Equal(t, day(2024, 1, 10), out.WindowEnd)
	assert.Len(t, out.Headers, 14)
}

func TestGantt_ZeroDurationHasMinimumWidth(t *testing.T) {
	t.Parallel()

	out := layout.Gantt([]domain.Task{
		task("A", 0, 0, day(2024, 1, 1), day(2024, 1, 1)),
	}, layout.DefaultGanttOptions())

	require.Len(t, out.Tasks, 1)
	assert.InDelta(t, 50.0, out.Tasks[0].Width, 0)
	assert.InDelta(t, 800.0, out.CanvasWidth, 0)
	assert.InDelta(t, 400.0, out.CanvasHeight, 0)
}

func TestGantt_InvertedIntervalIsClamped(t *testing.T) {
	t.Parallel()

	out := layout.Gantt([]domain.Task{
		task("A", 0, 0, day(2024, 1, 5), day(2024, 1, 1)),
	}, layout.DefaultGanttOptions())

	require.Len(t, out.Tasks, 1)
	assert.Equal(t, day(2024, 1, 5), out.Tasks[0].End)
	assert.InDelta(t, 50.0, out.Tasks[0].Width, 0)
	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, domain.DiagnosticInvertedInterval, out.Diagnostics[0].Kind)
}

func TestGantt_UnscheduledTaskTakesNoRow(t *testing.T) {
	t.Parallel()

	tasks := make([]domain.Task, 0, 10)
	for i := range 10 {
		tk := task(fmt.Sprintf("T%d", i), i, 0, day(2024, 1, 1+i), day(2024, 1, 3+i))
		if i == 4 {
			tk.Start = time.Time{}
		}
		tasks = append(tasks, tk)
	}

	opts := layout.DefaultGanttOptions()
	out := layout.Gantt(tasks, opts)

	require.Len(t, out.Tasks, 9)
	for row, pt := range out.Tasks {
		assert.Equal(t, row, pt.Index)
		assert.InDelta(t, float64(row)*opts.RowHeight+(opts.RowHeight-opts.BarHeight)/2, pt.Top, 0)
		assert.NotEqual(t, "T4", pt.TaskID)
	}
	assert.InDelta(t, opts.MinCanvasHeight, out.CanvasHeight, 0)
	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, domain.Diagnostic{Kind: domain.DiagnosticUnscheduled, TaskID: "T4"}, out.Diagnostics[0])
}

func TestGantt_UnscheduledParentTakesNoRow(t *testing.T) {
	t.Parallel()

	tasks := []domain.Task{{ID: "T0", Name: "Phase", OrderIndex: 0, IsGroup: true}}
	for i := 1; i < 10; i++ {
		tasks = append(tasks, task(fmt.Sprintf("T%d", i), i, 1, day(2024, 1, i), day(2024, 1, i+2)))
	}

	out := layout.Gantt(tasks, layout.DefaultGanttOptions())

	require.Len(t, out.Tasks, 9)
	assert.Equal(t, "T1", out.Tasks[0].TaskID)
	assert.NotContains(t, byID(out.Tasks), "T0")
	assert.Equal(t, []domain.Diagnostic{{Kind: domain.DiagnosticUnscheduled, TaskID: "T0"}}, out.Diagnostics)
}

func TestGantt_SummaryOfZeroDurationChild(t *testing.T) {
	t.Parallel()

	parent := task("P", 0, 0, day(2024, 1, 1), day(2024, 1, 1))
	parent.IsGroup = true

	out := layout.Gantt([]domain.Task{
		parent,
		task("C", 1, 1, day(2024, 1, 3), day(2024, 1, 3)),
	}, layout.DefaultGanttOptions())

	got := byID(out.Tasks)
	p, c := got["P"], got["C"]
	assert.Equal(t, c.Start, p.Start)
	assert.Equal(t, c.End, p.End)
	assert.InDelta(t, c.Left, p.Left, 0)
	assert.InDelta(t, c.Width, p.Width, 0)
	assert.InDelta(t, 50.0, p.Width, 0)
}

func TestGantt_OverlapConnector(t *testing.T) {
	t.Parallel()

	succ := task("S", 1, 0, day(2024, 1, 10), day(2024, 1, 12))
	succ.Predecessors = []domain.Predecessor{{TaskID: "P", Type: domain.FinishToStart}}
	opts := layout.DefaultGanttOptions()
	opts.PixelsPerDay = 20

	out := layout.Gantt([]domain.Task{
		task("P", 0, 0, day(2024, 1, 1), day(2024, 1, 11)),
		succ,
	}, opts)

	require.Len(t, out.Connectors, 1)
	c := out.Connectors[0]
	assert.Equal(t, "P", c.FromTaskID)
	assert.Equal(t, "S", c.ToTaskID)
	assert.Equal(t, []domain.Point{
		{X: 200, Y: 15},
		{X: 210, Y: 15},
		{X: 210, Y: 30},
		{X: 170, Y: 30},
		{X: 170, Y: 45},
		{X: 180, Y: 45},
	}, c.Points)
	assert.Equal(t, domain.Point{X: 180, Y: 45}, c.Arrow[0])
}

func TestGantt_ConnectorEdgeCases(t *testing.T) {
	t.Parallel()

	self := task("A", 0, 0, day(2024, 1, 1), day(2024, 1, 2))
	self.Predecessors = []domain.Predecessor{
		{TaskID: "A", Type: domain.FinishToStart},
		{TaskID: "missing", Type: domain.FinishToStart},
		{TaskID: "B", Type: 2},
	}
	b := task("B", 1, 0, day(2024, 1, 5), day(2024, 1, 6))
	b.Predecessors = []domain.Predecessor{{TaskID: "A", Type: domain.FinishToStart}}
	unscheduled := domain.Task{ID: "U", OrderIndex: 2}
	c := task("C", 3, 0, day(2024, 1, 7), day(2024, 1, 8))
	c.Predecessors = []domain.Predecessor{{TaskID: "U", Type: domain.FinishToStart}}

	out := layout.Gantt([]domain.Task{self, b, unscheduled, c}, layout.DefaultGanttOptions())

	require.Len(t, out.Connectors, 3)
	assert.Equal(t, [2]string{"A", "A"}, [2]string{out.Connectors[0].FromTaskID, out.Connectors[0].ToTaskID})
	assert.Equal(t, [2]string{"B", "A"}, [2]string{out.Connectors[1].FromTaskID, out.Connectors[1].ToTaskID})
	assert.Equal(t, domain.RelationshipType(2), out.Connectors[1].Type)
	assert.Equal(t, [2]string{"A", "B"}, [2]string{out.Connectors[2].FromTaskID, out.Connectors[2].ToTaskID})

	var unresolved []string
	for _, diag := range out.Diagnostics {
		if diag.Kind == domain.DiagnosticUnresolvedPredecessor {
			unresolved = append(unresolved, diag.Detail)
		}
	}
	assert.Equal(t, []string{"predecessor missing", "predecessor U"}, unresolved)
}

func TestGantt_Empty(t *testing.T) {
	t.Parallel()

	out := layout.Gantt(nil, layout.DefaultGanttOptions())

	assert.Empty(t, out.Tasks)
	assert.Empty(t, out.Connectors)
	assert.Empty(t, out.Headers)
	assert.Empty(t, out.Diagnostics)
	assert.InDelta(t, 800.0, out.CanvasWidth, 0)
	assert.InDelta(t, 400.0, out.CanvasHeight, 0)
}

func TestGantt_ExplicitWindow(t *testing.T) {
	t.Parallel()

	opts := layout.DefaultGanttOptions()
	opts.WindowStart = day(2024, 1, 3)
	opts.WindowEnd = day(2024, 1, 31)

	out := layout.Gantt([]domain.Task{
		task("A", 0, 0, day(2024, 1, 1), day(2024, 1, 5)),
		task("B", 1, 0, day(2024, 1, 10), day(2024, 1, 12)),
	}, opts)

	got := byID(out.Tasks)
	assert.InDelta(t, 0.0, got["A"].Left, 0)
	assert.InDelta(t, 350.0, got["B"].Left, 0)
	require.Len(t, out.Headers, 29)
	assert.Equal(t, day(2024, 1, 3), out.Headers[0].Date)
	assert.False(t, out.Headers[0].IsAlternateShade)
	assert.True(t, out.Headers[1].IsAlternateShade)
	assert.InDelta(t, 50.0, out.Headers[1].ColumnLeft, 0)
	assert.InDelta(t, 29*50.0, out.CanvasWidth, 0)
}

func TestGantt_Deterministic(t *testing.T) {
	t.Parallel()

	b := task("B", 1, 1, day(2024, 2, 1), day(2024, 2, 4))
	b.Predecessors = []domain.Predecessor{{TaskID: "C", Type: domain.FinishToStart}}
	tasks := []domain.Task{
		task("A", 0, 0, day(2024, 2, 1), day(2024, 2, 2)),
		b,
		task("C", 2, 1, day(2024, 2, 3), day(2024, 2, 9)),
	}

	first := layout.Gantt(tasks, layout.DefaultGanttOptions())
	second := layout.Gantt(tasks, layout.DefaultGanttOptions())
	assert.Equal(t, first, second)
}
