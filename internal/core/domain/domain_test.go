package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaffold/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*60*60)
	got := domain.DateOf(time.Date(2024, time.March, 5, 23, 30, 0, 0, loc))
	assert.Equal(t, date(2024, time.March, 5), got)
	assert.True(t, domain.DateOf(time.Time{}).IsZero())
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, domain.DaysBetween(date(2024, 1, 1), date(2024, 1, 1)))
	assert.Equal(t, 13, domain.DaysBetween(date(2023, 12, 28), date(2024, 1, 10)))
	assert.Equal(t, -4, domain.DaysBetween(date(2024, 1, 5), date(2024, 1, 1)))
	// Leap day.
	assert.Equal(t, 2, domain.DaysBetween(date(2024, 2, 28), date(2024, 3, 1)))
	assert.Equal(t, date(2024, 3, 1), domain.AddDays(date(2024, 2, 28), 2))
}

func TestTask_Interval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		task        domain.Task
		wantStart   time.Time
		wantEnd     time.Time
		wantClamped bool
	}{
		{
			name:      "regular range",
			task:      domain.Task{Start: date(2024, 1, 1), End: date(2024, 1, 3)},
			wantStart: date(2024, 1, 1),
			wantEnd:   date(2024, 1, 3),
		},
		{
			name:      "missing end resolves to start",
			task:      domain.Task{Start: date(2024, 1, 1)},
			wantStart: date(2024, 1, 1),
			wantEnd:   date(2024, 1, 1),
		},
		{
			name:        "inverted range is clamped",
			task:        domain.Task{Start: date(2024, 1, 5), End: date(2024, 1, 1)},
			wantStart:   date(2024, 1, 5),
			wantEnd:     date(2024, 1, 5),
			wantClamped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, end, clamped := tt.task.Interval()
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.Equal(t, tt.wantClamped, clamped)
		})
	}
}

func TestTask_Scheduled(t *testing.T) {
	t.Parallel()

	assert.False(t, domain.Task{ID: "a"}.Scheduled())
	assert.True(t, domain.Task{ID: "a", Start: date(2024, 1, 1)}.Scheduled())
}

func TestRelationshipType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FS", domain.FinishToStart.String())
	assert.Equal(t, "type(3)", domain.RelationshipType(3).String())
}

func TestSpanType(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.SpanSingle.RoundsLeft())
	assert.True(t, domain.SpanSingle.RoundsRight())
	assert.True(t, domain.SpanStart.RoundsLeft())
	assert.False(t, domain.SpanStart.RoundsRight())
	assert.False(t, domain.SpanMiddle.RoundsLeft())
	assert.False(t, domain.SpanMiddle.RoundsRight())
	assert.True(t, domain.SpanEnd.RoundsRight())

	data, err := json.Marshal(domain.PositionedTask{TaskID: "a", Span: domain.SpanMiddle})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"spanType":"middle"`)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]domain.Format{
		"":      domain.FormatAuto,
		"auto":  domain.FormatAuto,
		"JSON":  domain.FormatJSON,
		" svg ": domain.FormatSVG,
		"text":  domain.FormatText,
	} {
		got, err := domain.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseFormat("pdf")
	require.ErrorContains(t, err, domain.ErrUnsupportedFormat.Error())
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := domain.DefaultSettings()
	assert.InDelta(t, 50.0, s.Gantt.PixelsPerDay, 0)
	assert.Equal(t, time.Monday, s.Calendar.FirstWeekday)
	assert.Equal(t, domain.FormatAuto, s.Output.Format)
	assert.Empty(t, s.Palette)
}
