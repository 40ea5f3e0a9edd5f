package domain

import "go.trai.ch/zerr"

var (
	// ErrScheduleNotFound is returned when the schedule file does not exist.
	ErrScheduleNotFound = zerr.New("schedule file not found")

	// ErrScheduleReadFailed is returned when the schedule file cannot be read.
	ErrScheduleReadFailed = zerr.New("failed to read schedule file")

	// ErrScheduleParseFailed is returned when the schedule file cannot be decoded.
	ErrScheduleParseFailed = zerr.New("failed to parse schedule file")

	// ErrUnsupportedFormat is returned when a schedule file extension or an output format is unknown.
	ErrUnsupportedFormat = zerr.New("unsupported format")

	// ErrInvalidDate is returned when a date field matches none of the accepted layouts.
	ErrInvalidDate = zerr.New("invalid date")

	// ErrMissingTaskID is returned when a task has no identifier.
	ErrMissingTaskID = zerr.New("task is missing an id")

	// ErrDuplicateTaskID is returned when two tasks share the same identifier.
	ErrDuplicateTaskID = zerr.New("duplicate task id")

	// ErrInvalidIndent is returned when a task declares a negative indent level.
	ErrInvalidIndent = zerr.New("indent level must not be negative")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrInvalidSettings is returned when a settings value is out of range.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrInvalidMonth is returned when a month argument is not in YYYY-MM form.
	ErrInvalidMonth = zerr.New("invalid month, expected YYYY-MM")

	// ErrUnsupportedView is returned when a view name is neither gantt nor calendar.
	ErrUnsupportedView = zerr.New("unsupported view")

	// ErrInvalidWeekday is returned when a weekday name cannot be parsed.
	ErrInvalidWeekday = zerr.New("invalid weekday")

	// ErrRenderFailed is returned when a layout cannot be written to its output.
	ErrRenderFailed = zerr.New("failed to render layout")

	// ErrOutputCreateFailed is returned when the output file cannot be created.
	ErrOutputCreateFailed = zerr.New("failed to create output file")

	// ErrStoreCreateFailed is returned when the render info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create render info store directory")

	// ErrStoreReadFailed is returned when the render info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read render info")

	// ErrStoreUnmarshalFailed is returned when the render info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal render info")

	// ErrStoreMarshalFailed is returned when the render info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal render info")

	// ErrStoreWriteFailed is returned when the render info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write render info")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
