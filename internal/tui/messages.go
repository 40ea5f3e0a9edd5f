package tui

// MsgLayoutChanged is sent when the schedule was reloaded and the pager should
// redraw with the new layout function.
type MsgLayoutChanged struct {
	Layout LayoutFunc
}

// MsgReloadFailed is sent when reloading the schedule failed. The pager keeps
// showing the last good layout.
type MsgReloadFailed struct {
	Err error
}

// MsgReloadEnded is sent when the reload source is exhausted.
type MsgReloadEnded struct{}
