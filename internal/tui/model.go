package tui

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
)

// LayoutFunc computes the calendar for the month containing month.
type LayoutFunc func(month time.Time) domain.CalendarLayout

type keyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Prev:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "prev")),
	Next:  key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next")),
	Today: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the Bubble Tea model of the month pager.
type Model struct {
	month    time.Time
	today    time.Time
	viewport viewport.Model
	err      error

	layout   LayoutFunc
	renderer ports.Renderer
	content  string
	ready    bool

	ctx    context.Context //nolint:containedctx // Reload commands outlive Update calls
	reload ReloadSource
}

// NewModel creates a pager opened on the month of month. Pages are drawn by renderer.
func NewModel(month, today time.Time, layout LayoutFunc, renderer ports.Renderer) *Model {
	m := &Model{
		month:    firstOfMonth(month),
		today:    firstOfMonth(today),
		viewport: viewport.New(0, 0),
		layout:   layout,
		renderer: renderer,
		ctx:      context.Background(),
	}
	m.refresh()
	return m
}

// WithReload makes the pager redraw whenever src delivers a new layout.
func (m *Model) WithReload(ctx context.Context, src ReloadSource) *Model {
	m.ctx = ctx
	m.reload = src
	return m
}

// Month returns the first day of the displayed month.
func (m *Model) Month() time.Time {
	return m.month
}

// Init starts waiting for reloads when a source is configured.
func (m *Model) Init() tea.Cmd {
	return m.waitForReload()
}

func (m *Model) waitForReload() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	return WaitForReload(m.ctx, m.reload)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case MsgLayoutChanged:
		m.layout = msg.Layout
		m.refresh()
		return m, m.waitForReload()
	case MsgReloadFailed:
		m.err = msg.Err
		return m, m.waitForReload()
	case MsgReloadEnded:
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Prev):
		m.month = m.month.AddDate(0, -1, 0)
	case key.Matches(msg, keys.Next):
		m.month = m.month.AddDate(0, 1, 0)
	case key.Matches(msg, keys.Today):
		m.month = m.today
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	m.refresh()
	return m, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.viewport.Width = msg.Width
	m.viewport.Height = max(msg.Height-chromeHeight, 1)
	m.viewport.SetContent(m.content)
	m.ready = true
	return m, nil
}

// refresh recomputes and redraws the displayed month.
func (m *Model) refresh() {
	layout := m.layout(m.month)

	var buf bytes.Buffer
	m.err = m.renderer.RenderCalendar(&buf, &layout)
	m.content = buf.String()
	m.viewport.SetContent(m.content)
	m.viewport.GotoTop()
}

// Run starts the pager and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
