package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"go.trai.ch/scaffold/internal/ui/style"
)

// chromeHeight is the number of lines around the calendar: title, blank line
// and help footer.
const chromeHeight = 3

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(style.Title.Render(m.month.Format("January 2006")))
	s.WriteString("\n\n")

	if m.ready {
		s.WriteString(m.viewport.View())
	} else {
		s.WriteString(m.content)
	}
	if !strings.HasSuffix(s.String(), "\n") {
		s.WriteString("\n")
	}

	if m.err != nil {
		s.WriteString(style.Error.Render(style.Cross + " " + m.err.Error()))
		s.WriteString("\n")
	}
	s.WriteString(style.Muted.Render(helpLine()))
	return s.String()
}

func helpLine() string {
	parts := make([]string, 0, 4)
	for _, b := range []key.Binding{keys.Prev, keys.Next, keys.Today, keys.Quit} {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, " "+style.Dot+" ")
}
