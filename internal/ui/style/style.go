// Package style holds the colours and glyphs shared by the logger, the
// terminal chart and the interactive calendar.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "·"
)

// Bar glyphs for the terminal chart.
const (
	BarDone    = "█"
	BarPending = "░"
	BarSummary = "▬"
	BarEmpty   = " "
)

// Calendar cell caps. An open edge continues into the neighbouring cell.
const (
	CapOpen  = "["
	CapClose = "]"
	CapCont  = "-"
)

// Title renders a bold heading in the brand colour.
var Title = lipgloss.NewStyle().Bold(true).Foreground(Iris)

// Muted renders secondary text such as weekday headers.
var Muted = lipgloss.NewStyle().Foreground(Slate)

// Error renders failure messages.
var Error = lipgloss.NewStyle().Foreground(Red)
