package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/anilist/pkg/data"
)

var (
	// Color palette
	Primary = lipgloss.Color("#FF6B9D")
	Success = lipgloss.Color("#C3E88D")
	Error   = lipgloss.Color("#F07178")
	Info    = lipgloss.Color("#82AAFF")
	Muted   = lipgloss.Color("#546E7A")
)

var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// Muted/dimmed text, used for hints
	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	// Status styles
	StatusWatching = lipgloss.NewStyle().
		Foreground(Info).
		Bold(true)

	StatusCompleted = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	StatusDropped = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// StatusStyle picks the color for a watch status; unknown statuses are muted.
func StatusStyle(status data.Status) lipgloss.Style {
	switch status {
	case data.StatusWatching:
		return StatusWatching
	case data.StatusCompleted:
		return StatusCompleted
	case data.StatusDropped:
		return StatusDropped
	default:
		return MutedStyle
	}
}
