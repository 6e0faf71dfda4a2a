package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Background = lipgloss.Color("#263238")
	Foreground = lipgloss.Color("#EEFFFF")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Game card
	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1).
			MarginBottom(1)

	ActiveCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Primary).
			Padding(0, 1).
			MarginBottom(1)

	FeaturedCardStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Warning).
				Padding(0, 1).
				MarginBottom(1)

	// Controls
	ButtonStyle = lipgloss.NewStyle().
			Foreground(Background).
			Background(Info).
			Padding(0, 1)

	ActiveButtonStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Bold(true).
				Padding(0, 1)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Strikethrough(true).
				Padding(0, 1)

	DevBadgeStyle = lipgloss.NewStyle().
			Foreground(Background).
			Background(Warning).
			Padding(0, 1)

	// Sidebar
	SidebarStyle = lipgloss.NewStyle().
			Border(RoundedBorder, false, true, false, false).
			BorderForeground(Muted).
			PaddingRight(1).
			MarginRight(1)

	// Header bar
	HeaderStyle = lipgloss.NewStyle().
			Border(RoundedBorder, false, false, true, false).
			BorderForeground(Secondary).
			MarginBottom(1)

	// Feedback panel
	PanelStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Primary).
			Padding(0, 1).
			MarginBottom(1)

	StatusDownloading = lipgloss.NewStyle().
				Foreground(Info).
				Bold(true)

	StatusCompleted = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)
)

func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "downloading":
		return StatusDownloading
	case "complete":
		return StatusCompleted
	case "error":
		return StatusError
	default:
		return MutedStyle
	}
}
