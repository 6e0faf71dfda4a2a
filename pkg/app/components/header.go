package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/gameshelf/pkg/app/styles"
)

type Header struct {
	Title        string
	FeedbackOpen bool
	Width        int
}

func NewHeader(title string) *Header {
	return &Header{Title: title, Width: 80}
}

func (h *Header) View() string {
	button := styles.ButtonStyle.Render("[f] Feedback")
	if h.FeedbackOpen {
		button = styles.ActiveButtonStyle.Render("[f] Feedback")
	}

	title := styles.TitleStyle.Render(h.Title)
	gap := h.Width - lipgloss.Width(title) - lipgloss.Width(button)
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return styles.HeaderStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, title, spacer, button))
}
