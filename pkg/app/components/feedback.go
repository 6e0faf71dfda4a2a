package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/gameshelf/pkg/app/styles"
)

const feedbackCopy = `### Feedback

- Bugs
- Comments
- Suggestions

Thanks for sending feedback!
`

const copyWidth = 40

// SubmitFeedbackMsg carries the buffer at the moment of submission.
type SubmitFeedbackMsg struct {
	Text string
}

// FeedbackPanel is the free-text feedback form. A new panel starts empty.
type FeedbackPanel struct {
	input textarea.Model
	side  string
	width int
	sent  bool
	err   error
}

func NewFeedbackPanel(markdownStyle string, width int) *FeedbackPanel {
	ta := textarea.New()
	ta.Placeholder = "Tell us about bugs, comments or suggestions..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(5)
	ta.Focus()

	p := &FeedbackPanel{input: ta, side: renderMarkdown(feedbackCopy, markdownStyle, copyWidth)}
	p.SetWidth(width)
	return p
}

func (p *FeedbackPanel) SetWidth(width int) {
	p.width = width
	inputWidth := width - copyWidth - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.input.SetWidth(inputWidth)
}

func (p *FeedbackPanel) Value() string {
	return p.input.Value()
}

// MarkSent records the outcome of the last handoff.
func (p *FeedbackPanel) MarkSent(err error) {
	p.sent = err == nil
	p.err = err
}

func (p *FeedbackPanel) Init() tea.Cmd {
	return textarea.Blink
}

func (p *FeedbackPanel) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, Keys.Submit) {
		text := p.input.Value()
		return func() tea.Msg {
			return SubmitFeedbackMsg{Text: text}
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *FeedbackPanel) View() string {
	form := p.input.View()
	switch {
	case p.err != nil:
		form += "\n" + styles.StatusError.Render("Could not open mail client: "+p.err.Error())
	case p.sent:
		form += "\n" + styles.StatusCompleted.Render("Handed to your mail client")
	}
	form += "\n" + styles.MutedStyle.Render("ctrl+s send")

	return styles.PanelStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, p.side, "  ", form))
}

func renderMarkdown(md, style string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
