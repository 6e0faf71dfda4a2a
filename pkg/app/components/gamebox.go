package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/gameshelf/pkg/app/styles"
	"github.com/kerbaras/gameshelf/pkg/data"
)

// Control is one action button on a game card.
type Control struct {
	Action  data.Action
	Key     string
	Label   string
	Target  string
	Enabled bool
}

var actionKeys = map[data.Action]string{
	data.ActionSource:  "s",
	data.ActionLinux:   "l",
	data.ActionWindows: "w",
}

// Controls lists a game's actions in display order. A control is disabled
// exactly when its field holds the none sentinel.
func Controls(game data.GameRecord) []Control {
	controls := make([]Control, 0, len(data.Actions))
	for _, a := range data.Actions {
		target, enabled := game.Action(a)
		controls = append(controls, Control{
			Action:  a,
			Key:     actionKeys[a],
			Label:   a.Label(),
			Target:  target,
			Enabled: enabled,
		})
	}
	return controls
}

func (c Control) View() string {
	if !c.Enabled {
		return styles.DisabledButtonStyle.Render(c.Label)
	}
	button := styles.ButtonStyle.Render(fmt.Sprintf("[%s] %s", c.Key, c.Label))
	return button + " " + styles.MutedStyle.Render(c.Target)
}

// GameBox renders a single catalog entry.
type GameBox struct {
	Game      data.GameRecord
	Thumbnail string // rendered art; empty until loaded or when disabled
	Style     lipgloss.Style
	Width     int
}

func NewGameBox(game data.GameRecord, width int) *GameBox {
	return &GameBox{Game: game, Style: styles.CardStyle, Width: width}
}

func (b *GameBox) View() string {
	image := b.Thumbnail
	if image == "" {
		image = styles.MutedStyle.Render("🖼  " + b.Game.ImgPath)
	}

	title := styles.TitleStyle.Render(b.Game.Name)
	if b.Game.Dev {
		title = lipgloss.JoinHorizontal(lipgloss.Center, title, " ", styles.DevBadgeStyle.Render("in development"))
	}

	lines := []string{title, ""}
	for _, c := range Controls(b.Game) {
		lines = append(lines, c.View())
	}
	desc := lipgloss.JoinVertical(lipgloss.Left, lines...)

	content := lipgloss.JoinHorizontal(lipgloss.Top, image, "  ", desc)

	style := b.Style
	if b.Width > 4 {
		style = style.Width(b.Width - 4)
	}
	return style.Render(content)
}
