package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/gameshelf/pkg/app/styles"
	"github.com/kerbaras/gameshelf/pkg/data"
)

// GameList renders the full catalog and tracks the selected entry.
type GameList struct {
	Items         data.Catalog
	Thumbnails    map[string]string // keyed by imgpath
	SelectedIndex int
	Width         int
	Focused       bool

	offsets []int
}

func NewGameList() *GameList {
	return &GameList{
		Items:         data.Catalog{},
		Thumbnails:    map[string]string{},
		SelectedIndex: 0,
		Width:         80,
		Focused:       true,
	}
}

func (m *GameList) SetItems(items data.Catalog) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *GameList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *GameList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *GameList) Selected() *data.GameRecord {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// JumpTo selects the entry an anchor points at.
func (m *GameList) JumpTo(anchor string) bool {
	i := m.Items.IndexOf(anchor)
	if i < 0 {
		return false
	}
	m.SelectedIndex = i
	return true
}

// Entries renders one card per catalog entry, in order.
func (m *GameList) Entries() []string {
	cards := make([]string, len(m.Items))
	for i, game := range m.Items {
		box := NewGameBox(game, m.Width)
		box.Thumbnail = m.Thumbnails[game.ImgPath]
		if i == m.SelectedIndex && m.Focused {
			box.Style = styles.ActiveCardStyle
		}
		cards[i] = box.View()
	}
	return cards
}

// Offset is the line at which entry i starts in the last View.
func (m *GameList) Offset(i int) int {
	if i < 0 || i >= len(m.offsets) {
		return 0
	}
	return m.offsets[i]
}

func (m *GameList) View() string {
	if len(m.Items) == 0 {
		m.offsets = nil
		return styles.MutedStyle.Render("No games to show")
	}

	cards := m.Entries()
	m.offsets = make([]int, len(cards))
	line := 0
	for i, card := range cards {
		m.offsets[i] = line
		line += lipgloss.Height(card)
	}
	return strings.Join(cards, "\n")
}
