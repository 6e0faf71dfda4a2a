package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/gameshelf/pkg/app/styles"
	"github.com/kerbaras/gameshelf/pkg/data"
)

// Featured shows the highlighted subset of the catalog.
type Featured struct {
	catalog    data.Catalog
	Thumbnails map[string]string
	Width      int
}

func NewFeatured() *Featured {
	return &Featured{Thumbnails: map[string]string{}, Width: 80}
}

func (f *Featured) SetCatalog(catalog data.Catalog) {
	f.catalog = catalog
}

func (f *Featured) Items() []data.GameRecord {
	return f.catalog.Featured()
}

func (f *Featured) View() string {
	items := f.Items()
	if len(items) == 0 {
		return ""
	}

	cards := []string{styles.SubtitleStyle.Render("Featured")}
	for _, game := range items {
		box := NewGameBox(game, f.Width)
		box.Thumbnail = f.Thumbnails[game.ImgPath]
		box.Style = styles.FeaturedCardStyle
		cards = append(cards, box.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
