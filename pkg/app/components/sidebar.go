package components

import (
	"strings"

	"github.com/kerbaras/gameshelf/pkg/app/styles"
	"github.com/kerbaras/gameshelf/pkg/data"
)

// Sidebar lists one in-page link per catalog entry.
type Sidebar struct {
	Links   []data.Link
	Cursor  int
	Focused bool
	Width   int
}

func NewSidebar() *Sidebar {
	return &Sidebar{Links: []data.Link{}, Width: 22}
}

func (s *Sidebar) SetCatalog(catalog data.Catalog) {
	s.Links = catalog.Anchors()
	if s.Cursor >= len(s.Links) {
		s.Cursor = 0
	}
}

func (s *Sidebar) Next() {
	if len(s.Links) == 0 {
		return
	}
	s.Cursor = (s.Cursor + 1) % len(s.Links)
}

func (s *Sidebar) Prev() {
	if len(s.Links) == 0 {
		return
	}
	s.Cursor = (s.Cursor - 1 + len(s.Links)) % len(s.Links)
}

// Selected returns the link under the cursor.
func (s *Sidebar) Selected() (data.Link, bool) {
	if len(s.Links) == 0 {
		return data.Link{}, false
	}
	return s.Links[s.Cursor], true
}

func (s *Sidebar) View() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Games"))
	b.WriteString("\n")

	for i, link := range s.Links {
		if i == s.Cursor && s.Focused {
			b.WriteString(styles.SelectedStyle.Render("▸ " + link.Label))
		} else {
			b.WriteString(styles.TextStyle.Render("  " + link.Label))
		}
		b.WriteString("\n")
	}

	return styles.SidebarStyle.Width(s.Width).Render(strings.TrimSuffix(b.String(), "\n"))
}
