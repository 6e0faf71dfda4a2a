package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/gameshelf/pkg/data"
)

func listCatalog(names ...string) data.Catalog {
	c := make(data.Catalog, len(names))
	for i, n := range names {
		c[i] = data.GameRecord{Name: n, GithubPath: data.None, DownloadLinux: data.None, DownloadWindows: data.None}
	}
	return c
}

func TestNewGameList(t *testing.T) {
	list := NewGameList()

	if list == nil {
		t.Fatal("Expected list to be created")
	}
	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
	if list.Selected() != nil {
		t.Error("Expected nil selection for an empty list")
	}
}

func TestGameListNavigation(t *testing.T) {
	list := NewGameList()
	list.SetItems(listCatalog("a", "b", "c"))

	list.Next()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected index 1 after Next, got %d", list.SelectedIndex)
	}

	list.Next()
	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected Next to wrap to 0, got %d", list.SelectedIndex)
	}

	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected Prev to wrap to 2, got %d", list.SelectedIndex)
	}

	if got := list.Selected(); got == nil || got.Name != "c" {
		t.Errorf("Expected 'c' selected, got %+v", got)
	}
}

func TestGameListNavigationEmpty(t *testing.T) {
	list := NewGameList()
	list.Next()
	list.Prev()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected index 0, got %d", list.SelectedIndex)
	}
}

func TestGameListSetItemsClampsSelection(t *testing.T) {
	list := NewGameList()
	list.SetItems(listCatalog("a", "b", "c"))
	list.SelectedIndex = 2

	list.SetItems(listCatalog("a"))
	if list.SelectedIndex != 0 {
		t.Errorf("Expected selection clamped to 0, got %d", list.SelectedIndex)
	}
}

func TestGameListJumpTo(t *testing.T) {
	list := NewGameList()
	list.SetItems(listCatalog("a", "b", "c"))

	if !list.JumpTo("#c") {
		t.Fatal("Expected jump to succeed")
	}
	if list.SelectedIndex != 2 {
		t.Errorf("Expected index 2, got %d", list.SelectedIndex)
	}
	if list.JumpTo("#missing") {
		t.Error("Expected jump to a missing anchor to fail")
	}
	if list.SelectedIndex != 2 {
		t.Error("Expected a failed jump to keep the selection")
	}
}

func TestGameListViewEmpty(t *testing.T) {
	list := NewGameList()
	view := list.View()

	if !strings.Contains(view, "No games to show") {
		t.Error("Expected empty placeholder")
	}
	if len(list.Entries()) != 0 {
		t.Error("Expected zero entries")
	}
}

func TestGameListViewOrderAndOffsets(t *testing.T) {
	list := NewGameList()
	list.SetItems(listCatalog("first", "second", "third"))

	view := list.View()
	first := strings.Index(view, "first")
	second := strings.Index(view, "second")
	third := strings.Index(view, "third")
	if first < 0 || first > second || second > third {
		t.Error("Expected entries rendered in catalog order")
	}

	if list.Offset(0) != 0 {
		t.Errorf("Expected first offset 0, got %d", list.Offset(0))
	}
	card := list.Entries()[0]
	if list.Offset(1) != lipgloss.Height(card) {
		t.Errorf("Expected second offset %d, got %d", lipgloss.Height(card), list.Offset(1))
	}
	if list.Offset(2) <= list.Offset(1) {
		t.Error("Expected offsets to increase")
	}
	if list.Offset(7) != 0 {
		t.Error("Expected 0 for an out of range offset")
	}
}

func TestGameListUsesThumbnails(t *testing.T) {
	list := NewGameList()
	items := listCatalog("a")
	items[0].ImgPath = "a.png"
	list.SetItems(items)
	list.Thumbnails["a.png"] = "ART"

	if !strings.Contains(list.View(), "ART") {
		t.Error("Expected thumbnail in view")
	}
}
