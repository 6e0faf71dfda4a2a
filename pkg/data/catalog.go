package data

import (
	"errors"
	"fmt"
)

// FeaturedCount is how many trailing entries make up the featured subset.
const FeaturedCount = 2

// ErrInvalidCatalog is returned when a catalog document does not match the record shape.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the ordered list of games. Order is display order.
type Catalog []GameRecord

// Featured returns the trailing FeaturedCount entries in their original order.
// Shorter catalogs yield whatever is available.
func (c Catalog) Featured() Catalog {
	n := FeaturedCount
	if len(c) < n {
		n = len(c)
	}
	out := make(Catalog, n)
	copy(out, c[len(c)-n:])
	return out
}

// Link is a sidebar entry pointing at a game's rendered position.
type Link struct {
	Label  string
	Target string
}

// Anchors returns one link per entry, in catalog order.
func (c Catalog) Anchors() []Link {
	links := make([]Link, len(c))
	for i, g := range c {
		links[i] = Link{Label: g.Name, Target: g.Anchor()}
	}
	return links
}

// IndexOf returns the position of the entry with the given name or anchor, or -1.
func (c Catalog) IndexOf(name string) int {
	for i, g := range c {
		if g.Name == name || g.Anchor() == name {
			return i
		}
	}
	return -1
}

// Find returns the entry with the given name.
func (c Catalog) Find(name string) (GameRecord, bool) {
	i := c.IndexOf(name)
	if i < 0 {
		return GameRecord{}, false
	}
	return c[i], true
}

// Validate checks that every record has a name and that names are unique.
func (c Catalog) Validate() error {
	seen := make(map[string]int, len(c))
	for i, g := range c {
		if g.Name == "" {
			return fmt.Errorf("%w: entry %d has no name", ErrInvalidCatalog, i)
		}
		if prev, ok := seen[g.Name]; ok {
			return fmt.Errorf("%w: entries %d and %d share the name %q", ErrInvalidCatalog, prev, i, g.Name)
		}
		seen[g.Name] = i
	}
	return nil
}
