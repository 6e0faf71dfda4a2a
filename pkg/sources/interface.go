package sources

import (
	"context"
	"strings"

	"github.com/kerbaras/gameshelf/pkg/data"
)

// Source is where the catalog document lives.
type Source interface {
	// Fetch reads and parses the whole catalog once.
	Fetch(ctx context.Context) (data.Catalog, error)
	// Resolve turns an asset path from a record into something openable.
	Resolve(path string) string
	Location() string
}

// New picks an HTTP source for http(s) locations and a file source otherwise.
func New(location string) (Source, error) {
	if isRemote(location) {
		return NewHTTPSource(location)
	}
	return NewFileSource(location), nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
