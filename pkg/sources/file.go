package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerbaras/gameshelf/pkg/data"
)

// FileSource reads the catalog from a JSON document on disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(ctx context.Context) (data.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Resolve maps an asset path onto the catalog's directory. A leading slash
// means the site root, which is that same directory. Remote URLs pass through.
func (s *FileSource) Resolve(path string) string {
	if isRemote(path) {
		return path
	}
	root := filepath.Dir(s.path)
	return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(path, "/")))
}

func (s *FileSource) Location() string {
	return s.path
}
