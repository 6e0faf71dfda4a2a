package sources

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kerbaras/gameshelf/pkg/utils"
)

// OpenAsset resolves path against src and opens it, over HTTP for remote
// targets and from disk otherwise. size is -1 when unknown.
func OpenAsset(ctx context.Context, src Source, path string) (rc io.ReadCloser, size int64, err error) {
	target := src.Resolve(path)
	if isRemote(target) {
		return utils.NewAPI("").OpenSized(ctx, target)
	}

	f, err := os.Open(target)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open asset: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat asset: %w", err)
	}
	return f, info.Size(), nil
}
