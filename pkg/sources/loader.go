package sources

import (
	"context"

	"go.uber.org/zap"

	"github.com/kerbaras/gameshelf/pkg/data"
)

// Load performs the single catalog fetch of a session. A failed fetch is
// logged and yields an empty catalog; callers never see the error.
func Load(ctx context.Context, src Source, logger *zap.Logger) data.Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog, err := src.Fetch(ctx)
	if err != nil {
		logger.Warn("catalog load failed", zap.String("location", src.Location()), zap.Error(err))
		return data.Catalog{}
	}
	if catalog == nil {
		catalog = data.Catalog{}
	}
	logger.Info("catalog loaded", zap.String("location", src.Location()), zap.Int("games", len(catalog)))
	return catalog
}
