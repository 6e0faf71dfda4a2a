package sources

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kerbaras/gameshelf/pkg/data"
)

// Decode parses a catalog document and validates its records.
func Decode(r io.Reader) (data.Catalog, error) {
	var catalog data.Catalog
	if err := json.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", data.ErrInvalidCatalog, err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
