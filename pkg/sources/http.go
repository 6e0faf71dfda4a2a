package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kerbaras/gameshelf/pkg/data"
	"github.com/kerbaras/gameshelf/pkg/utils"
)

// FetchTimeout bounds the catalog request.
var FetchTimeout = 30 * time.Second

// HTTPSource serves the catalog from a static JSON document on a web server.
type HTTPSource struct {
	api      *utils.API
	location *url.URL
}

func NewHTTPSource(location string) (*HTTPSource, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog url %q: %w", location, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid catalog url %q: missing host", location)
	}
	api := utils.NewAPI(u.Scheme + "://" + u.Host).WithClient(&http.Client{Timeout: FetchTimeout})
	return &HTTPSource{api: api, location: u}, nil
}

func (s *HTTPSource) Fetch(ctx context.Context) (data.Catalog, error) {
	body, err := s.api.Open(ctx, s.api.URL(s.location.RequestURI(), nil), "application/json")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer body.Close()
	return Decode(body)
}

// Resolve resolves path against the catalog URL, the way a page resolves its links.
func (s *HTTPSource) Resolve(path string) string {
	ref, err := url.Parse(path)
	if err != nil {
		return path
	}
	return s.location.ResolveReference(ref).String()
}

func (s *HTTPSource) Location() string {
	return s.location.String()
}
