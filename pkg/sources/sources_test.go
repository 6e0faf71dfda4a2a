package sources

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kerbaras/gameshelf/pkg/data"
)

const catalogJSON = `[
  {"name": "Tetra", "imgpath": "img/tetra.png", "githubpath": "https://github.com/example/tetra",
   "downloadlinux": "builds/tetra.tar.gz", "downloadwindows": "none"},
  {"name": "Moose Run", "imgpath": "/img/moose.png", "githubpath": "none",
   "downloadlinux": "none", "downloadwindows": "builds/moose.zip", "dev": true}
]`

func setupHTTPMock(t *testing.T) {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDecode(t *testing.T) {
	catalog, err := Decode(strings.NewReader(catalogJSON))
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	assert.Equal(t, "Tetra", catalog[0].Name)
	assert.Equal(t, "img/tetra.png", catalog[0].ImgPath)
	assert.False(t, catalog[0].Dev)
	assert.Equal(t, data.None, catalog[0].DownloadWindows)

	assert.Equal(t, "Moose Run", catalog[1].Name)
	assert.True(t, catalog[1].Dev)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":       `<html>`,
		"object":         `{"name": "Tetra"}`,
		"wrong type":     `[{"name": "Tetra", "dev": "yes"}]`,
		"missing name":   `[{"imgpath": "a.png"}]`,
		"duplicate name": `[{"name": "A"}, {"name": "A"}]`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, data.ErrInvalidCatalog)
		})
	}
}

func TestNewPicksSource(t *testing.T) {
	src, err := New("https://games.example.com/games.json")
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, src)

	src, err = New("games.json")
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	_, err = New("https://")
	assert.Error(t, err)
}

func TestHTTPSource_Fetch(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder("GET", "https://games.example.com/site/games.json",
		httpmock.NewStringResponder(http.StatusOK, catalogJSON))

	src, err := NewHTTPSource("https://games.example.com/site/games.json")
	require.NoError(t, err)

	catalog, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog, 2)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestHTTPSource_FetchStatusError(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder("GET", "https://games.example.com/games.json",
		httpmock.NewStringResponder(http.StatusInternalServerError, "boom"))

	src, err := NewHTTPSource("https://games.example.com/games.json")
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPSource_Resolve(t *testing.T) {
	src, err := NewHTTPSource("https://games.example.com/site/games.json")
	require.NoError(t, err)

	assert.Equal(t, "https://games.example.com/site/img/tetra.png", src.Resolve("img/tetra.png"))
	assert.Equal(t, "https://games.example.com/img/moose.png", src.Resolve("/img/moose.png"))
	assert.Equal(t, "https://github.com/example/tetra", src.Resolve("https://github.com/example/tetra"))
}

func TestFileSource(t *testing.T) {
	path := writeCatalog(t, catalogJSON)
	src := NewFileSource(path)

	catalog, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog, 2)

	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "img", "tetra.png"), src.Resolve("img/tetra.png"))
	assert.Equal(t, filepath.Join(dir, "img", "moose.png"), src.Resolve("/img/moose.png"))
	assert.Equal(t, "https://cdn.example.com/a.zip", src.Resolve("https://cdn.example.com/a.zip"))
}

func TestFileSource_Missing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.json"))
	_, err := src.Fetch(context.Background())
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	catalog := Load(context.Background(), NewFileSource(writeCatalog(t, catalogJSON)), logger)
	assert.Len(t, catalog, 2)
	assert.Equal(t, 1, logs.FilterMessage("catalog loaded").Len())
}

func TestLoadFailureYieldsEmptyCatalog(t *testing.T) {
	tests := map[string]Source{
		"missing file": NewFileSource(filepath.Join(t.TempDir(), "missing.json")),
		"malformed":    NewFileSource(writeCatalog(t, `[{"name":`)),
		"null":         NewFileSource(writeCatalog(t, `null`)),
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			var catalog data.Catalog
			assert.NotPanics(t, func() {
				catalog = Load(context.Background(), src, nil)
			})
			assert.NotNil(t, catalog)
			assert.Empty(t, catalog)
			assert.Empty(t, catalog.Featured())
			assert.Empty(t, catalog.Anchors())
		})
	}
}

func TestLoadNetworkFailure(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterNoResponder(httpmock.ConnectionFailure)

	core, logs := observer.New(zap.WarnLevel)
	src, err := NewHTTPSource("https://games.example.com/games.json")
	require.NoError(t, err)

	catalog := Load(context.Background(), src, zap.New(core))
	assert.Empty(t, catalog)
	assert.Equal(t, 1, logs.FilterMessage("catalog load failed").Len())
}

func TestHTTPSource_FetchTimesOut(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder("GET", "https://games.example.com/games.json",
		func(req *http.Request) (*http.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		})

	saved := FetchTimeout
	FetchTimeout = 50 * time.Millisecond
	t.Cleanup(func() { FetchTimeout = saved })

	src, err := NewHTTPSource("https://games.example.com/games.json")
	require.NoError(t, err)

	catalog := Load(context.Background(), src, nil)
	assert.Empty(t, catalog)
}
