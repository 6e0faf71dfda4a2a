package utils

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHTTPMock(t *testing.T) {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

func TestAPI_URL(t *testing.T) {
	api := NewAPI("https://games.example.com")
	assert.Equal(t, "https://games.example.com/games.json", api.URL("/games.json", nil))
	assert.Equal(t, "https://games.example.com/games.json?v=2", api.URL("/games.json", url.Values{"v": {"2"}}))
}

func TestAPI_Open(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder("GET", "https://games.example.com/games.json",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "application/json", req.Header.Get("Accept"))
			return httpmock.NewStringResponse(http.StatusOK, `[{"name":"Tetra"}]`), nil
		})

	api := NewAPI("https://games.example.com")
	body, err := api.Open(context.Background(), api.URL("/games.json", nil), "application/json")
	require.NoError(t, err)
	defer body.Close()

	content, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Tetra"}]`, string(content))
}

func TestAPI_OpenUnexpectedStatus(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder("GET", "https://games.example.com/games.json",
		httpmock.NewStringResponder(http.StatusNotFound, "not found"))

	_, err := NewAPI("").Open(context.Background(), "https://games.example.com/games.json", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestAPI_WithClientTimeout(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder("GET", "https://games.example.com/games.json",
		func(req *http.Request) (*http.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		})

	api := NewAPI("").WithClient(&http.Client{Timeout: 50 * time.Millisecond})
	start := time.Now()
	_, err := api.Open(context.Background(), "https://games.example.com/games.json", "")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestAPI_OpenSized(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder("GET", "https://cdn.example.com/build.tar.gz",
		httpmock.NewBytesResponder(http.StatusOK, []byte("0123456789")))

	body, _, err := NewAPI("").OpenSized(context.Background(), "https://cdn.example.com/build.tar.gz")
	require.NoError(t, err)
	defer body.Close()

	content, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(content))
}
