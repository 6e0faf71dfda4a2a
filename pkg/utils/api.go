package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrUnexpectedStatus is returned for any non-200 response.
var ErrUnexpectedStatus = errors.New("unexpected status")

type API struct {
	client  *http.Client
	baseURL string
}

func NewAPI(baseURL string) *API {
	return &API{client: http.DefaultClient, baseURL: baseURL}
}

// WithClient swaps the HTTP client used for every request.
func (a *API) WithClient(client *http.Client) *API {
	a.client = client
	return a
}

// URL joins path and params onto the base URL.
func (a *API) URL(path string, params url.Values) string {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return fmt.Sprintf("%s%s", a.baseURL, path)
}

// Open issues a GET for an absolute URL and returns the body of a 200 response.
// The caller closes it.
func (a *API) Open(ctx context.Context, rawURL, accept string) (io.ReadCloser, error) {
	resp, err := a.do(ctx, rawURL, accept)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// OpenSized is Open plus the advertised content length (-1 when unknown).
func (a *API) OpenSized(ctx context.Context, rawURL string) (io.ReadCloser, int64, error) {
	resp, err := a.do(ctx, rawURL, "")
	if err != nil {
		return nil, 0, err
	}
	return resp.Body, resp.ContentLength, nil
}

func (a *API) do(ctx context.Context, rawURL, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	return resp, nil
}
