// Package tmdb is a client for The Movie Database HTTP API.
package tmdb

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultBaseURL is the TMDB v3 API endpoint.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Client is an HTTP client for the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Options configure the transport; zero values fall back to defaults.
type Options struct {
	// BaseURL overrides the TMDB endpoint (tests point it at a stub).
	BaseURL string

	// CertFile and CertDir populate the TLS trust store. When both are empty
	// the system root pool is used. Verification is never disabled.
	CertFile string
	CertDir  string
}

// NewClient creates a TMDB client. An error is only returned when a custom
// trust store was requested but could not be built.
func NewClient(apiKey string, opts Options) (*Client, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	transport := &http.Transport{}
	if opts.CertFile != "" || opts.CertDir != "" {
		pool, err := buildCertPool(opts.CertFile, opts.CertDir)
		if err != nil {
			return nil, fmt.Errorf("build cert pool: %w", err)
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool}
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}, nil
}

// SearchMovies queries the movie search endpoint.
func (c *Client) SearchMovies(ctx context.Context, query string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	body, err := c.getJSON(ctx, "/search/movie", params)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &Error{Kind: KindDecode, Err: err}
	}
	return &resp, nil
}

// MovieCredits fetches the cast/crew payload for a movie. The payload is
// returned as-is; callers decide how much of it to surface.
func (c *Client) MovieCredits(ctx context.Context, movieID int) (json.RawMessage, error) {
	if movieID <= 0 {
		return nil, fmt.Errorf("movie id must be positive, got %d", movieID)
	}

	body, err := c.getJSON(ctx, "/movie/"+strconv.Itoa(movieID)+"/credits", url.Values{})
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, &Error{Kind: KindDecode, Err: fmt.Errorf("invalid JSON in credits response")}
	}
	return json.RawMessage(body), nil
}

// getJSON performs an authenticated GET and returns the raw body of a 2xx
// response. Non-2xx statuses and transport failures become *Error values.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("api_key", c.apiKey)
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Message:    statusMessage(body),
		}
	}

	return body, nil
}

// statusMessage pulls TMDB's status_message out of an error body, if present.
func statusMessage(body []byte) string {
	var payload struct {
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.StatusMessage
}

func buildCertPool(certFile, certDir string) (*x509.CertPool, error) {
	pool := x509.NewCertPool()

	if certFile != "" {
		pem, err := os.ReadFile(certFile)
		if err != nil {
			return nil, fmt.Errorf("read cert file: %w", err)
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", certFile)
		}
	}

	if certDir != "" {
		entries, err := os.ReadDir(certDir)
		if err != nil {
			return nil, fmt.Errorf("read cert dir: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			pem, err := os.ReadFile(filepath.Join(certDir, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("read cert %s: %w", entry.Name(), err)
			}
			pool.AppendCertsFromPEM(pem)
		}
	}

	return pool, nil
}
