package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/yourorg/housing-site/catalog"
)

// Client fetches a catalog document published by the listings team.
type Client struct {
	key  string
	url  string
	http *retryablehttp.Client
}

func NewClient(url, apiKey string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 6 * time.Second
	rc.Logger = slog.Default()

	return &Client{
		key:  apiKey,
		url:  url,
		http: rc,
	}
}

// Fetch returns the raw feed payload.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	if c.key != "" {
		req.Header.Set("apikey", c.key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var body map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, fmt.Errorf("catalog feed error %d: %v", resp.StatusCode, body)
	}
	return ioReadAllLimit(resp.Body, 4<<20) // 4MB guard
}

// Catalog fetches and validates the feed.
func (c *Client) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	raw, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	props, err := catalog.DecodeFeed(raw)
	if err != nil {
		return nil, fmt.Errorf("decode catalog feed: %w", err)
	}
	return catalog.New(props)
}

func ioReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}
