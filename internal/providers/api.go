package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUpstreamUnavailable marks a failed or malformed upstream fetch. The
// poller skips the whole cycle on it, keeping the cache untouched.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// APIProvider fetches the primary JSON feed.
type APIProvider struct {
	url      string
	timeout  time.Duration
	loadPage func(context.Context, string) ([]byte, error)
}

func NewAPIProvider(url string, timeout time.Duration) *APIProvider {
	return &APIProvider{
		url:      url,
		timeout:  timeout,
		loadPage: loadPage,
	}
}

// Fetch loads and decodes the feed. Any failure is wrapped into
// ErrUpstreamUnavailable.
func (p *APIProvider) Fetch(ctx context.Context) (*Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	body, err := p.loadPage(ctx, p.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	var res Feed
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: decode feed: %w", ErrUpstreamUnavailable, err)
	}
	if len(res.Regions) == 0 {
		return nil, fmt.Errorf("%w: feed has no regions", ErrUpstreamUnavailable)
	}

	return &res, nil
}

func loadPage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get page=%s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get page=%s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get page=%s: status=%s", url, resp.Status)
	}

	var res bytes.Buffer
	if _, err = res.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read page=%s: %w", url, err)
	}

	return res.Bytes(), nil
}
