// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/catchupdays/wishlist/filter"
	"github.com/catchupdays/wishlist/models"
	"github.com/catchupdays/wishlist/urlsync"
)

// ListPath is the results endpoint path.
const ListPath = "/api/wishlist"

// Key identifies the content of a set: its sorted tokens. Sets holding the
// same tokens in a different order share a key.
func Key(s filter.Set) string {
	tokens := s.Tokens()
	sort.Strings(tokens)
	return strings.Join(tokens, "\n")
}

// StatusError is returned for a non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("wishlist request failed: %d %s: %s", e.Code, http.StatusText(e.Code), e.Message)
	}
	return fmt.Sprintf("wishlist request failed: %d %s", e.Code, http.StatusText(e.Code))
}

// Client queries the results endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the server at baseURL. A nil hc uses
// http.DefaultClient.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// URL returns the request URL for set.
func (c *Client) URL(s filter.Set) string {
	u := c.baseURL + ListPath
	if q := urlsync.Encode(s); q != "" {
		u += "?" + q
	}
	return u
}

// List fetches the items matching set. It does not retry.
func (c *Client) List(ctx context.Context, s filter.Set) ([]models.WishlistItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(s), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wishlist request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body models.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, &StatusError{Code: resp.StatusCode, Message: body.Message}
	}

	var items []models.WishlistItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode wishlist: %w", err)
	}
	return items, nil
}
