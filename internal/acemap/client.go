// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acemap queries the Acemap bibliographic search API. The upstream
// exposes three typed endpoints (work, author, institution) with keyword
// paging but no server-side sort, so ordering by citation count or
// publication date is re-derived client-side over a bounded sample (see
// RankedSearch).
package acemap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/pdiddy/paper-scout/internal/httputil"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// SearchType selects one of the three Acemap endpoints.
type SearchType string

const (
	TypeWork        SearchType = "work"
	TypeAuthor      SearchType = "author"
	TypeInstitution SearchType = "institution"
)

// Sort orders accepted by Search and RankedSearch.
const (
	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// MaxPageSize is the largest page the upstream accepts.
const MaxPageSize = 100

// Client issues single-attempt, rate-limited requests against the Acemap
// API. A failed call surfaces immediately; callers degrade per channel
// rather than retrying.
type Client struct {
	// HTTPClient carries the per-request timeout.
	HTTPClient *http.Client

	// Limiter throttles outbound calls. Nil disables throttling.
	Limiter *rate.Limiter

	// BaseURL is the API base without a trailing slash
	// (e.g. "https://acemap.info/api/v1"). Tests substitute an httptest
	// server here.
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string
}

// NewClient builds a Client from configuration.
func NewClient(cfg types.AcemapConfig) *Client {
	c := &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
	}
	if cfg.RequestsPerSecond > 0 {
		c.Limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c
}

// Search runs one paginated query against a typed endpoint. page starts at
// 1; size must be within [1, MaxPageSize]. order applies only to the work
// endpoint; author and institution results arrive in upstream relevance
// order. No server-side sort parameter is ever sent: the upstream cannot
// sort, and ordered results come from RankedSearch instead.
func (c *Client) Search(ctx context.Context, typ SearchType, keyword string, page, size int, order string) (types.SearchResponse, error) {
	if err := validate(typ, page, size); err != nil {
		return types.SearchResponse{}, err
	}

	params := url.Values{
		"keyword": {keyword},
		"page":    {fmt.Sprintf("%d", page)},
		"size":    {fmt.Sprintf("%d", size)},
	}
	if typ == TypeWork {
		if order == "" {
			order = OrderDesc
		}
		params.Set("order", order)
	}

	reqURL := fmt.Sprintf("%s/%s/search?%s", c.BaseURL, typ, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.SearchResponse{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.Do(ctx, c.HTTPClient, c.Limiter, req)
	if err != nil {
		return types.SearchResponse{}, &UpstreamError{Endpoint: string(typ), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.SearchResponse{}, &UpstreamError{Endpoint: string(typ), StatusCode: resp.StatusCode}
	}

	var sr types.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return types.SearchResponse{}, &DecodeError{Endpoint: string(typ), Err: err}
	}
	return sr, nil
}

func validate(typ SearchType, page, size int) error {
	switch typ {
	case TypeWork, TypeAuthor, TypeInstitution:
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("invalid search type %q: use work, author, or institution", typ)}
	}
	if page < 1 {
		return &ConfigurationError{Reason: fmt.Sprintf("page must be >= 1, got %d", page)}
	}
	if size < 1 || size > MaxPageSize {
		return &ConfigurationError{Reason: fmt.Sprintf("size must be within [1, %d], got %d", MaxPageSize, size)}
	}
	return nil
}
