// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acemap

import (
	"context"
	"fmt"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// Sample bounds for client-side ranking. The floor keeps small first-page
// requests from ranking over a trivial sample; the cap trades ranking
// fidelity for latency and upstream load.
const (
	minRankedSample = 200
	maxRankedSample = 500
)

// RankedSearch approximates a sorted work search on an upstream that
// cannot sort server-side. It accumulates up to maxRankedSample results by
// paging at MaxPageSize, sorts the sample in memory, and slices out the
// requested page window.
//
// The returned response has Approximate set: ordering holds only within
// the retrieved sample, not across the full corpus. Any page failure
// discards the partial sample and propagates the error, since ranking over
// an incomplete sample would silently misrepresent fidelity.
//
// The paging loop is sequential by construction: whether to fetch another
// page depends on whether the previous one came back short.
func (c *Client) RankedSearch(ctx context.Context, keyword string, page, size int, sortKey, order string) (types.SearchResponse, error) {
	if sortKey != SortCitedByCount && sortKey != SortPublicationDate {
		return types.SearchResponse{}, &ConfigurationError{
			Reason: fmt.Sprintf("unsupported sort key %q: use %s or %s", sortKey, SortCitedByCount, SortPublicationDate),
		}
	}
	if err := validate(TypeWork, page, size); err != nil {
		return types.SearchResponse{}, err
	}

	target := page * size
	if target < minRankedSample {
		target = minRankedSample
	}
	if target > maxRankedSample {
		target = maxRankedSample
	}

	var (
		sample []types.Item
		meta   types.Meta
	)
	for upstreamPage := 1; len(sample) < target; upstreamPage++ {
		resp, err := c.Search(ctx, TypeWork, keyword, upstreamPage, MaxPageSize, OrderDesc)
		if err != nil {
			return types.SearchResponse{}, err
		}
		meta = resp.Meta
		if len(resp.Results) == 0 {
			break
		}
		sample = append(sample, resp.Results...)
		if len(resp.Results) < MaxPageSize {
			// Short page: end of the upstream corpus.
			break
		}
	}

	if len(sample) > target {
		sample = sample[:target]
	}

	SortItems(sample, sortKey, order)

	start := (page - 1) * size
	end := start + size
	if start > len(sample) {
		start = len(sample)
	}
	if end > len(sample) {
		end = len(sample)
	}

	return types.SearchResponse{
		Results:     sample[start:end],
		Meta:        meta,
		Approximate: true,
	}, nil
}
