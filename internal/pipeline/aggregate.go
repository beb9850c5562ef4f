// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"sync"

	"github.com/pdiddy/paper-scout/internal/acemap"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// SearchAll runs the work, author, and institution searches concurrently
// and assembles a unified envelope. Each channel succeeds or fails on its
// own: a failed channel carries its error message and an empty result
// list, and never prevents the other two from returning. Assembly waits
// for all three channels to settle.
//
// sortKey applies to the work channel only (via the client-side ranker);
// the author and institution endpoints have no meaningful ordering and
// are returned in upstream relevance order.
func (p *Pipeline) SearchAll(ctx context.Context, keyword, sortKey, order string) types.AggregateOutput {
	var out types.AggregateOutput
	var wg sync.WaitGroup

	run := func(dst *types.ChannelResult, name string, search func() (types.SearchResponse, error)) {
		defer wg.Done()
		resp, err := search()
		if err != nil {
			p.logger.Warn().Err(err).Str("channel", name).Msg("search channel failed")
			*dst = types.ChannelResult{Results: []types.Item{}, Error: err.Error()}
			return
		}
		*dst = types.ChannelResult{
			Results:     resp.Results,
			Meta:        resp.Meta,
			Approximate: resp.Approximate,
		}
	}

	wg.Add(3)
	go run(&out.Work, "work", func() (types.SearchResponse, error) {
		return p.searchWorks(ctx, keyword, workPageSize, sortKey, order)
	})
	go run(&out.Author, "author", func() (types.SearchResponse, error) {
		return p.searcher.Search(ctx, acemap.TypeAuthor, keyword, 1, personPageSize, "")
	})
	go run(&out.Institution, "institution", func() (types.SearchResponse, error) {
		return p.searcher.Search(ctx, acemap.TypeInstitution, keyword, 1, personPageSize, "")
	})
	wg.Wait()

	return out
}
