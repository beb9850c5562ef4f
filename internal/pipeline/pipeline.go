// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates searches against the Acemap client:
// knowledge-graph recall expansion for works, and the three-channel
// aggregate search. Failures are isolated at the smallest unit of work:
// a failed channel or neighbor concept degrades to an empty result and
// never aborts sibling work.
package pipeline

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-scout/internal/acemap"
	"github.com/pdiddy/paper-scout/internal/kg"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// Result-set sizes. Recall keeps neighbor contributions small so expansion
// complements the original keyword instead of drowning it.
const (
	workPageSize    = 5
	personPageSize  = 3
	conceptPageSize = 2
	maxConcepts     = 3
)

// Searcher is the slice of the Acemap client the pipeline needs.
// *acemap.Client satisfies it; tests substitute mocks.
type Searcher interface {
	Search(ctx context.Context, typ acemap.SearchType, keyword string, page, size int, order string) (types.SearchResponse, error)
	RankedSearch(ctx context.Context, keyword string, page, size int, sortKey, order string) (types.SearchResponse, error)
}

// Pipeline holds the process-scoped collaborators: the remote client and
// the knowledge-graph index, both constructed once at startup. The index
// is read-only for the process lifetime.
type Pipeline struct {
	searcher Searcher
	index    *kg.Index
	logger   zerolog.Logger
}

// New builds a pipeline. index may be nil (recall proceeds without
// expansion).
func New(searcher Searcher, index *kg.Index, logger zerolog.Logger) *Pipeline {
	return &Pipeline{searcher: searcher, index: index, logger: logger}
}

// searchWorks routes a work search through the client-side ranker when an
// ordering was requested, since the upstream cannot sort server-side.
func (p *Pipeline) searchWorks(ctx context.Context, keyword string, size int, sortKey, order string) (types.SearchResponse, error) {
	if sortKey != "" {
		return p.searcher.RankedSearch(ctx, keyword, 1, size, sortKey, order)
	}
	return p.searcher.Search(ctx, acemap.TypeWork, keyword, 1, size, order)
}
