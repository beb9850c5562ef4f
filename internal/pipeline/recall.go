// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"sync"

	"github.com/pdiddy/paper-scout/internal/acemap"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// Recall runs the recall-augmented work search: the original keyword,
// plus up to three neighbor concepts from the knowledge graph, merged and
// deduplicated with original-keyword results taking precedence. Recalled
// items are tagged with the concept that produced them.
//
// Recall never fails: a failed original search degrades to an empty list
// and failed concept searches are logged and skipped. The result is a
// bounded best-effort recall set, not an exhaustive corpus scan.
func (p *Pipeline) Recall(ctx context.Context, keyword, sortKey, order string) types.RecallOutput {
	out := types.RecallOutput{Keyword: keyword}

	original, err := p.searchWorks(ctx, keyword, workPageSize, sortKey, order)
	if err != nil {
		p.logger.Warn().Err(err).Str("keyword", keyword).
			Msg("original keyword search failed, continuing with recall only")
		original = types.SearchResponse{}
	}
	out.Approximate = original.Approximate

	concepts := p.index.Neighbors(keyword, maxConcepts)
	out.RelatedConcepts = concepts

	// Neighbor searches are independent; fan out and reassemble in
	// concept order so the merge stays deterministic.
	expanded := make([][]types.Item, len(concepts))
	var wg sync.WaitGroup
	for i, concept := range concepts {
		wg.Add(1)
		go func(i int, concept string) {
			defer wg.Done()
			resp, err := p.searcher.Search(ctx, acemap.TypeWork, concept, 1, conceptPageSize, order)
			if err != nil {
				p.logger.Warn().Err(err).Str("concept", concept).
					Msg("neighbor concept search failed, skipping")
				return
			}
			tagged := make([]types.Item, 0, len(resp.Results))
			for _, it := range resp.Results {
				tagged = append(tagged, it.Tagged(concept))
			}
			expanded[i] = tagged
		}(i, concept)
	}
	wg.Wait()

	merged := mergeByID(original.Results, expanded)
	if sortKey != "" {
		acemap.SortItems(merged, sortKey, order)
	}

	out.Results = merged
	out.TotalCount = len(merged)
	return out
}

// mergeByID concatenates original-keyword items and recalled items,
// dropping any item whose ID was already seen. First seen wins, and
// originals are seen first. Items without an ID are kept but never used
// as dedup keys.
func mergeByID(original []types.Item, expanded [][]types.Item) []types.Item {
	seen := make(map[string]bool)
	merged := make([]types.Item, 0, len(original))

	appendUnseen := func(items []types.Item) {
		for _, it := range items {
			id := it.ID()
			if id != "" {
				if seen[id] {
					continue
				}
				seen[id] = true
			}
			merged = append(merged, it)
		}
	}

	appendUnseen(original)
	for _, items := range expanded {
		appendUnseen(items)
	}
	return merged
}
