// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-scout/internal/acemap"
	"github.com/pdiddy/paper-scout/internal/kg"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// mockSearcher satisfies Searcher with canned responses keyed by
// "<type>:<keyword>" (plain searches) or "ranked:<keyword>" (ranked
// searches). It records the page sizes it was called with.
type mockSearcher struct {
	mu        sync.Mutex
	responses map[string]types.SearchResponse
	errs      map[string]error
	sizes     map[string]int
	calls     []string
}

func newMockSearcher() *mockSearcher {
	return &mockSearcher{
		responses: make(map[string]types.SearchResponse),
		errs:      make(map[string]error),
		sizes:     make(map[string]int),
	}
}

func (m *mockSearcher) record(key string, size int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, key)
	m.sizes[key] = size
}

func (m *mockSearcher) Search(_ context.Context, typ acemap.SearchType, keyword string, page, size int, order string) (types.SearchResponse, error) {
	key := string(typ) + ":" + keyword
	m.record(key, size)
	if err := m.errs[key]; err != nil {
		return types.SearchResponse{}, err
	}
	return m.responses[key], nil
}

func (m *mockSearcher) RankedSearch(_ context.Context, keyword string, page, size int, sortKey, order string) (types.SearchResponse, error) {
	key := "ranked:" + keyword
	m.record(key, size)
	if err := m.errs[key]; err != nil {
		return types.SearchResponse{}, err
	}
	resp := m.responses[key]
	resp.Approximate = true
	return resp, nil
}

func (m *mockSearcher) called(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.calls {
		if c == key {
			return true
		}
	}
	return false
}

func work(id string, cited int) types.Item {
	return types.Item{"id": id, "cited_by_count": cited}
}

func newTestPipeline(m *mockSearcher, triples []kg.Triple) *Pipeline {
	return New(m, kg.NewIndex(triples), zerolog.Nop())
}
