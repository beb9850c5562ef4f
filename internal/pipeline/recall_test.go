// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"reflect"
	"testing"

	"github.com/pdiddy/paper-scout/internal/acemap"
	"github.com/pdiddy/paper-scout/internal/kg"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// rockTriples links "rock" to "plate tectonics" (twice) and "mineral".
func rockTriples() []kg.Triple {
	return []kg.Triple{
		{Subject: "rock", Relation: "relates_to", Object: "plate tectonics", PaperID: "p1"},
		{Subject: "plate tectonics", Relation: "relates_to", Object: "rock", PaperID: "p2"},
		{Subject: "mineral", Relation: "relates_to", Object: "rock", PaperID: "p3"},
	}
}

func TestRecallMergesAndTagsResults(t *testing.T) {
	m := newMockSearcher()
	m.responses["work:rock"] = types.SearchResponse{
		Results: []types.Item{work("W1", 10), work("W2", 5)},
		Meta:    types.Meta{Count: 2},
	}
	// W2 duplicates an original result and must be dropped.
	m.responses["work:plate tectonics"] = types.SearchResponse{
		Results: []types.Item{work("W2", 5), work("W3", 7)},
	}
	m.responses["work:mineral"] = types.SearchResponse{
		Results: []types.Item{work("W4", 1)},
	}

	p := newTestPipeline(m, rockTriples())
	out := p.Recall(context.Background(), "rock", "", "")

	if want := []string{"plate tectonics", "mineral"}; !reflect.DeepEqual(out.RelatedConcepts, want) {
		t.Errorf("RelatedConcepts = %v, want %v", out.RelatedConcepts, want)
	}

	gotIDs := make([]string, len(out.Results))
	for i, it := range out.Results {
		gotIDs[i] = it.ID()
	}
	// Originals first in received order, then unseen recalled items.
	if want := []string{"W1", "W2", "W3", "W4"}; !reflect.DeepEqual(gotIDs, want) {
		t.Errorf("merged ids = %v, want %v", gotIDs, want)
	}
	if out.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", out.TotalCount)
	}

	// Provenance tags only on recalled items.
	byID := make(map[string]types.Item)
	for _, it := range out.Results {
		byID[it.ID()] = it
	}
	if got := byID["W2"].SourceConcept(); got != "" {
		t.Errorf("original item W2 tagged %q", got)
	}
	if got := byID["W3"].SourceConcept(); got != "plate tectonics" {
		t.Errorf("W3 source concept = %q, want plate tectonics", got)
	}
	if got := byID["W4"].SourceConcept(); got != "mineral" {
		t.Errorf("W4 source concept = %q, want mineral", got)
	}
}

func TestRecallNeverDuplicatesIDs(t *testing.T) {
	m := newMockSearcher()
	m.responses["work:rock"] = types.SearchResponse{
		Results: []types.Item{work("W1", 0), work("W1", 0), work("W2", 0)},
	}
	m.responses["work:plate tectonics"] = types.SearchResponse{
		Results: []types.Item{work("W1", 0), work("W2", 0)},
	}
	m.responses["work:mineral"] = types.SearchResponse{
		Results: []types.Item{work("W2", 0)},
	}

	p := newTestPipeline(m, rockTriples())
	out := p.Recall(context.Background(), "rock", "", "")

	seen := make(map[string]bool)
	for _, it := range out.Results {
		if seen[it.ID()] {
			t.Fatalf("duplicate id %q in merged results", it.ID())
		}
		seen[it.ID()] = true
	}
	if len(out.Results) != 2 {
		t.Errorf("len(Results) = %d, want 2", len(out.Results))
	}
}

func TestRecallTaggingDoesNotMutateOriginals(t *testing.T) {
	recalled := work("W9", 3)
	m := newMockSearcher()
	m.responses["work:plate tectonics"] = types.SearchResponse{
		Results: []types.Item{recalled},
	}

	p := newTestPipeline(m, rockTriples())
	out := p.Recall(context.Background(), "rock", "", "")

	if got := recalled.SourceConcept(); got != "" {
		t.Errorf("searcher-owned item mutated: source concept %q", got)
	}
	for _, it := range out.Results {
		if it.ID() == "W9" && it.SourceConcept() != "plate tectonics" {
			t.Errorf("W9 source concept = %q, want plate tectonics", it.SourceConcept())
		}
	}
}

func TestRecallOriginalFailureDegrades(t *testing.T) {
	m := newMockSearcher()
	m.errs["work:rock"] = &acemap.UpstreamError{Endpoint: "work", StatusCode: 502}
	m.responses["work:plate tectonics"] = types.SearchResponse{
		Results: []types.Item{work("W3", 7)},
	}

	p := newTestPipeline(m, rockTriples())
	out := p.Recall(context.Background(), "rock", "", "")

	if len(out.Results) != 1 || out.Results[0].ID() != "W3" {
		t.Errorf("Results = %v, want just the recalled W3", out.Results)
	}
}

func TestRecallConceptFailureSkipped(t *testing.T) {
	m := newMockSearcher()
	m.responses["work:rock"] = types.SearchResponse{
		Results: []types.Item{work("W1", 10)},
	}
	m.errs["work:plate tectonics"] = &acemap.UpstreamError{Endpoint: "work", StatusCode: 500}
	m.responses["work:mineral"] = types.SearchResponse{
		Results: []types.Item{work("W4", 1)},
	}

	p := newTestPipeline(m, rockTriples())
	out := p.Recall(context.Background(), "rock", "", "")

	gotIDs := make([]string, len(out.Results))
	for i, it := range out.Results {
		gotIDs[i] = it.ID()
	}
	if want := []string{"W1", "W4"}; !reflect.DeepEqual(gotIDs, want) {
		t.Errorf("merged ids = %v, want %v", gotIDs, want)
	}
}

func TestRecallWithSortUsesRankerAndReorders(t *testing.T) {
	m := newMockSearcher()
	m.responses["ranked:rock"] = types.SearchResponse{
		Results: []types.Item{work("W1", 50), work("W2", 20)},
	}
	m.responses["work:plate tectonics"] = types.SearchResponse{
		Results: []types.Item{work("W3", 99)},
	}
	m.responses["work:mineral"] = types.SearchResponse{
		Results: []types.Item{work("W4", 35)},
	}

	p := newTestPipeline(m, rockTriples())
	out := p.Recall(context.Background(), "rock", acemap.SortCitedByCount, acemap.OrderDesc)

	if !m.called("ranked:rock") {
		t.Error("sorted recall should route the original search through the ranker")
	}
	if !out.Approximate {
		t.Error("ranked original search should mark the output approximate")
	}

	gotIDs := make([]string, len(out.Results))
	for i, it := range out.Results {
		gotIDs[i] = it.ID()
	}
	if want := []string{"W3", "W1", "W4", "W2"}; !reflect.DeepEqual(gotIDs, want) {
		t.Errorf("sorted ids = %v, want %v", gotIDs, want)
	}
}

func TestRecallBoundedPageSizes(t *testing.T) {
	m := newMockSearcher()
	p := newTestPipeline(m, rockTriples())
	p.Recall(context.Background(), "rock", "", "")

	if got := m.sizes["work:rock"]; got != 5 {
		t.Errorf("original search size = %d, want 5", got)
	}
	for _, concept := range []string{"plate tectonics", "mineral"} {
		if got := m.sizes["work:"+concept]; got != 2 {
			t.Errorf("concept %q search size = %d, want 2", concept, got)
		}
	}
}

func TestRecallEmptyIndex(t *testing.T) {
	m := newMockSearcher()
	m.responses["work:rock"] = types.SearchResponse{
		Results: []types.Item{work("W1", 10)},
	}

	p := newTestPipeline(m, nil)
	out := p.Recall(context.Background(), "rock", "", "")

	if len(out.RelatedConcepts) != 0 {
		t.Errorf("RelatedConcepts = %v, want none", out.RelatedConcepts)
	}
	if len(out.Results) != 1 {
		t.Errorf("len(Results) = %d, want 1", len(out.Results))
	}
}
