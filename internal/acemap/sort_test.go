// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acemap

import (
	"reflect"
	"testing"

	"github.com/pdiddy/paper-scout/pkg/types"
)

func ids(items []types.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID()
	}
	return out
}

func TestSortItemsByCitation(t *testing.T) {
	items := []types.Item{
		{"id": "a", "cited_by_count": 5},
		{"id": "b"}, // missing count treated as 0
		{"id": "c", "cited_by_count": 12},
	}

	SortItems(items, SortCitedByCount, OrderDesc)
	if got, want := ids(items), []string{"c", "a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("desc order = %v, want %v", got, want)
	}

	SortItems(items, SortCitedByCount, OrderAsc)
	if got, want := ids(items), []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("asc order = %v, want %v", got, want)
	}
}

func TestSortItemsCitationTiesKeepDiscoveryOrder(t *testing.T) {
	items := []types.Item{
		{"id": "first", "cited_by_count": 3},
		{"id": "second", "cited_by_count": 3},
		{"id": "third", "cited_by_count": 3},
	}

	SortItems(items, SortCitedByCount, OrderDesc)
	if got, want := ids(items), []string{"first", "second", "third"}; !reflect.DeepEqual(got, want) {
		t.Errorf("tied order = %v, want discovery order %v", got, want)
	}
}

func TestSortItemsByDate(t *testing.T) {
	items := []types.Item{
		{"id": "mid", "publication_date": "2019-05-01"},
		{"id": "none"},
		{"id": "new", "publication_date": "2023-11-30"},
		{"id": "old", "publication_date": "2001-01-15"},
	}

	SortItems(items, SortPublicationDate, OrderAsc)
	if got, want := ids(items), []string{"old", "mid", "new", "none"}; !reflect.DeepEqual(got, want) {
		t.Errorf("asc order = %v, want %v (dateless at tail)", got, want)
	}

	SortItems(items, SortPublicationDate, OrderDesc)
	if got, want := ids(items), []string{"new", "mid", "old", "none"}; !reflect.DeepEqual(got, want) {
		t.Errorf("desc order = %v, want %v (dateless at tail)", got, want)
	}
}

func TestSortItemsDateFallsBackToYear(t *testing.T) {
	items := []types.Item{
		{"id": "dated", "publication_date": "2010-06-01"},
		{"id": "year-only", "publication_year": 2021},
	}

	SortItems(items, SortPublicationDate, OrderDesc)
	if got, want := ids(items), []string{"year-only", "dated"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSortItemsUnknownKeyLeavesOrder(t *testing.T) {
	items := []types.Item{
		{"id": "b", "cited_by_count": 1},
		{"id": "a", "cited_by_count": 2},
	}

	SortItems(items, "relevance", OrderDesc)
	if got, want := ids(items), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want untouched %v", got, want)
	}
}
