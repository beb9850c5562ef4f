// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acemap

import (
	"fmt"
	"sort"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// Sort keys understood by RankedSearch and SortItems.
const (
	SortCitedByCount    = "cited_by_count"
	SortPublicationDate = "publication_date"
)

// SortItems stably sorts items in place by the given key and order.
// Citation counts compare numerically with missing counts as 0. Dates
// compare lexicographically (ISO dates order correctly as strings), with a
// year-only fallback; items lacking any date sort to the tail in either
// direction. An unknown key leaves the slice untouched. Ties keep
// discovery order.
func SortItems(items []types.Item, sortKey, order string) {
	desc := order != OrderAsc

	switch sortKey {
	case SortCitedByCount:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i].CitedByCount(), items[j].CitedByCount()
			if desc {
				return a > b
			}
			return a < b
		})
	case SortPublicationDate:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := dateKey(items[i], desc), dateKey(items[j], desc)
			if desc {
				return a > b
			}
			return a < b
		})
	}
}

// dateKey returns a lexicographically comparable date for an item. The
// sentinel sends dateless items to the extreme that sorts last for the
// requested direction.
func dateKey(it types.Item, desc bool) string {
	if d := it.PublicationDate(); d != "" {
		return d
	}
	if y := it.PublicationYear(); y > 0 {
		return fmt.Sprintf("%04d", y)
	}
	if desc {
		return "0000"
	}
	return "9999"
}
