// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package kg holds an in-memory knowledge-graph co-occurrence index used
// to expand search recall. Triples are loaded wholesale at startup (from
// SQLite or CSV) and the index is immutable afterwards; reloading means
// constructing a new Index.
package kg

import "strings"

// Triple is one (subject, relation, object) edge with the paper it was
// extracted from.
type Triple struct {
	Subject  string
	Relation string
	Object   string
	PaperID  string
}

// Index answers neighbor-concept lookups over a fixed triple table.
// The zero value is an empty index that returns no neighbors.
type Index struct {
	triples []Triple

	// FallbackFloor is the exact-match count below which Neighbors widens
	// to substring containment. Zero means "same as the requested topK";
	// negative disables widening. The containment fallback trades
	// precision for recall on sparse graphs.
	FallbackFloor int
}

// NewIndex builds an index over the given triples. The slice is not
// copied; callers must not mutate it afterwards.
func NewIndex(triples []Triple) *Index {
	return &Index{triples: triples}
}

// Len returns the number of triples in the index.
func (x *Index) Len() int { return len(x.triples) }

// Neighbors returns up to topK concepts co-occurring with concept, most
// frequent first, ties by first-encountered order. The concept itself is
// never among the neighbors. Matching is case-insensitive: exact equality
// on subject or object first, widened to substring containment when exact
// matches fall below the fallback floor. An empty index returns nil.
func (x *Index) Neighbors(concept string, topK int) []string {
	if x == nil || len(x.triples) == 0 || topK < 1 {
		return nil
	}

	concept = strings.ToLower(strings.TrimSpace(concept))
	if concept == "" {
		return nil
	}

	var candidates []string
	for _, t := range x.triples {
		if strings.ToLower(t.Subject) == concept {
			candidates = append(candidates, t.Object)
		}
		if strings.ToLower(t.Object) == concept {
			candidates = append(candidates, t.Subject)
		}
	}

	floor := x.FallbackFloor
	if floor == 0 {
		floor = topK
	}
	if len(candidates) < floor {
		for _, t := range x.triples {
			if strings.Contains(strings.ToLower(t.Subject), concept) {
				candidates = append(candidates, t.Object)
			}
			if strings.Contains(strings.ToLower(t.Object), concept) {
				candidates = append(candidates, t.Subject)
			}
		}
	}

	return topFrequent(candidates, concept, topK)
}

// topFrequent counts the candidate multiset, drops the query concept, and
// returns the topK most frequent entries. Sorting is by descending count
// with first-encountered order breaking ties.
func topFrequent(candidates []string, exclude string, topK int) []string {
	counts := make(map[string]int, len(candidates))
	var order []string
	for _, c := range candidates {
		if strings.ToLower(c) == exclude {
			continue
		}
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	// Insertion sort into the result keeps the tie order stable without
	// a comparator over first-seen ranks.
	var top []string
	for _, c := range order {
		pos := len(top)
		for pos > 0 && counts[top[pos-1]] < counts[c] {
			pos--
		}
		top = append(top, "")
		copy(top[pos+1:], top[pos:])
		top[pos] = c
	}

	if len(top) > topK {
		top = top[:topK]
	}
	return top
}
