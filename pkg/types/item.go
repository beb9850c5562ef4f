// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-scout pipeline:
// the loosely structured records returned by the Acemap API, parsed query
// intent, response envelopes, and stage configuration.
package types

// sourceConceptKey marks a recalled item with the knowledge-graph concept
// that produced it. The leading underscore keeps it out of the upstream
// field namespace.
const sourceConceptKey = "_source_concept"

// Item is a single record returned by the Acemap API: a work, an author,
// or an institution. The upstream schema is large and shifts between
// endpoints, so items stay as loose maps and the few fields the pipeline
// needs are read through defensive accessors with zero-value defaults.
type Item map[string]any

// ID returns the record identifier, or "" when absent.
func (it Item) ID() string { return it.str("id") }

// DisplayName returns the record's display name, or "" when absent.
func (it Item) DisplayName() string { return it.str("display_name") }

// PublicationDate returns the ISO publication date string, or "" when absent.
func (it Item) PublicationDate() string { return it.str("publication_date") }

// PublicationYear returns the publication year, or 0 when absent.
func (it Item) PublicationYear() int { return it.num("publication_year") }

// CitedByCount returns the citation count, treating a missing or
// malformed field as 0.
func (it Item) CitedByCount() int { return it.num("cited_by_count") }

// WorksCount returns the number of works attributed to an author or
// institution record, or 0 when absent.
func (it Item) WorksCount() int { return it.num("works_count") }

// SourceConcept returns the knowledge-graph concept that recalled this
// item, or "" for items found by the original keyword.
func (it Item) SourceConcept() string { return it.str(sourceConceptKey) }

// Clone returns a shallow copy of the item. Top-level keys are copied so
// the clone can be annotated without aliasing the original.
func (it Item) Clone() Item {
	out := make(Item, len(it)+1)
	for k, v := range it {
		out[k] = v
	}
	return out
}

// Tagged returns a copy of the item annotated with the concept that
// recalled it. An item already carrying a source concept is returned
// unchanged: the tag is set exactly once, by the first expansion that
// finds the item.
func (it Item) Tagged(concept string) Item {
	if it.SourceConcept() != "" {
		return it
	}
	out := it.Clone()
	out[sourceConceptKey] = concept
	return out
}

func (it Item) str(key string) string {
	if s, ok := it[key].(string); ok {
		return s
	}
	return ""
}

// num reads an integer field. JSON decoding yields float64, but items
// built in code may carry int, so both are accepted.
func (it Item) num(key string) int {
	switch v := it[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
