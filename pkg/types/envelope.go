// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Meta carries upstream result metadata.
type Meta struct {
	// Count is the approximate number of matching records upstream.
	Count int `json:"count" yaml:"count"`
}

// SearchResponse is the decoded body of a single Acemap search call, or
// the output of a client-side ranked search.
type SearchResponse struct {
	Results []Item `json:"results" yaml:"results"`
	Meta    Meta   `json:"meta" yaml:"meta"`

	// Approximate is true when the ordering was derived client-side from
	// a bounded sample of the corpus rather than by the upstream service.
	// Rendering layers must surface this: the ordering is best-effort,
	// not a global sort.
	Approximate bool `json:"approximate,omitempty" yaml:"approximate,omitempty"`
}

// RecallOutput is the merged result of an original-keyword search plus
// knowledge-graph neighbor expansion.
type RecallOutput struct {
	// Keyword is the original search keyword.
	Keyword string `json:"keyword" yaml:"keyword"`

	// RelatedConcepts lists the neighbor concepts that were expanded,
	// most frequent first.
	RelatedConcepts []string `json:"related_concepts" yaml:"related_concepts"`

	// Results holds the merged, deduplicated items. Original-keyword
	// items precede recalled items unless a sort was requested.
	Results []Item `json:"results" yaml:"results"`

	// TotalCount is len(Results).
	TotalCount int `json:"total_count" yaml:"total_count"`

	// Approximate mirrors SearchResponse.Approximate for the
	// original-keyword channel.
	Approximate bool `json:"approximate,omitempty" yaml:"approximate,omitempty"`
}

// ChannelResult is one branch of an aggregate search. A failed branch
// carries its error message and an empty result list; it never aborts
// sibling branches.
type ChannelResult struct {
	Results []Item `json:"results" yaml:"results"`
	Meta    Meta   `json:"meta" yaml:"meta"`

	// Error is the captured failure message, empty on success. An empty
	// Error with empty Results means the search genuinely found nothing.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Approximate mirrors SearchResponse.Approximate.
	Approximate bool `json:"approximate,omitempty" yaml:"approximate,omitempty"`
}

// Failed reports whether this channel's search failed.
func (c ChannelResult) Failed() bool { return c.Error != "" }

// AggregateOutput is the unified envelope of a work + author + institution
// search. Each channel succeeds or fails independently.
type AggregateOutput struct {
	Work        ChannelResult `json:"work" yaml:"work"`
	Author      ChannelResult `json:"author" yaml:"author"`
	Institution ChannelResult `json:"institution" yaml:"institution"`
}
