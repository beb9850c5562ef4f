// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SortIntent is the ordering a user asked for in free text.
type SortIntent string

const (
	SortNone     SortIntent = ""
	SortDate     SortIntent = "date"
	SortCitation SortIntent = "citation"
)

// APIKey maps the intent onto the Acemap sort key the ranker understands.
// SortNone maps to "" (upstream relevance order).
func (s SortIntent) APIKey() string {
	switch s {
	case SortDate:
		return "publication_date"
	case SortCitation:
		return "cited_by_count"
	default:
		return ""
	}
}

// TypeIntent is the record type a user asked for in free text.
type TypeIntent string

const (
	TypeNone        TypeIntent = ""
	TypeAuthor      TypeIntent = "author"
	TypeInstitution TypeIntent = "institution"
)

// Intent is the structured reading of a free-text query: a cleaned topical
// keyword plus any sort or type preference implied by the phrasing.
// Derived fresh per query and never persisted.
type Intent struct {
	// OriginalQuery is the user input, untouched.
	OriginalQuery string `json:"original_query" yaml:"original_query"`

	// Keyword is the cleaned search keyword sent upstream. Non-empty
	// whenever OriginalQuery is non-empty.
	Keyword string `json:"keyword" yaml:"keyword"`

	// Sort is the inferred ordering preference.
	Sort SortIntent `json:"sort,omitempty" yaml:"sort,omitempty"`

	// Type is the inferred record-type preference.
	Type TypeIntent `json:"type,omitempty" yaml:"type,omitempty"`
}
