// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intent parses free-text queries into a cleaned search keyword
// plus inferred sort and type preferences. The upstream API does not
// understand phrasing like "most cited rock papers", so the intent words
// are stripped out and turned into explicit parameters while the topical
// keyword travels on alone.
package intent

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// Intent keyword lists. Matching is case-insensitive; classification is
// first-match-wins with citation checked before date and author before
// institution.
var (
	dateKeywords = []string{
		"recent", "latest", "new", "newest", "current",
		"latest research", "recent papers",
	}
	citationKeywords = []string{
		"popular", "cited", "best", "top", "famous", "impactful",
		"highly cited", "most cited",
	}
	authorKeywords = []string{
		"author", "researcher", "scientist", "who wrote", "written by", "people",
	}
	institutionKeywords = []string{
		"institution", "university", "lab", "laboratory", "center",
		"college", "school",
	}

	// stopPhrases are removed from the keyword before intent words.
	// Removal is a case-insensitive substring delete, applied in order.
	stopPhrases = []string{
		"research on", "papers about", "results for", "show me", "find",
		"search for", "articles on", "documents about", "information on",
		"tell me about", "papers on", "results of", "list of",
	}
)

var punctuation = regexp.MustCompile(`[^\w\s]`)

// Parse extracts structured intent from a free-text query. It is pure and
// deterministic. The returned keyword is never empty for a non-empty
// query: if cleansing strips everything (the whole query was intent
// phrasing), the original query is used as the keyword.
func Parse(query string) types.Intent {
	if query == "" {
		return types.Intent{}
	}

	lower := strings.ToLower(query)
	out := types.Intent{OriginalQuery: query, Keyword: query}

	if containsAny(lower, citationKeywords) {
		out.Sort = types.SortCitation
	} else if containsAny(lower, dateKeywords) {
		out.Sort = types.SortDate
	}

	if containsAny(lower, authorKeywords) {
		out.Type = types.TypeAuthor
	} else if containsAny(lower, institutionKeywords) {
		out.Type = types.TypeInstitution
	}

	clean := query
	for _, phrase := range stopPhrases {
		clean = removeSubstring(clean, phrase)
	}

	// Strip whichever intent lists actually matched, so "cited" or
	// "university" does not pollute the upstream keyword.
	var remove []string
	switch out.Sort {
	case types.SortCitation:
		remove = append(remove, citationKeywords...)
	case types.SortDate:
		remove = append(remove, dateKeywords...)
	}
	switch out.Type {
	case types.TypeAuthor:
		remove = append(remove, authorKeywords...)
	case types.TypeInstitution:
		remove = append(remove, institutionKeywords...)
	}
	// Longest phrases first, so "most cited" goes before "cited" leaves
	// a dangling "most" behind.
	sort.SliceStable(remove, func(i, j int) bool { return len(remove[i]) > len(remove[j]) })
	for _, word := range remove {
		clean = removeWord(clean, word)
	}

	clean = punctuation.ReplaceAllString(clean, " ")
	out.Keyword = strings.Join(strings.Fields(clean), " ")

	if out.Keyword == "" {
		out.Keyword = query
	}
	return out
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// removeSubstring deletes every case-insensitive occurrence of phrase.
func removeSubstring(s, phrase string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
	return re.ReplaceAllString(s, "")
}

// removeWord deletes word-boundary-bounded occurrences of word, which may
// itself contain spaces ("most cited").
func removeWord(s, word string) string {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	return re.ReplaceAllString(s, "")
}
