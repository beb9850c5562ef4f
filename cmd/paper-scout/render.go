// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paper-scout/internal/acemap"
	"github.com/pdiddy/paper-scout/pkg/types"
)

const approximateNote = "note: ordering derived client-side from a bounded sample, not a global sort"

// renderAggregate prints the three-channel envelope. A failed channel is
// rendered with its error message so the reader can tell "search failed"
// apart from "zero results".
func renderAggregate(w io.Writer, keyword string, out types.AggregateOutput) {
	fmt.Fprintf(w, "Results for %q\n\n", keyword)

	renderChannel(w, "Works", out.Work, renderWork)
	renderChannel(w, "Authors", out.Author, renderAuthor)
	renderChannel(w, "Institutions", out.Institution, renderInstitution)
}

func renderChannel(w io.Writer, heading string, ch types.ChannelResult, render func(io.Writer, types.Item)) {
	fmt.Fprintf(w, "=== %s", heading)
	if !ch.Failed() && ch.Meta.Count > 0 {
		fmt.Fprintf(w, " (about %d)", ch.Meta.Count)
	}
	fmt.Fprintln(w, " ===")

	switch {
	case ch.Failed():
		fmt.Fprintf(w, "  search failed: %s\n", ch.Error)
	case len(ch.Results) == 0:
		fmt.Fprintln(w, "  (no results)")
	default:
		for _, it := range ch.Results {
			render(w, it)
		}
		if ch.Approximate {
			fmt.Fprintln(w, "  "+approximateNote)
		}
	}
	fmt.Fprintln(w)
}

// renderResponse prints a single-endpoint search result.
func renderResponse(w io.Writer, typ acemap.SearchType, keyword string, resp types.SearchResponse) {
	fmt.Fprintf(w, "Found about %d results for %q (showing %d):\n\n",
		resp.Meta.Count, keyword, len(resp.Results))

	for _, it := range resp.Results {
		switch typ {
		case acemap.TypeAuthor:
			renderAuthor(w, it)
		case acemap.TypeInstitution:
			renderInstitution(w, it)
		default:
			renderWork(w, it)
		}
	}
	if resp.Approximate {
		fmt.Fprintln(w, approximateNote)
	}
}

// renderRecall prints a merged recall run, marking recalled items with
// the concept that produced them.
func renderRecall(w io.Writer, out types.RecallOutput) {
	fmt.Fprintf(w, "Recall results for %q\n", out.Keyword)
	if len(out.RelatedConcepts) > 0 {
		fmt.Fprintf(w, "Related concepts: %s\n", strings.Join(out.RelatedConcepts, ", "))
	}
	fmt.Fprintf(w, "Found %d results\n\n", out.TotalCount)

	for i, it := range out.Results {
		origin := "original search"
		if c := it.SourceConcept(); c != "" {
			origin = "via concept: " + c
		}
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, displayName(it), origin)
	}
	if out.Approximate {
		fmt.Fprintln(w, approximateNote)
	}
}

func renderWork(w io.Writer, it types.Item) {
	fmt.Fprintf(w, "  %s\n", displayName(it))

	year := "unknown year"
	if y := it.PublicationYear(); y > 0 {
		year = fmt.Sprintf("%d", y)
	}
	line := fmt.Sprintf("    %s | cited by %d", year, it.CitedByCount())
	if authors := workAuthors(it); authors != "" {
		line += " | " + authors
	}
	fmt.Fprintln(w, line)
}

func renderAuthor(w io.Writer, it types.Item) {
	fmt.Fprintf(w, "  %s\n", displayName(it))

	affil := strings.Join(authorAffiliations(it), ", ")
	if affil == "" {
		affil = "unknown affiliation"
	}
	fmt.Fprintf(w, "    %s | works: %d", affil, it.WorksCount())
	if h, ok := hIndex(it); ok {
		fmt.Fprintf(w, " | h-index: %d", h)
	}
	fmt.Fprintln(w)
}

func renderInstitution(w io.Writer, it types.Item) {
	fmt.Fprintf(w, "  %s\n", displayName(it))

	var loc []string
	if city := nestedStr(it, "geo", "city"); city != "" {
		loc = append(loc, city)
	}
	if cc, ok := it["country_code"].(string); ok && cc != "" {
		loc = append(loc, cc)
	}
	where := strings.Join(loc, ", ")
	if where == "" {
		where = "unknown location"
	}
	fmt.Fprintf(w, "    %s | works: %d\n", where, it.WorksCount())
}

func displayName(it types.Item) string {
	if n := it.DisplayName(); n != "" {
		return n
	}
	if t, ok := it["title"].(string); ok && t != "" {
		return t
	}
	return "(untitled)"
}

// workAuthors joins up to five author display names from a work's
// authorships list.
func workAuthors(it types.Item) string {
	list, ok := it["authorships"].([]any)
	if !ok {
		return ""
	}

	var names []string
	for _, entry := range list {
		if name := nestedAnyStr(entry, "author", "display_name"); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > 5 {
		names = append(names[:5], "et al.")
	}
	return strings.Join(names, ", ")
}

// authorAffiliations collects institution names from an author's
// affiliations list.
func authorAffiliations(it types.Item) []string {
	list, ok := it["affiliations"].([]any)
	if !ok {
		return nil
	}

	var orgs []string
	for _, entry := range list {
		if name := nestedAnyStr(entry, "institution", "display_name"); name != "" {
			orgs = append(orgs, name)
		}
	}
	return orgs
}

func hIndex(it types.Item) (int, bool) {
	stats, ok := it["summary_stats"].(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := stats["h_index"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// nestedStr reads item[outer][inner] as a string, defaulting to "".
func nestedStr(it types.Item, outer, inner string) string {
	m, ok := it[outer].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m[inner].(string)
	return s
}

// nestedAnyStr reads entry[outer][inner] from a decoded-JSON value.
func nestedAnyStr(entry any, outer, inner string) string {
	m, ok := entry.(map[string]any)
	if !ok {
		return ""
	}
	o, ok := m[outer].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := o[inner].(string)
	return s
}
