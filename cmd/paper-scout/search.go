// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/acemap"
	"github.com/pdiddy/paper-scout/internal/intent"
	"github.com/pdiddy/paper-scout/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search Acemap for papers, authors, and institutions",
	Long: `Search runs an aggregate query across the work, author, and institution
endpoints. Sort and type preferences are inferred from the query phrasing:
"most cited rock papers" sorts works by citation count, "rock researchers"
narrows to authors. A failing endpoint is reported without hiding the
others' results.

With --type, only the named endpoint is queried and --page/--size select
the result window.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("type", "", "restrict to one endpoint: work, author, or institution")
	searchCmd.Flags().Int("page", 1, "result page (single-type search)")
	searchCmd.Flags().Int("size", 10, "results per page (single-type search)")
	searchCmd.Flags().String("order", acemap.OrderDesc, "sort order: asc or desc")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a := newApp(cmd)
	query := strings.Join(args, " ")

	it := intent.Parse(query)
	a.logger.Debug().Str("keyword", it.Keyword).
		Str("sort", string(it.Sort)).Str("type", string(it.Type)).
		Msg("parsed query intent")

	order, _ := cmd.Flags().GetString("order")
	asJSON, _ := cmd.Flags().GetBool("json")
	sortKey := it.Sort.APIKey()

	// An explicit --type wins over phrasing.
	typ, _ := cmd.Flags().GetString("type")
	if typ == "" && it.Type != types.TypeNone {
		typ = string(it.Type)
	}

	if typ != "" {
		return searchOne(cmd, a, acemap.SearchType(typ), it.Keyword, sortKey, order, asJSON)
	}

	out := a.pipe.SearchAll(cmd.Context(), it.Keyword, sortKey, order)
	if asJSON {
		return writeJSON(out)
	}
	renderAggregate(os.Stdout, it.Keyword, out)
	return nil
}

// searchOne queries a single endpoint. Work searches honor the sort
// intent through the client-side ranker; other endpoints have no
// meaningful ordering.
func searchOne(cmd *cobra.Command, a *app, typ acemap.SearchType, keyword, sortKey, order string, asJSON bool) error {
	page, _ := cmd.Flags().GetInt("page")
	size, _ := cmd.Flags().GetInt("size")

	var (
		resp types.SearchResponse
		err  error
	)
	if typ == acemap.TypeWork && sortKey != "" {
		resp, err = a.client.RankedSearch(cmd.Context(), keyword, page, size, sortKey, order)
	} else {
		resp, err = a.client.Search(cmd.Context(), typ, keyword, page, size, order)
	}
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(resp)
	}
	renderResponse(os.Stdout, typ, keyword, resp)
	return nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
