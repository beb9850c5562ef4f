// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/intent"
	"github.com/pdiddy/paper-scout/internal/pipeline"
	"github.com/pdiddy/paper-scout/pkg/types"
)

var recallCmd = &cobra.Command{
	Use:   "recall [query...]",
	Short: "Search works with knowledge-graph recall expansion",
	Long: `Recall searches the work endpoint for the query keyword, looks up
co-occurring concepts in the knowledge graph, searches those too, and
merges everything into one deduplicated list with provenance tags on the
recalled items.

Use --save to write the run to a YAML file and --load to re-render a
previously saved run without touching the API.`,
	RunE: runRecall,
}

func init() {
	recallCmd.Flags().String("order", "desc", "sort order: asc or desc")
	recallCmd.Flags().Bool("json", false, "output results as JSON")
	recallCmd.Flags().String("save", "", "write the run to a YAML file")
	recallCmd.Flags().String("load", "", "re-render a saved run instead of querying")

	rootCmd.AddCommand(recallCmd)
}

func runRecall(cmd *cobra.Command, args []string) error {
	a := newApp(cmd)

	loadPath, _ := cmd.Flags().GetString("load")
	asJSON, _ := cmd.Flags().GetBool("json")

	if loadPath != "" {
		ss, err := pipeline.ReadSavedSearch(loadPath)
		if err != nil {
			return err
		}
		return renderRecallOutput(ss.ToOutput(), asJSON)
	}

	if len(args) == 0 {
		return cmd.Usage()
	}
	query := strings.Join(args, " ")

	it := intent.Parse(query)
	order, _ := cmd.Flags().GetString("order")
	sortKey := it.Sort.APIKey()

	out := a.pipe.Recall(cmd.Context(), it.Keyword, sortKey, order)

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := pipeline.WriteSavedSearch(savePath, out, sortKey, order); err != nil {
			return err
		}
		a.logger.Info().Str("path", savePath).Msg("saved search written")
	}

	return renderRecallOutput(out, asJSON)
}

func renderRecallOutput(out types.RecallOutput, asJSON bool) error {
	if asJSON {
		return writeJSON(out)
	}
	renderRecall(os.Stdout, out)
	return nil
}
