// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-scout CLI: a thin
// argument-parsing layer over the search pipeline. Search logic lives in
// internal/; this package wires configuration, the Acemap client, and the
// knowledge-graph index together and renders results as text.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-scout/internal/acemap"
	"github.com/pdiddy/paper-scout/internal/kg"
	"github.com/pdiddy/paper-scout/internal/logging"
	"github.com/pdiddy/paper-scout/internal/pipeline"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paper-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-scout",
	Short: "Recall-augmented academic literature search",
	Long: `paper-scout searches the Acemap bibliographic API for papers, authors, and
institutions from a free-text query. Sort and type preferences are read out
of the phrasing ("most cited rock papers"), recall is expanded through a
knowledge-graph co-occurrence index, and ordered results are re-ranked
client-side because the upstream cannot sort.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-scout.yaml or ~/.config/paper-scout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-scout"))
		}
	}

	viper.SetEnvPrefix("PAPER_SCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// app holds the process-scoped collaborators constructed once per
// invocation: explicit wiring instead of lazily initialized globals.
type app struct {
	cfg    types.PipelineConfig
	logger zerolog.Logger
	client *acemap.Client
	pipe   *pipeline.Pipeline
}

// newApp loads configuration, builds the Acemap client, and loads the
// knowledge-graph index. A missing or unreadable triple source degrades
// to an empty index with a warning; it never aborts the command.
func newApp(cmd *cobra.Command) *app {
	cfg := types.DefaultPipelineConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: invalid config: %v\n", err)
	}

	logger := logging.New(cfg.Logging)
	client := acemap.NewClient(cfg.Acemap)

	index, err := kg.Load(cmd.Context(), cfg.KG.DataPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.KG.DataPath).
			Msg("could not load knowledge graph, recall expansion disabled")
		index = kg.NewIndex(nil)
	}
	index.FallbackFloor = cfg.KG.FallbackFloor
	logger.Debug().Int("triples", index.Len()).Msg("knowledge graph loaded")

	return &app{
		cfg:    cfg,
		logger: logger,
		client: client,
		pipe:   pipeline.New(client, index, logger),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
