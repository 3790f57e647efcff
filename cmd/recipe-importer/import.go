// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipe-importer/internal/contentstore"
	"github.com/pdiddy/recipe-importer/internal/pipeline"
	"github.com/pdiddy/recipe-importer/internal/secrets"
	"github.com/pdiddy/recipe-importer/internal/sink"
	"github.com/pdiddy/recipe-importer/pkg/types"
)

const lockFile = ".recipe-importer.lock"

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Push parsed records to the content store",
	Long: `Import reads records written by parse (default parsed_recipes.json), drops
those without a title, slug, or ingredients, and sends the rest to the content
store as createOrReplace mutations in paced batches.

A failed batch is logged and the next batch proceeds. The per-recipe outcome
is written to import_results.json. The write token is read from
.secrets/content-store-token or SANITY_API_WRITE_TOKEN.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	input := viper.GetString("parse.output_path")
	if len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		input = pipeline.DefaultOutputPath
	}

	cfg := contentStoreConfig()
	client, err := contentstore.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("configuring content store: %w", err)
	}

	lock := flock.New(filepath.Join(filepath.Dir(cfg.ResultsPath), lockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring import lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another import is already running (lock %s)", lock.Path())
	}
	defer lock.Unlock()

	recipes, err := pipeline.ReadFile(input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Read %d recipes from %s\n", len(recipes), input)

	res, err := sink.NewBatcher(client, cfg.BatchSize, cfg.BatchDelay).Run(cmd.Context(), recipes, out)
	if res != nil {
		if werr := res.WriteFile(cfg.ResultsPath); werr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", werr)
		}
	}
	if err != nil {
		return err
	}

	if res.HasFailures() {
		var rows [][]string
		for _, f := range res.Failed {
			rows = append(rows, []string{f.Title, f.Error})
		}
		fmt.Fprintln(out, "\nFailed recipes:")
		fmt.Fprintln(out, renderTable([]string{"Title", "Error"}, rows, nil))
		return fmt.Errorf("%d recipe(s) failed to import", len(res.Failed))
	}
	return nil
}

// contentStoreConfig merges flags, config file, environment, and secrets.
func contentStoreConfig() types.ContentStoreConfig {
	cfg := types.ContentStoreConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:    viper.GetDuration("content_store.timeout"),
			UserAgent:  viper.GetString("content_store.user_agent"),
			MaxRetries: viper.GetInt("content_store.max_retries"),
		},
		ProjectID:   viper.GetString("content_store.project_id"),
		Dataset:     viper.GetString("content_store.dataset"),
		APIVersion:  viper.GetString("content_store.api_version"),
		BaseURL:     viper.GetString("content_store.base_url"),
		BatchSize:   viper.GetInt("content_store.batch_size"),
		BatchDelay:  viper.GetDuration("content_store.batch_delay"),
		ResultsPath: viper.GetString("content_store.results_path"),
		Token:       secrets.Resolve(loadedSecrets, secrets.ContentStoreTokenKey, secrets.ContentStoreTokenEnv),
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "recipe-importer/" + version
	}
	if cfg.ResultsPath == "" {
		cfg.ResultsPath = sink.DefaultResultsPath
	}
	return cfg
}

func init() {
	importCmd.Flags().String("project", "", "content store project ID")
	importCmd.Flags().String("dataset", contentstore.DefaultDataset, "content store dataset")
	importCmd.Flags().String("api-version", contentstore.DefaultAPIVersion, "content store API version")
	importCmd.Flags().String("base-url", "", "override the content store API host")
	importCmd.Flags().Int("batch-size", sink.DefaultBatchSize, "records per mutation request")
	importCmd.Flags().Duration("batch-delay", sink.DefaultBatchDelay, "pause between batches")
	importCmd.Flags().String("results", sink.DefaultResultsPath, "file receiving the per-recipe import log")
	importCmd.Flags().Int("max-retries", 5, "retries on HTTP 429")

	mustBind("content_store.project_id", importCmd.Flags().Lookup("project"))
	mustBind("content_store.dataset", importCmd.Flags().Lookup("dataset"))
	mustBind("content_store.api_version", importCmd.Flags().Lookup("api-version"))
	mustBind("content_store.base_url", importCmd.Flags().Lookup("base-url"))
	mustBind("content_store.batch_size", importCmd.Flags().Lookup("batch-size"))
	mustBind("content_store.batch_delay", importCmd.Flags().Lookup("batch-delay"))
	mustBind("content_store.results_path", importCmd.Flags().Lookup("results"))
	mustBind("content_store.max_retries", importCmd.Flags().Lookup("max-retries"))
	viper.SetDefault("content_store.timeout", contentstore.DefaultTimeout)

	rootCmd.AddCommand(importCmd)
}
