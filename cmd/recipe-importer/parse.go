// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipe-importer/internal/loader"
	"github.com/pdiddy/recipe-importer/internal/pipeline"
	"github.com/pdiddy/recipe-importer/pkg/types"
)

const defaultRecipesDir = "knowledgebase/recipes"

var parseCmd = &cobra.Command{
	Use:   "parse [dir]",
	Short: "Parse recipe documents into normalized records",
	Long: `Parse walks a directory of recipe documents, detects whether each one is a
frontmatter file or loose markdown, and writes the normalized records to a
JSON array (or JSON lines with --format jsonl).

Each document gets a status line. Documents without a usable title are
skipped; unreadable files are reported as failed and make the command exit
with an error after the output is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	c, engine, err := newEngine()
	if err != nil {
		return err
	}

	entries, err := loader.Load(cfg.RecipesDir, cfg.Extension)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	recipes, summary, err := pipeline.NewRunner(c, engine, cfg.Workers).Run(cmd.Context(), entries, out)
	if err != nil {
		return err
	}

	if err := pipeline.WriteFile(cfg.OutputPath, recipes, cfg.Format); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d recipes to %s\n", len(recipes), cfg.OutputPath)
	printSummary(out, summary)

	if summary.HasFailures() {
		return fmt.Errorf("%d document(s) failed: %w", summary.Failed, pipeline.ErrFailures)
	}
	return nil
}

// parseConfig merges flags, config file, and environment.
func parseConfig(args []string) (types.ParseConfig, error) {
	format, err := pipeline.ParseFormat(viper.GetString("parse.format"))
	if err != nil {
		return types.ParseConfig{}, err
	}

	cfg := types.ParseConfig{
		RecipesDir: viper.GetString("parse.recipes_dir"),
		Extension:  viper.GetString("parse.extension"),
		OutputPath: viper.GetString("parse.output_path"),
		Format:     format,
		Workers:    viper.GetInt("parse.workers"),
		TablesPath: viper.GetString("parse.tables_path"),
	}
	if len(args) > 0 {
		cfg.RecipesDir = args[0]
	}
	if cfg.RecipesDir == "" {
		cfg.RecipesDir = defaultRecipesDir
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = pipeline.DefaultOutputPath
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

func init() {
	parseCmd.Flags().String("ext", loader.DefaultExtension, "extension of recipe documents")
	parseCmd.Flags().StringP("out", "o", pipeline.DefaultOutputPath, "output file for parsed records")
	parseCmd.Flags().String("format", string(types.OutputJSON), "output format: json or jsonl")
	parseCmd.Flags().IntP("workers", "w", 1, "documents parsed concurrently")

	mustBind("parse.extension", parseCmd.Flags().Lookup("ext"))
	mustBind("parse.output_path", parseCmd.Flags().Lookup("out"))
	mustBind("parse.format", parseCmd.Flags().Lookup("format"))
	mustBind("parse.workers", parseCmd.Flags().Lookup("workers"))
	viper.SetDefault("parse.recipes_dir", defaultRecipesDir)

	rootCmd.AddCommand(parseCmd)
}
