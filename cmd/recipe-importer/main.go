// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the recipe-importer CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipe-importer/internal/classify"
	"github.com/pdiddy/recipe-importer/internal/ingredient"
	"github.com/pdiddy/recipe-importer/internal/lexicon"
	"github.com/pdiddy/recipe-importer/internal/recipe"
	"github.com/pdiddy/recipe-importer/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the recipe-importer CLI.
var rootCmd = &cobra.Command{
	Use:   "recipe-importer",
	Short: "Turn recipe documents into structured records",
	Long: `recipe-importer reads a tree of recipe documents, either frontmatter
files or loose markdown, and turns each into a normalized recipe record with
ingredient groups, numbered steps, and a category.

Records are written to a JSON file by parse, pushed to the content store by
import, or kept in a local searchable catalog by store.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.LoadDotEnv(".env"); err != nil {
			return err
		}
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./recipe-importer.yaml or ~/.config/recipe-importer/recipe-importer.yaml)")
	rootCmd.PersistentFlags().String("tables", "", "YAML file overriding the category, keyword, and unit tables")
	mustBind("parse.tables_path", rootCmd.PersistentFlags().Lookup("tables"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("recipe-importer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "recipe-importer"))
		}
	}

	viper.SetEnvPrefix("RECIPE_IMPORTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// mustBind ties a config key to a flag. The flag wins when set; otherwise
// the config file, then the environment, then the flag default.
func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// newEngine builds the classifier and engine from the configured tables.
func newEngine() (*classify.Classifier, *recipe.Engine, error) {
	lex, err := lexicon.Load(viper.GetString("parse.tables_path"))
	if err != nil {
		return nil, nil, err
	}
	c := classify.New(lex.Tables)
	return c, recipe.NewEngine(c, ingredient.NewParser(lex.Vocabulary)), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
