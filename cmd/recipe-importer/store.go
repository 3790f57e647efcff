// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipe-importer/internal/classify"
	"github.com/pdiddy/recipe-importer/internal/lexicon"
	"github.com/pdiddy/recipe-importer/internal/pipeline"
	"github.com/pdiddy/recipe-importer/internal/store"
	"github.com/pdiddy/recipe-importer/pkg/types"
)

const defaultStoreDir = "catalog"

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the local recipe catalog (ingest, search, export)",
	Long: `Store keeps parsed records in a local SQLite catalog keyed by slug, with
full-text search over titles, descriptions, and ingredient names.`,
}

// --- ingest subcommand ---

var storeIngestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Upsert parsed records into the catalog",
	Long: `Ingest reads records written by parse and upserts them by slug. A record
whose slug is already stored replaces the stored one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStoreIngest,
}

func runStoreIngest(cmd *cobra.Command, args []string) error {
	input := viper.GetString("parse.output_path")
	if len(args) > 0 {
		input = args[0]
	}

	recipes, err := pipeline.ReadFile(input)
	if err != nil {
		return err
	}

	s, err := store.NewStore(storeConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.Ingest(cmd.Context(), recipes, cmd.OutOrStdout()); err != nil {
		return err
	}
	n, err := s.Count(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Catalog holds %d recipes (%s)\n", n, s.Dir())
	return nil
}

// --- search subcommand ---

var storeSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog with full-text queries and filters",
	Long: `Search matches the query against titles, descriptions, and ingredient
names. Filter by --category (a name or ID), --folder, or --tag.`,
	RunE: runStoreSearch,
}

func runStoreSearch(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}
	opts := queryOptsFromFlags(cmd, args, tables)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --category, --folder, or --tag")
	}

	s, err := store.NewStore(storeConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No results found.")
		return nil
	}

	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Title,
			tables.CategoryName(r.CategoryID),
			r.SourceFolder,
			strconv.Itoa(r.IngredientCount()),
			strconv.Itoa(len(r.Instructions)),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Title", "Category", "Folder", "Ingredients", "Steps"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	))
	fmt.Fprintf(out, "%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the catalog (or a filtered subset) to export.yaml or
export.json in the store directory. Supports the same filters as search.`,
	RunE: runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	tables, err := loadTables()
	if err != nil {
		return err
	}

	s, err := store.NewStore(storeConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	opts := queryOptsFromFlags(cmd, args, tables)

	var path string
	switch format {
	case "yaml", "":
		path, err = s.ExportYAML(cmd.Context(), opts)
	case "json":
		path, err = s.ExportJSON(cmd.Context(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func storeConfig() types.StoreConfig {
	dir := viper.GetString("store.store_dir")
	if dir == "" {
		dir = defaultStoreDir
	}
	return types.StoreConfig{
		StoreDir:   dir,
		MaxResults: viper.GetInt("store.max_results"),
	}
}

func loadTables() (classify.Tables, error) {
	lex, err := lexicon.Load(viper.GetString("parse.tables_path"))
	if err != nil {
		return classify.Tables{}, err
	}
	return lex.Tables, nil
}

// queryOptsFromFlags builds a query. A --category value may be a display
// name, an alias, or a category ID.
func queryOptsFromFlags(cmd *cobra.Command, args []string, tables classify.Tables) store.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}
	category, _ := cmd.Flags().GetString("category")
	folder, _ := cmd.Flags().GetString("folder")
	tag, _ := cmd.Flags().GetString("tag")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := store.QueryOptions{
		Query:      queryText,
		CategoryID: categoryID(tables, category),
		Folder:     folder,
		MaxResults: limit,
	}
	if tag != "" {
		opts.Tags = []string{tag}
	}
	return opts
}

func categoryID(tables classify.Tables, v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	for _, c := range tables.Categories {
		if strings.EqualFold(c.Name, v) || c.ID == v {
			return c.ID
		}
	}
	if id, ok := tables.Aliases[strings.ToLower(v)]; ok {
		return id
	}
	return v
}

func init() {
	storeCmd.PersistentFlags().String("store-dir", defaultStoreDir, "directory holding recipes.db and exports")
	storeCmd.PersistentFlags().Int("max-results", store.DefaultMaxResults, "maximum number of search results")
	mustBind("store.store_dir", storeCmd.PersistentFlags().Lookup("store-dir"))
	mustBind("store.max_results", storeCmd.PersistentFlags().Lookup("max-results"))

	for _, c := range []*cobra.Command{storeSearchCmd, storeExportCmd} {
		c.Flags().String("query", "", "full-text search query")
		c.Flags().String("category", "", "filter by category name or ID")
		c.Flags().String("folder", "", "filter by source folder")
		c.Flags().String("tag", "", "filter by tag")
	}
	storeSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeSearchCmd.Flags().Bool("json", false, "output results as JSON")
	storeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	storeCmd.AddCommand(storeIngestCmd)
	storeCmd.AddCommand(storeSearchCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
