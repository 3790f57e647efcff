// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps a local SQLite catalog of normalized recipes with
// full-text search and YAML/JSON export.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/recipe-importer/pkg/types"
)

const (
	dbFile = "recipes.db"

	// DefaultMaxResults bounds Search when neither the store nor the query
	// sets a limit.
	DefaultMaxResults = 20
)

// Store manages the catalog database. It implements sink.Sink.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	// fts is false when the SQLite build lacks FTS5; Search then falls
	// back to LIKE matching.
	fts bool
	now func() time.Time
}

// NewStore opens or creates dir/recipes.db and its schema.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.StoreDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dbPath := filepath.Join(cfg.StoreDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	s := &Store{
		db:         db,
		dir:        cfg.StoreDir,
		maxResults: maxResults,
		now:        time.Now,
	}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the database and exports.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS recipes (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			slug TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			description TEXT,
			ingredients TEXT,
			category_id TEXT,
			subcategory TEXT,
			source_folder TEXT,
			tags TEXT,
			record TEXT NOT NULL,
			updated_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_folder ON recipes(source_folder)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='recipes_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists > 0 {
		s.fts = true
		return nil
	}

	ftsStatements := []string{
		`CREATE VIRTUAL TABLE recipes_fts USING fts5(title, description, ingredients, content=recipes, content_rowid=rowid)`,
		`CREATE TRIGGER recipes_ai AFTER INSERT ON recipes BEGIN
			INSERT INTO recipes_fts(rowid, title, description, ingredients)
			VALUES (new.rowid, new.title, new.description, new.ingredients);
		END`,
		`CREATE TRIGGER recipes_ad AFTER DELETE ON recipes BEGIN
			INSERT INTO recipes_fts(recipes_fts, rowid, title, description, ingredients)
			VALUES ('delete', old.rowid, old.title, old.description, old.ingredients);
		END`,
		`CREATE TRIGGER recipes_au AFTER UPDATE ON recipes BEGIN
			INSERT INTO recipes_fts(recipes_fts, rowid, title, description, ingredients)
			VALUES ('delete', old.rowid, old.title, old.description, old.ingredients);
			INSERT INTO recipes_fts(rowid, title, description, ingredients)
			VALUES (new.rowid, new.title, new.description, new.ingredients);
		END`,
	}
	if _, err := s.db.Exec(ftsStatements[0]); err != nil {
		if strings.Contains(err.Error(), "no such module: fts5") {
			return nil
		}
		return fmt.Errorf("creating FTS table: %w", err)
	}
	for _, stmt := range ftsStatements[1:] {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating FTS triggers: %w", err)
		}
	}
	s.fts = true
	return nil
}

// Put upserts a batch in one transaction. It implements sink.Sink.
func (s *Store) Put(ctx context.Context, batch []types.NormalizedRecipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO recipes (slug, title, description, ingredients, category_id, subcategory, source_folder, tags, record, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
			title=excluded.title, description=excluded.description,
			ingredients=excluded.ingredients, category_id=excluded.category_id,
			subcategory=excluded.subcategory, source_folder=excluded.source_folder,
			tags=excluded.tags, record=excluded.record, updated_at=excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	updated := s.now().UTC().Format(time.RFC3339)
	for _, r := range batch {
		if r.Slug == "" {
			return fmt.Errorf("recipe %q has no slug", r.Title)
		}
		record, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", r.Slug, err)
		}
		tagsJSON, _ := json.Marshal(r.Tags)
		if _, err := stmt.ExecContext(ctx,
			r.Slug, r.Title, r.Description, ingredientNames(r),
			r.CategoryID, r.Subcategory, r.SourceFolder,
			string(tagsJSON), string(record), updated,
		); err != nil {
			return fmt.Errorf("upserting %s: %w", r.Slug, err)
		}
	}
	return tx.Commit()
}

// IngestSummary holds counts from an ingest run.
type IngestSummary struct {
	Added   int
	Updated int
	Skipped int
}

// Total returns the number of records processed.
func (s IngestSummary) Total() int {
	return s.Added + s.Updated + s.Skipped
}

// Ingest upserts recipes one by one, reporting each to w. Records without
// a slug are skipped. A slug seen twice keeps the later record.
func (s *Store) Ingest(ctx context.Context, recipes []types.NormalizedRecipe, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary
	for _, r := range recipes {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if r.Slug == "" {
			fmt.Fprintf(w, "skipped: %q (no slug)\n", r.Title)
			summary.Skipped++
			continue
		}

		exists, err := s.Has(ctx, r.Slug)
		if err != nil {
			return summary, err
		}
		if err := s.Put(ctx, []types.NormalizedRecipe{r}); err != nil {
			return summary, err
		}
		if exists {
			fmt.Fprintf(w, "updated: %s\n", r.Slug)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "added:   %s\n", r.Slug)
			summary.Added++
		}
	}

	fmt.Fprintf(w, "\nadded: %d, updated: %d, skipped: %d\n",
		summary.Added, summary.Updated, summary.Skipped)
	return summary, nil
}

// Has reports whether a recipe with slug is stored.
func (s *Store) Has(ctx context.Context, slug string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM recipes WHERE slug = ?`, slug).Scan(&n); err != nil {
		return false, fmt.Errorf("looking up %s: %w", slug, err)
	}
	return n > 0, nil
}

// Get returns the stored record for slug.
func (s *Store) Get(ctx context.Context, slug string) (types.NormalizedRecipe, error) {
	var record string
	err := s.db.QueryRowContext(ctx, `SELECT record FROM recipes WHERE slug = ?`, slug).Scan(&record)
	if err == sql.ErrNoRows {
		return types.NormalizedRecipe{}, fmt.Errorf("recipe %s not found", slug)
	}
	if err != nil {
		return types.NormalizedRecipe{}, fmt.Errorf("looking up %s: %w", slug, err)
	}
	var r types.NormalizedRecipe
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return types.NormalizedRecipe{}, fmt.Errorf("decoding %s: %w", slug, err)
	}
	return r, nil
}

// Count returns the number of stored recipes.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM recipes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting recipes: %w", err)
	}
	return n, nil
}

// ingredientNames flattens ingredient names into one searchable string.
func ingredientNames(r types.NormalizedRecipe) string {
	var names []string
	for _, g := range r.IngredientGroups {
		for _, it := range g.Items {
			names = append(names, it.Name)
		}
	}
	return strings.Join(names, "\n")
}
