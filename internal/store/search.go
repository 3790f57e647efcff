// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/recipe-importer/pkg/types"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Query is a full-text search string over title, description, and
	// ingredient names.
	Query string

	// CategoryID filters by category reference.
	CategoryID string

	// Folder filters by source folder.
	Folder string

	// Tags filters by one or more tags with AND semantics.
	Tags []string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.CategoryID == "" && q.Folder == "" && len(q.Tags) == 0
}

// Search returns matching recipes. Full-text queries are ranked by
// relevance; filter-only queries are ordered by title.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]types.NormalizedRecipe, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		query  = strings.TrimSpace(opts.Query)
		useFTS = query != "" && s.fts
	)

	switch {
	case useFTS:
		qb.WriteString(
			`SELECT r.record FROM recipes_fts
			JOIN recipes r ON r.rowid = recipes_fts.rowid
			WHERE recipes_fts MATCH ?`)
		args = append(args, ftsQuery(query))
	case query != "":
		qb.WriteString(`SELECT r.record FROM recipes r WHERE (r.title LIKE ? OR r.description LIKE ? OR r.ingredients LIKE ?)`)
		like := "%" + query + "%"
		args = append(args, like, like, like)
	default:
		qb.WriteString(`SELECT r.record FROM recipes r WHERE 1=1`)
	}

	if opts.CategoryID != "" {
		qb.WriteString(` AND r.category_id = ?`)
		args = append(args, opts.CategoryID)
	}
	if opts.Folder != "" {
		qb.WriteString(` AND r.source_folder = ?`)
		args = append(args, opts.Folder)
	}
	for _, tag := range opts.Tags {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(r.tags) WHERE lower(value) = lower(?))`)
		args = append(args, tag)
	}

	if useFTS {
		qb.WriteString(` ORDER BY recipes_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY r.title, r.slug`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []types.NormalizedRecipe
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		var r types.NormalizedRecipe
		if err := json.Unmarshal([]byte(record), &r); err != nil {
			return nil, fmt.Errorf("decoding record: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ftsQuery quotes each word so user input cannot inject FTS5 syntax.
func ftsQuery(q string) string {
	words := strings.Fields(q)
	for i, w := range words {
		words[i] = `"` + strings.ReplaceAll(w, `"`, `""`) + `"`
	}
	return strings.Join(words, " ")
}
