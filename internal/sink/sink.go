// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sink delivers normalized records to a destination in paced
// batches. A failed batch is recorded and the next one proceeds; there is
// no rollback of batches already written.
package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/recipe-importer/pkg/types"
)

// Defaults for batching.
const (
	DefaultBatchSize   = 10
	DefaultBatchDelay  = 500 * time.Millisecond
	DefaultResultsPath = "import_results.json"
)

// Sink accepts one batch of records. Implementations either store the
// whole batch or return an error.
type Sink interface {
	Put(ctx context.Context, batch []types.NormalizedRecipe) error
}

// Failure is one record from a failed batch.
type Failure struct {
	Title string `json:"title"`
	Error string `json:"error"`
}

// Skip is one record rejected before import.
type Skip struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// Results is the import log written to import_results.json.
type Results struct {
	Successful []string  `json:"successful"`
	Failed     []Failure `json:"failed"`
	Skipped    []Skip    `json:"skipped"`
	Batches    int       `json:"batches"`
}

// NewResults returns results with empty, non-nil lists.
func NewResults() *Results {
	return &Results{
		Successful: []string{},
		Failed:     []Failure{},
		Skipped:    []Skip{},
	}
}

// Total returns the number of records seen, including skipped ones.
func (r *Results) Total() int {
	return len(r.Successful) + len(r.Failed) + len(r.Skipped)
}

// HasFailures reports whether any batch failed.
func (r *Results) HasFailures() bool {
	return len(r.Failed) > 0
}

// WriteFile saves the results as indented JSON.
func (r *Results) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Filter splits records into those a destination can accept and skip
// entries for the rest. A record needs a title, a slug, and at least one
// ingredient.
func Filter(recipes []types.NormalizedRecipe) ([]types.NormalizedRecipe, []Skip) {
	valid := make([]types.NormalizedRecipe, 0, len(recipes))
	var skipped []Skip
	for _, r := range recipes {
		var reason string
		switch {
		case r.Title == "":
			reason = "missing title"
		case r.Slug == "":
			reason = "missing slug"
		case r.IngredientCount() == 0:
			reason = "no ingredients"
		}
		if reason != "" {
			skipped = append(skipped, Skip{Title: r.Title, Reason: reason})
			continue
		}
		valid = append(valid, r)
	}
	return valid, skipped
}

// Batcher splits records into fixed-size batches and hands them to a Sink
// at a fixed pace.
type Batcher struct {
	sink    Sink
	size    int
	limiter *rate.Limiter
}

// NewBatcher returns a batcher over s. A size below 1 means
// DefaultBatchSize; a delay of zero or less disables pacing.
func NewBatcher(s Sink, size int, delay time.Duration) *Batcher {
	if size < 1 {
		size = DefaultBatchSize
	}
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Batcher{sink: s, size: size, limiter: rate.NewLimiter(limit, 1)}
}

// Run filters recipes, sends the valid ones in batches, and writes one
// status line per batch and per skipped record to w. It returns an error
// only when ctx is cancelled; batch failures are recorded in the results.
func (b *Batcher) Run(ctx context.Context, recipes []types.NormalizedRecipe, w io.Writer) (*Results, error) {
	res := NewResults()

	valid, skipped := Filter(recipes)
	for _, s := range skipped {
		fmt.Fprintf(w, "skipping: %q missing required fields (%s)\n", s.Title, s.Reason)
	}
	res.Skipped = append(res.Skipped, skipped...)

	batches := Split(valid, b.size)
	res.Batches = len(batches)
	fmt.Fprintf(w, "Importing %d recipes in %d batches (%d skipped)\n", len(valid), len(batches), len(skipped))

	for i, batch := range batches {
		if err := b.limiter.Wait(ctx); err != nil {
			return res, err
		}

		fmt.Fprintf(w, "batch %d/%d (%d recipes)\n", i+1, len(batches), len(batch))
		if err := b.sink.Put(ctx, batch); err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			fmt.Fprintf(w, "failed:  batch %d (%v)\n", i+1, err)
			for _, r := range batch {
				res.Failed = append(res.Failed, Failure{Title: r.Title, Error: err.Error()})
			}
			continue
		}
		fmt.Fprintf(w, "imported: batch %d\n", i+1)
		for _, r := range batch {
			res.Successful = append(res.Successful, r.Title)
		}
	}

	fmt.Fprintf(w, "\nImport summary: %d imported, %d skipped, %d failed (total: %d)\n",
		len(res.Successful), len(res.Skipped), len(res.Failed), res.Total())
	return res, nil
}

// Split cuts recipes into consecutive batches of at most size records.
func Split(recipes []types.NormalizedRecipe, size int) [][]types.NormalizedRecipe {
	if size < 1 {
		size = DefaultBatchSize
	}
	var out [][]types.NormalizedRecipe
	for start := 0; start < len(recipes); start += size {
		end := min(start+size, len(recipes))
		out = append(out, recipes[start:end])
	}
	return out
}
