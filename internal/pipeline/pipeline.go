// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives a batch of loaded documents through the recipe
// engine, reports per-document status, and summarizes the run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/recipe-importer/internal/classify"
	"github.com/pdiddy/recipe-importer/internal/loader"
	"github.com/pdiddy/recipe-importer/internal/recipe"
	"github.com/pdiddy/recipe-importer/pkg/types"
)

// Status is the outcome of one document.
type Status string

const (
	StatusParsed  Status = "parsed"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome records what happened to one document.
type Outcome struct {
	Path    string
	Dialect types.Dialect
	Status  Status
	Recipe  types.NormalizedRecipe
	Err     error
}

// Runner parses documents with a shared engine. The engine and tables are
// read-only, so a Runner may fan work out across goroutines.
type Runner struct {
	Engine *recipe.Engine
	// Tables resolve category IDs to names in the summary.
	Tables classify.Tables
	// Workers bounds concurrent parsing. Values below 1 mean 1.
	Workers int
}

// NewRunner returns a runner that names categories from the classifier tables.
func NewRunner(c *classify.Classifier, e *recipe.Engine, workers int) *Runner {
	return &Runner{Engine: e, Tables: c.Tables(), Workers: workers}
}

// Run parses every entry, writes one status line per entry to w in input
// order, and returns the parsed records in the same order. Per-document
// failures never abort the run; only ctx cancellation does.
func (r *Runner) Run(ctx context.Context, entries []loader.Entry, w io.Writer) ([]types.NormalizedRecipe, Summary, error) {
	outcomes, err := r.parseAll(ctx, entries)
	if err != nil {
		return nil, Summary{}, err
	}

	recipes := make([]types.NormalizedRecipe, 0, len(outcomes))
	s := newSummary()
	slugPaths := make(map[string][]string)

	for _, o := range outcomes {
		switch o.Status {
		case StatusParsed:
			fmt.Fprintf(w, "parsed:  %s (%s)\n", o.Path, o.Dialect)
			recipes = append(recipes, o.Recipe)
			s.add(o.Recipe, r.Tables)
			slugPaths[o.Recipe.Slug] = append(slugPaths[o.Recipe.Slug], o.Path)
		case StatusSkipped:
			fmt.Fprintf(w, "skipped: %s (%v)\n", o.Path, o.Err)
			s.Skipped++
		case StatusFailed:
			fmt.Fprintf(w, "failed:  %s (%v)\n", o.Path, o.Err)
			s.Failed++
		}
	}

	for slug, paths := range slugPaths {
		if len(paths) > 1 {
			s.DuplicateSlugs[slug] = paths
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d parsed, %d skipped, %d failed (total: %d)\n",
		s.Parsed, s.Skipped, s.Failed, s.Total())
	return recipes, s, nil
}

// parseAll fills an index-addressed slice so output order never depends on
// scheduling.
func (r *Runner) parseAll(ctx context.Context, entries []loader.Entry) ([]Outcome, error) {
	outcomes := make([]Outcome, len(entries))

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, e := range entries {
		if gctx.Err() != nil {
			break
		}
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.parseOne(e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (r *Runner) parseOne(e loader.Entry) Outcome {
	o := Outcome{Path: e.Document.Path}
	if e.Err != nil {
		o.Status, o.Err = StatusFailed, e.Err
		return o
	}

	rec, dialect, err := r.Engine.Parse(e.Document)
	o.Dialect = dialect
	switch {
	case err == nil:
		o.Status, o.Recipe = StatusParsed, rec
	case recipe.Skippable(err):
		o.Status, o.Err = StatusSkipped, err
	default:
		o.Status, o.Err = StatusFailed, err
	}
	return o
}

// Summary aggregates a run.
type Summary struct {
	Parsed  int `json:"parsed"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`

	ByFolder      map[string]int `json:"byFolder"`
	ByCategory    map[string]int `json:"byCategory"`
	BySubcategory map[string]int `json:"bySubcategory"`

	// NoIngredients and NoInstructions list titles of emitted records
	// that lack those sections.
	NoIngredients  []string `json:"noIngredients"`
	NoInstructions []string `json:"noInstructions"`

	// DuplicateSlugs maps a slug shared by several documents to their paths.
	DuplicateSlugs map[string][]string `json:"duplicateSlugs"`
}

func newSummary() Summary {
	return Summary{
		ByFolder:       make(map[string]int),
		ByCategory:     make(map[string]int),
		BySubcategory:  make(map[string]int),
		NoIngredients:  []string{},
		NoInstructions: []string{},
		DuplicateSlugs: make(map[string][]string),
	}
}

func (s *Summary) add(r types.NormalizedRecipe, t classify.Tables) {
	s.Parsed++
	s.ByFolder[r.SourceFolder]++
	s.ByCategory[t.CategoryName(r.CategoryID)]++
	if r.Subcategory != "" {
		s.BySubcategory[r.Subcategory]++
	}
	if r.IngredientCount() == 0 {
		s.NoIngredients = append(s.NoIngredients, r.Title)
	}
	if len(r.Instructions) == 0 {
		s.NoInstructions = append(s.NoInstructions, r.Title)
	}
}

// Total returns the number of documents processed.
func (s Summary) Total() int {
	return s.Parsed + s.Skipped + s.Failed
}

// HasFailures reports whether any document could not be read or parsed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Count is one row of a breakdown.
type Count struct {
	Key string
	N   int
}

// Sorted returns the entries of m ordered by descending count, then key.
func Sorted(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, n := range m {
		out = append(out, Count{Key: k, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// ErrFailures is returned by callers that treat any failed document as a
// failed run.
var ErrFailures = errors.New("some documents failed")
