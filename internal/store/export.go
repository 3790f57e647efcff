// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recipe-importer/pkg/types"
)

const exportLimit = 100000

// ExportYAML writes matching recipes to dir/export.yaml and returns the
// path. It supports the same filters as Search.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) (string, error) {
	recipes, err := s.exportRecipes(ctx, opts)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(recipes)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.dir, "export.yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes matching recipes to dir/export.json and returns the
// path. It supports the same filters as Search.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) (string, error) {
	recipes, err := s.exportRecipes(ctx, opts)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.dir, "export.json")
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportRecipes(ctx context.Context, opts QueryOptions) ([]types.NormalizedRecipe, error) {
	opts.MaxResults = exportLimit
	recipes, err := s.Search(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if recipes == nil {
		recipes = []types.NormalizedRecipe{}
	}
	return recipes, nil
}
