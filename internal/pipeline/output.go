// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/recipe-importer/pkg/types"
)

// DefaultOutputPath is where parse writes records when no path is given.
const DefaultOutputPath = "parsed_recipes.json"

// ParseFormat maps a flag value to an output format. Empty means JSON.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch types.OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", types.OutputJSON:
		return types.OutputJSON, nil
	case types.OutputJSONL:
		return types.OutputJSONL, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or jsonl)", s)
	}
}

// Encode writes recipes to w as an indented JSON array or as one JSON
// object per line.
func Encode(w io.Writer, recipes []types.NormalizedRecipe, format types.OutputFormat) error {
	if recipes == nil {
		recipes = []types.NormalizedRecipe{}
	}

	switch format {
	case types.OutputJSONL:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, r := range recipes {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encoding %s: %w", r.Slug, err)
			}
		}
		return nil
	case types.OutputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(recipes); err != nil {
			return fmt.Errorf("encoding recipes: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteFile encodes recipes to path, creating parent directories.
func WriteFile(path string, recipes []types.NormalizedRecipe, format types.OutputFormat) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, recipes, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadFile loads records written by WriteFile. A file whose first
// non-space byte is '[' is read as a JSON array; anything else as JSONL.
func ReadFile(path string) ([]types.NormalizedRecipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	recipes, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return recipes, nil
}

// Decode parses a JSON array or JSONL stream of records.
func Decode(data []byte) ([]types.NormalizedRecipe, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []types.NormalizedRecipe{}, nil
	}

	if trimmed[0] == '[' {
		var recipes []types.NormalizedRecipe
		if err := json.Unmarshal(trimmed, &recipes); err != nil {
			return nil, err
		}
		return recipes, nil
	}

	var recipes []types.NormalizedRecipe
	sc := bufio.NewScanner(bytes.NewReader(trimmed))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}
		var r types.NormalizedRecipe
		if err := json.Unmarshal(text, &r); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		recipes = append(recipes, r)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return recipes, nil
}
