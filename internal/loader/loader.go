// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader collects recipe documents from a directory tree.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/recipe-importer/pkg/types"
)

// DefaultExtension selects markdown files when no extension is configured.
const DefaultExtension = ".md"

// Entry is one file found by Load. Err is set when the file matched but
// could not be read; Document then carries only the path.
type Entry struct {
	Document types.RecipeDocument
	Err      error
}

// Load walks root recursively and reads every file whose extension matches
// ext, compared case-insensitively. Entries are returned in lexical walk
// order. Hidden files and directories are skipped. Unreadable files and
// directories become entries with Err set; only a missing or unreadable
// root is returned as an error.
func Load(root, ext string) ([]Entry, error) {
	ext = normalizeExt(ext)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading recipes directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("recipes path %s is not a directory", root)
	}

	var entries []Entry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			entries = append(entries, Entry{
				Document: types.RecipeDocument{Path: path},
				Err:      walkErr,
			})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			entries = append(entries, Entry{
				Document: types.RecipeDocument{Path: path},
				Err:      fmt.Errorf("reading %s: %w", path, err),
			})
			return nil
		}
		entries = append(entries, Entry{
			Document: types.RecipeDocument{Path: path, Content: string(data)},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return entries, nil
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
