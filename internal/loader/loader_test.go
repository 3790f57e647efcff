// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "desserts/pie.md", "pie")
	writeFile(t, root, "beef/stew.md", "stew")
	writeFile(t, root, "beef/chili.MD", "chili")
	writeFile(t, root, "beef/notes.txt", "not a recipe")
	writeFile(t, root, ".drafts/wip.md", "hidden")
	writeFile(t, root, "beef/.swap.md", "hidden")
	writeFile(t, root, "top.md", "top")

	entries, err := Load(root, "")
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		require.NoError(t, e.Err)
		rel, err := filepath.Rel(root, e.Document.Path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"beef/chili.MD", "beef/stew.md", "desserts/pie.md", "top.md"}, got)
	assert.Equal(t, "chili", entries[0].Document.Content)
}

func TestLoad_Extension(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want int
	}{
		{"with dot", ".txt", 1},
		{"without dot", "txt", 1},
		{"default", "  ", 2},
		{"no match", ".yaml", 0},
	}

	root := t.TempDir()
	writeFile(t, root, "a/one.md", "1")
	writeFile(t, root, "a/two.md", "2")
	writeFile(t, root, "a/three.txt", "3")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Load(root, tt.ext)
			require.NoError(t, err)
			assert.Len(t, entries, tt.want)
		})
	}
}

func TestLoad_UnreadableFileIsReported(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/good.md", "ok")
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "a", "broken.md")))

	entries, err := Load(root, ".md")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, filepath.Join(root, "a", "broken.md"), entries[0].Document.Path)
	assert.Error(t, entries[0].Err)
	assert.Empty(t, entries[0].Document.Content)
	assert.NoError(t, entries[1].Err)
	assert.Equal(t, "ok", entries[1].Document.Content)
}

func TestLoad_BadRoot(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), ".md")
	assert.Error(t, err)

	file := writeFile(t, t.TempDir(), "file.md", "x")
	_, err = Load(file, ".md")
	assert.ErrorContains(t, err, "not a directory")
}
