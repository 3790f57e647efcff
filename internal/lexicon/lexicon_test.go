// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recipe-importer/internal/classify"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	lex, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, classify.MainDishesID, lex.Tables.DefaultID)
	assert.True(t, lex.Vocabulary.IsUnit("cups"))
}

func TestDecode_Overlay(t *testing.T) {
	data := []byte(`
folders:
  holiday: 56230a66-83f0-4a25-9a50-8bfd17d08448
appetizer: [dip, salsa]
units: [cup, pinch]
`)
	lex, err := Decode(data)
	require.NoError(t, err)

	// Map sections merge.
	assert.Equal(t, classify.DessertsID, lex.Tables.Folders["holiday"])
	assert.Equal(t, classify.MainDishesID, lex.Tables.Folders["beef"])

	// List sections replace.
	assert.Equal(t, []string{"dip", "salsa"}, lex.Tables.Appetizer)
	assert.Equal(t, []string{"cup", "pinch"}, lex.Vocabulary.Units())

	// Untouched sections keep defaults.
	assert.Len(t, lex.Tables.Subcategories, 9)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte("default: \"\"\n"))
	assert.Error(t, err)

	_, err = Decode([]byte("folders: [not, a, map]\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	lex, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Tables.Dessert, lex.Tables.Dessert)
	assert.Equal(t, Default().Vocabulary.Units(), lex.Vocabulary.Units())
}
