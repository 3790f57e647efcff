// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexicon loads the classifier tables and unit vocabulary from a
// YAML file, layered over the built-in defaults.
package lexicon

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recipe-importer/internal/classify"
	"github.com/pdiddy/recipe-importer/internal/ingredient"
)

// File is the on-disk layout. Omitted sections keep their defaults; map
// sections are merged key by key; list sections replace the default list.
type File struct {
	Tables classify.Tables `yaml:",inline"`
	Units  []string        `yaml:"units"`
}

// Lexicon is the loaded lookup data.
type Lexicon struct {
	Tables     classify.Tables
	Vocabulary ingredient.Vocabulary
}

// Default returns the built-in lexicon.
func Default() Lexicon {
	return Lexicon{
		Tables:     classify.DefaultTables(),
		Vocabulary: ingredient.DefaultVocabulary(),
	}
}

// Load reads path and layers it over the defaults. An empty path returns
// Default().
func Load(path string) (Lexicon, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("reading tables file %s: %w", path, err)
	}
	lex, err := Decode(data)
	if err != nil {
		return Lexicon{}, fmt.Errorf("parsing tables file %s: %w", path, err)
	}
	return lex, nil
}

// Decode layers YAML data over the defaults.
func Decode(data []byte) (Lexicon, error) {
	f := File{
		Tables: classify.DefaultTables(),
		Units:  append([]string(nil), ingredient.DefaultUnits...),
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Lexicon{}, err
	}
	if f.Tables.DefaultID == "" {
		return Lexicon{}, fmt.Errorf("default category id is empty")
	}
	return Lexicon{
		Tables:     f.Tables,
		Vocabulary: ingredient.NewVocabulary(f.Units),
	}, nil
}

// Marshal renders lex in the File layout.
func Marshal(lex Lexicon) ([]byte, error) {
	return yaml.Marshal(File{Tables: lex.Tables, Units: lex.Vocabulary.Units()})
}
