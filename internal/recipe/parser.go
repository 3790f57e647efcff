// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recipe turns recipe documents into NormalizedRecipe records.
//
// Documents are routed by Detect to one of two Parser implementations:
// StructuredParser for frontmatter documents and FreeTextParser for loose
// markdown. Both return a draft record that Engine passes through Normalize
// and validation, so a consumer cannot tell which dialect produced it.
package recipe

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/recipe-importer/internal/classify"
	"github.com/pdiddy/recipe-importer/internal/frontmatter"
	"github.com/pdiddy/recipe-importer/internal/ingredient"
	"github.com/pdiddy/recipe-importer/pkg/types"
)

// Detect returns the dialect of text. It never fails: anything that does
// not open with a delimiter line is free text.
func Detect(text string) types.Dialect {
	if frontmatter.HasDelimiter(text) {
		return types.DialectStructured
	}
	return types.DialectFreeText
}

// Context describes where a document came from.
type Context struct {
	// Path is the source file path.
	Path string
	// Folder is the name of the containing directory.
	Folder string
	// Stem is the file name without its extension.
	Stem string
}

// NewContext derives a Context from a file path.
func NewContext(path string) Context {
	base := filepath.Base(path)
	return Context{
		Path:   path,
		Folder: filepath.Base(filepath.Dir(path)),
		Stem:   strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// Parser turns the text of one dialect into a draft record.
type Parser interface {
	// Dialect names the documents this parser accepts.
	Dialect() types.Dialect
	// Parse builds a draft record. Drafts are not yet normalized.
	Parse(text string, ctx Context) (types.NormalizedRecipe, error)
}

// Engine routes documents to the parser for their dialect and normalizes
// the result. It holds only read-only tables and is safe for concurrent use.
type Engine struct {
	parsers   map[types.Dialect]Parser
	validator *Validator
}

// NewEngine returns an engine with the structured and free-text parsers
// over the given classifier and ingredient parser.
func NewEngine(c *classify.Classifier, ip *ingredient.Parser) *Engine {
	return NewEngineWith(NewStructuredParser(c, ip), NewFreeTextParser(c, ip))
}

// NewEngineWith returns an engine over explicit parsers. A later parser for
// the same dialect replaces an earlier one.
func NewEngineWith(parsers ...Parser) *Engine {
	e := &Engine{
		parsers:   make(map[types.Dialect]Parser, len(parsers)),
		validator: NewValidator(),
	}
	for _, p := range parsers {
		e.parsers[p.Dialect()] = p
	}
	return e
}

// Parse detects, parses, normalizes, and validates one document.
func (e *Engine) Parse(doc types.RecipeDocument) (types.NormalizedRecipe, types.Dialect, error) {
	dialect := Detect(doc.Content)
	p, ok := e.parsers[dialect]
	if !ok {
		return types.NormalizedRecipe{}, dialect, fmt.Errorf("no parser registered for dialect %s", dialect)
	}

	draft, err := p.Parse(doc.Content, NewContext(doc.Path))
	if err != nil {
		return types.NormalizedRecipe{}, dialect, err
	}

	r := Normalize(draft)
	if err := e.validator.Validate(r); err != nil {
		return types.NormalizedRecipe{}, dialect, err
	}
	return r, dialect, nil
}
