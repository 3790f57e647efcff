// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingredient splits a single ingredient bullet into amount, unit,
// and name.
//
// A line is read left to right as an optional quantity run, an optional
// unit word drawn from a Vocabulary, and the remaining text as the name.
// Parsing never fails: text that does not fit the pattern becomes the name.
package ingredient

import (
	"strings"
	"unicode"

	"github.com/pdiddy/recipe-importer/pkg/types"
)

// fractionGlyphs are the vulgar fraction characters accepted in quantities.
const fractionGlyphs = "½¼¾⅓⅔⅛⅜⅝"

// Parser parses ingredient lines against a fixed unit vocabulary.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	vocab Vocabulary
}

// NewParser returns a parser using vocab.
func NewParser(vocab Vocabulary) *Parser {
	return &Parser{vocab: vocab}
}

// Parse splits line into an IngredientLine. A leading "- " or "* " list
// marker is stripped. An empty line yields the zero value.
func (p *Parser) Parse(line string) types.IngredientLine {
	item := StripMarker(line)
	if item == "" {
		return types.IngredientLine{}
	}

	amount, rest := splitQuantity(item)

	var unit string
	if word, after := firstWord(rest); p.vocab.IsUnit(word) {
		unit = strings.TrimSuffix(word, ".")
		rest = after
	}

	name := strings.TrimSpace(strings.TrimLeft(rest, "-"))

	// A bare unit ("1 cup") names the ingredient itself.
	if name == "" && unit != "" {
		name, unit = unit, ""
	}
	if name == "" {
		return types.IngredientLine{Name: item}
	}

	return types.IngredientLine{Amount: amount, Unit: unit, Name: name}
}

// StripMarker trims whitespace and removes one leading "- " or "* " list
// marker.
func StripMarker(line string) string {
	s := strings.TrimSpace(line)
	if strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "* ") {
		s = strings.TrimSpace(s[2:])
	}
	return s
}

// IsListItem reports whether line, after trimming, starts with a "- " or
// "* " marker.
func IsListItem(line string) bool {
	s := strings.TrimSpace(line)
	return strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "* ")
}

// splitQuantity consumes the leading quantity run. The run counts as a
// quantity only if it contains a digit or a fraction glyph; otherwise the
// whole item is returned as rest.
func splitQuantity(item string) (amount, rest string) {
	end := 0
	hasNumber := false
	for i, r := range item {
		if !isQuantityRune(r) {
			end = i
			break
		}
		if unicode.IsDigit(r) || strings.ContainsRune(fractionGlyphs, r) {
			hasNumber = true
		}
		end = i + len(string(r))
	}
	if !hasNumber {
		return "", item
	}

	amount = strings.TrimRight(strings.TrimSpace(item[:end]), " -")
	return amount, strings.TrimSpace(item[end:])
}

func isQuantityRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '\t' || r == '.' || r == '/' || r == '-':
		return true
	}
	return strings.ContainsRune(fractionGlyphs, r)
}

// firstWord returns the first whitespace-delimited token of s and the
// trimmed text after it.
func firstWord(s string) (word, after string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
