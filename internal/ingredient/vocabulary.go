// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingredient

import (
	"sort"
	"strings"
)

// DefaultUnits is the built-in unit vocabulary.
var DefaultUnits = []string{
	"cup", "cups",
	"tbsp", "tablespoon", "tablespoons",
	"tsp", "teaspoon", "teaspoons",
	"oz", "ounce", "ounces",
	"lb", "lbs", "pound", "pounds",
	"g", "gram", "grams", "kg",
	"package", "packages",
	"can", "cans",
	"piece", "pieces",
	"slice", "slices",
	"clove", "cloves",
	"large", "small", "medium",
}

// Vocabulary is an immutable set of unit words. The zero value recognizes
// no units.
type Vocabulary struct {
	units map[string]struct{}
}

// NewVocabulary builds a vocabulary from units. Matching is
// case-insensitive; blank entries are ignored.
func NewVocabulary(units []string) Vocabulary {
	m := make(map[string]struct{}, len(units))
	for _, u := range units {
		u = strings.ToLower(strings.TrimSpace(u))
		if u != "" {
			m[u] = struct{}{}
		}
	}
	return Vocabulary{units: m}
}

// DefaultVocabulary returns a vocabulary over DefaultUnits.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary(DefaultUnits)
}

// IsUnit reports whether word, ignoring case and one trailing period, is a
// known unit.
func (v Vocabulary) IsUnit(word string) bool {
	word = strings.ToLower(strings.TrimSuffix(word, "."))
	if word == "" {
		return false
	}
	_, ok := v.units[word]
	return ok
}

// Units returns the vocabulary in sorted order.
func (v Vocabulary) Units() []string {
	out := make([]string, 0, len(v.units))
	for u := range v.units {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of units.
func (v Vocabulary) Len() int {
	return len(v.units)
}
