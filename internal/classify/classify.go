// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns a category id and subcategory label to a recipe
// from its title, source folder, and optional explicit category.
//
// Classification is a pure function of its inputs and the Tables value it
// runs on. Every input resolves to exactly one category id.
package classify

import (
	"strings"
)

// Input is what the classifier looks at.
type Input struct {
	Title    string
	Folder   string
	Category string
}

// Result is the classifier's decision.
type Result struct {
	CategoryID  string
	Subcategory string
	// Rule names which precedence step decided the category:
	// "folder", "category", "dessert", "breakfast", "appetizer", or "default".
	Rule string
}

// Classifier applies a fixed Tables value.
type Classifier struct {
	tables Tables
}

// New returns a classifier over t. Keys in t.Folders and t.Aliases are
// matched case-insensitively.
func New(t Tables) *Classifier {
	t.Folders = lowerKeys(t.Folders)
	t.Aliases = lowerKeys(t.Aliases)
	return &Classifier{tables: t}
}

// Tables returns the tables the classifier runs on.
func (c *Classifier) Tables() Tables {
	return c.tables
}

// Classify resolves the category in precedence order: folder table,
// explicit category, title keywords, default.
func (c *Classifier) Classify(in Input) Result {
	id, rule := c.decide(in)
	return Result{
		CategoryID:  id,
		Subcategory: c.Subcategory(in.Title),
		Rule:        rule,
	}
}

// Category returns only the category id for in.
func (c *Classifier) Category(in Input) string {
	id, _ := c.decide(in)
	return id
}

func (c *Classifier) decide(in Input) (id, rule string) {
	t := c.tables

	if id, ok := t.Folders[normalizeKey(in.Folder)]; ok && id != "" {
		return id, "folder"
	}
	if cat := normalizeKey(in.Category); cat != "" {
		if id, ok := t.Folders[cat]; ok && id != "" {
			return id, "category"
		}
		if id, ok := t.Aliases[cat]; ok && id != "" {
			return id, "category"
		}
	}

	title := strings.ToLower(in.Title)
	switch {
	case containsAny(title, t.Dessert) && !containsAny(title, t.SavoryBread):
		return t.DessertID, "dessert"
	case containsAny(title, t.Breakfast):
		return t.BreakfastID, "breakfast"
	case containsAny(title, t.Appetizer):
		return t.AppetizerID, "appetizer"
	}
	return t.DefaultID, "default"
}

// Subcategory returns the label of the first rule whose keywords appear in
// title, or "".
func (c *Classifier) Subcategory(title string) string {
	lower := strings.ToLower(title)
	for _, r := range c.tables.Subcategories {
		if containsAny(lower, r.Keywords) {
			return r.Label
		}
	}
	return ""
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[normalizeKey(k)] = v
	}
	return out
}
