// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import (
	"regexp"
	"strings"

	"github.com/pdiddy/recipe-importer/pkg/types"
)

// Record defaults applied when a draft leaves a field unset.
const (
	DefaultDifficulty  = "Medium"
	DefaultServings    = 4
	DefaultDateCreated = "2024-01-01"
	MaxRating          = 5.0
)

const cherishedBoilerplate = "A cherished recipe passed down through generations."

var familyRecipeBoilerplate = regexp.MustCompile(`Family recipe for [^.]+\.\s*`)

// Normalize assembles the final record from a draft. It trims text,
// applies defaults, deduplicates tags, drops empty ingredient groups and
// items, re-indexes steps from 1, clamps the rating, cleans description
// boilerplate, and derives the slug from the title. Collections in the
// result are never nil. Normalize(Normalize(r)) == Normalize(r).
func Normalize(draft types.NormalizedRecipe) types.NormalizedRecipe {
	r := draft

	r.Title = strings.TrimSpace(r.Title)
	r.Slug = slugFor(r.Title)
	r.Description = CleanDescription(r.Description, r.Title)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	r.Subcategory = strings.TrimSpace(r.Subcategory)
	r.Cuisine = strings.TrimSpace(r.Cuisine)
	r.Difficulty = strings.TrimSpace(r.Difficulty)
	r.PrepTime = strings.TrimSpace(r.PrepTime)
	r.CookTime = strings.TrimSpace(r.CookTime)
	r.TotalTime = strings.TrimSpace(r.TotalTime)
	r.RestTime = strings.TrimSpace(r.RestTime)
	r.Storage = strings.TrimSpace(r.Storage)
	r.DateCreated = strings.TrimSpace(r.DateCreated)
	r.SourceFolder = strings.TrimSpace(r.SourceFolder)

	if r.Difficulty == "" {
		r.Difficulty = DefaultDifficulty
	}
	if r.Servings <= 0 {
		r.Servings = DefaultServings
	}
	if r.DateCreated == "" {
		r.DateCreated = DefaultDateCreated
	}

	switch {
	case r.Rating < 0:
		r.Rating = 0
	case r.Rating > MaxRating:
		r.Rating = MaxRating
	}
	if r.ReviewCount < 0 {
		r.ReviewCount = 0
	}

	r.Tags = dedupe(r.Tags)
	r.Notes = compact(r.Notes)
	r.Variations = compact(r.Variations)
	r.IngredientGroups = normalizeGroups(r.IngredientGroups)
	r.Instructions = reindex(r.Instructions)

	if r.Nutrition != nil {
		n := *r.Nutrition
		if n.IsZero() {
			r.Nutrition = nil
		} else {
			r.Nutrition = &n
		}
	}

	return r
}

// CleanDescription strips generated boilerplate. A description that was
// nothing but boilerplate becomes "Delicious homemade {title}"; an empty
// description stays empty.
func CleanDescription(desc, title string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ""
	}
	cleaned := strings.ReplaceAll(desc, cherishedBoilerplate, "")
	cleaned = familyRecipeBoilerplate.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "Delicious homemade " + strings.TrimSpace(title)
	}
	return cleaned
}

// dedupe trims tags and keeps the first occurrence of each, compared
// case-insensitively.
func dedupe(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func normalizeGroups(groups []types.IngredientGroup) []types.IngredientGroup {
	out := make([]types.IngredientGroup, 0, len(groups))
	for _, g := range groups {
		items := make([]types.IngredientLine, 0, len(g.Items))
		for _, it := range g.Items {
			it = types.IngredientLine{
				Amount: strings.TrimSpace(it.Amount),
				Unit:   strings.TrimSpace(it.Unit),
				Name:   strings.TrimSpace(it.Name),
			}
			if it.Name == "" {
				continue
			}
			items = append(items, it)
		}
		if len(items) == 0 {
			continue
		}
		label := strings.TrimSpace(g.GroupLabel)
		if label == "" {
			label = types.DefaultGroupLabel
		}
		out = append(out, types.IngredientGroup{GroupLabel: label, Items: items})
	}
	return out
}

func reindex(steps []types.InstructionStep) []types.InstructionStep {
	out := make([]types.InstructionStep, 0, len(steps))
	for _, s := range steps {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		out = append(out, types.InstructionStep{Index: len(out) + 1, Text: text})
	}
	return out
}
