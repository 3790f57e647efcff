// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package contentstore

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/recipe-importer/pkg/types"
)

// keySpace namespaces the deterministic _key values of array members.
var keySpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("recipe-importer/content-store"))

// Document is the content store form of one recipe.
type Document struct {
	ID             string            `json:"_id"`
	Type           string            `json:"_type"`
	Title          string            `json:"title"`
	Slug           Slug              `json:"slug"`
	Description    string            `json:"description,omitempty"`
	Category       Reference         `json:"category"`
	Subcategory    string            `json:"subcategory,omitempty"`
	Cuisine        string            `json:"cuisine,omitempty"`
	Difficulty     string            `json:"difficulty,omitempty"`
	Servings       int               `json:"servings,omitempty"`
	PrepTime       string            `json:"prepTime,omitempty"`
	CookTime       string            `json:"cookTime,omitempty"`
	TotalTime      string            `json:"totalTime,omitempty"`
	RestTime       string            `json:"restTime,omitempty"`
	Tags           []string          `json:"tags"`
	Ingredients    []IngredientGroup `json:"ingredients,omitempty"`
	Instructions   []InstructionStep `json:"instructions,omitempty"`
	Nutrition      *Nutrition        `json:"nutrition,omitempty"`
	Notes          []string          `json:"notes,omitempty"`
	Variations     []string          `json:"variations,omitempty"`
	Storage        string            `json:"storage,omitempty"`
	IsFamilyRecipe bool              `json:"isFamilyRecipe"`
	Featured       bool              `json:"featured"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	DateCreated    string            `json:"dateCreated,omitempty"`
	DateModified   string            `json:"dateModified"`
	SEO            SEO               `json:"seo"`
}

// Slug is the store's slug object.
type Slug struct {
	Type    string `json:"_type"`
	Current string `json:"current"`
}

// Reference points at another document by ID.
type Reference struct {
	Type string `json:"_type"`
	Ref  string `json:"_ref"`
}

// IngredientGroup is one titled ingredient list.
type IngredientGroup struct {
	Type       string       `json:"_type"`
	Key        string       `json:"_key"`
	GroupTitle string       `json:"groupTitle"`
	Items      []Ingredient `json:"items"`
}

// Ingredient is one ingredient item.
type Ingredient struct {
	Type   string `json:"_type"`
	Key    string `json:"_key"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
	Name   string `json:"name"`
}

// InstructionStep is one numbered step.
type InstructionStep struct {
	Type        string `json:"_type"`
	Key         string `json:"_key"`
	Step        int    `json:"step"`
	Instruction string `json:"instruction"`
}

// Nutrition carries per-serving facts.
type Nutrition struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein,omitempty"`
	Carbs    string `json:"carbs,omitempty"`
	Fat      string `json:"fat,omitempty"`
	Fiber    string `json:"fiber,omitempty"`
	Sugar    string `json:"sugar,omitempty"`
	Sodium   string `json:"sodium,omitempty"`
}

// SEO holds page metadata derived from the record.
type SEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription,omitempty"`
}

// DocumentID returns the store ID for a slug. IDs are limited to
// [A-Za-z0-9._-]; a slug outside that set is replaced by a stable hash.
func DocumentID(slug string) string {
	if strings.IndexFunc(slug, invalidIDRune) >= 0 {
		id := uuid.NewSHA1(keySpace, []byte("id/"+slug))
		return "recipe-" + strings.ReplaceAll(id.String(), "-", "")[:16]
	}
	return "recipe-" + slug
}

func invalidIDRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case r == '.', r == '_', r == '-':
		return false
	}
	return true
}

// Transform builds the store document for r. Array keys are derived from
// the slug and position, so the same record always yields the same
// document apart from DateModified.
func Transform(r types.NormalizedRecipe, now time.Time) Document {
	doc := Document{
		ID:             DocumentID(r.Slug),
		Type:           "recipe",
		Title:          r.Title,
		Slug:           Slug{Type: "slug", Current: r.Slug},
		Description:    r.Description,
		Category:       Reference{Type: "reference", Ref: r.CategoryID},
		Subcategory:    r.Subcategory,
		Cuisine:        r.Cuisine,
		Difficulty:     r.Difficulty,
		Servings:       r.Servings,
		PrepTime:       r.PrepTime,
		CookTime:       r.CookTime,
		TotalTime:      r.TotalTime,
		RestTime:       r.RestTime,
		Tags:           r.Tags,
		Storage:        r.Storage,
		IsFamilyRecipe: r.IsFamilyRecipe,
		Featured:       r.Featured,
		Rating:         r.Rating,
		ReviewCount:    r.ReviewCount,
		DateCreated:    r.DateCreated,
		DateModified:   now.UTC().Format(time.RFC3339),
		SEO:            SEO{MetaTitle: r.Title, MetaDescription: r.Description},
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	if len(r.Notes) > 0 {
		doc.Notes = r.Notes
	}
	if len(r.Variations) > 0 {
		doc.Variations = r.Variations
	}

	for gi, g := range r.IngredientGroups {
		group := IngredientGroup{
			Type:       "ingredientGroup",
			Key:        arrayKey(r.Slug, "group", gi),
			GroupTitle: g.GroupLabel,
			Items:      make([]Ingredient, 0, len(g.Items)),
		}
		for ii, it := range g.Items {
			group.Items = append(group.Items, Ingredient{
				Type:   "ingredient",
				Key:    arrayKey(r.Slug, "item"+strconv.Itoa(gi), ii),
				Amount: it.Amount,
				Unit:   it.Unit,
				Name:   it.Name,
			})
		}
		doc.Ingredients = append(doc.Ingredients, group)
	}

	for i, s := range r.Instructions {
		doc.Instructions = append(doc.Instructions, InstructionStep{
			Type:        "instructionStep",
			Key:         arrayKey(r.Slug, "step", i),
			Step:        s.Index,
			Instruction: s.Text,
		})
	}

	if n := r.Nutrition; n != nil && n.Calories > 0 {
		doc.Nutrition = &Nutrition{
			Calories: n.Calories,
			Protein:  n.Protein,
			Carbs:    n.Carbs,
			Fat:      n.Fat,
			Fiber:    n.Fiber,
			Sugar:    n.Sugar,
			Sodium:   n.Sodium,
		}
	}
	return doc
}

// arrayKey returns a short stable key for an array member.
func arrayKey(slug, kind string, i int) string {
	id := uuid.NewSHA1(keySpace, []byte(slug+"/"+kind+"/"+strconv.Itoa(i)))
	return strings.ReplaceAll(id.String(), "-", "")[:16]
}
