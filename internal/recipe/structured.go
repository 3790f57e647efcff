// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import (
	"strings"

	"github.com/pdiddy/recipe-importer/internal/classify"
	"github.com/pdiddy/recipe-importer/internal/frontmatter"
	"github.com/pdiddy/recipe-importer/internal/ingredient"
	"github.com/pdiddy/recipe-importer/pkg/types"
)

// familyFolder marks structured recipes as family recipes.
const familyFolder = "family"

// StructuredParser reads recipes whose metadata lives in a frontmatter
// block. The body after the block is not used.
type StructuredParser struct {
	classifier  *classify.Classifier
	ingredients *ingredient.Parser
}

// NewStructuredParser returns a parser over the given tables.
func NewStructuredParser(c *classify.Classifier, ip *ingredient.Parser) *StructuredParser {
	return &StructuredParser{classifier: c, ingredients: ip}
}

// Dialect implements Parser.
func (p *StructuredParser) Dialect() types.Dialect {
	return types.DialectStructured
}

// Parse implements Parser. It returns ErrNoFrontmatter when the block is
// not closed and ErrMissingTitle when the block has no title.
func (p *StructuredParser) Parse(text string, ctx Context) (types.NormalizedRecipe, error) {
	fm, _, ok := frontmatter.Read(text)
	if !ok {
		return types.NormalizedRecipe{}, ErrNoFrontmatter
	}
	title := fm.String("title")
	if title == "" {
		return types.NormalizedRecipe{}, ErrMissingTitle
	}

	r := types.NormalizedRecipe{
		Title:       title,
		Description: fm.String("description"),
		CategoryID: p.classifier.Category(classify.Input{
			Title:    title,
			Folder:   ctx.Folder,
			Category: fm.String("category"),
		}),
		Subcategory:      fm.String("subcategory", "sub_category"),
		Cuisine:          fm.String("cuisine"),
		Difficulty:       fm.String("difficulty"),
		PrepTime:         fm.String("prepTime", "prep_time"),
		CookTime:         fm.String("cookTime", "cook_time"),
		TotalTime:        fm.String("totalTime", "total_time"),
		RestTime:         fm.String("restTime", "rest_time"),
		Tags:             fm.List("tags"),
		IngredientGroups: p.ingredientGroups(fm),
		Instructions:     instructionSteps(fm),
		Notes:            fm.List("notes"),
		Variations:       fm.List("variations"),
		Storage:          fm.String("storage"),
		Nutrition:        nutrition(fm.Mapping("nutrition")),
		DateCreated:      fm.String("dateCreated", "date_created"),
		SourceFolder:     ctx.Folder,
	}

	if n, ok := fm.Int("servings"); ok {
		r.Servings = n
	}
	if f, ok := fm.Float("rating"); ok {
		r.Rating = f
	}
	if n, ok := fm.Int("reviewCount", "review_count"); ok {
		r.ReviewCount = n
	}
	if b, ok := fm.Bool("featured"); ok {
		r.Featured = b
	}
	r.IsFamilyRecipe = strings.EqualFold(ctx.Folder, familyFolder)
	if b, ok := fm.Bool("isFamilyRecipe", "is_family_recipe"); ok && b {
		r.IsFamilyRecipe = true
	}

	return r, nil
}

// ingredientGroups collapses the ingredients list into one group. Object
// items carry amount, unit, and ingredient keys; plain string items go
// through the ingredient line parser.
func (p *StructuredParser) ingredientGroups(fm *frontmatter.Frontmatter) []types.IngredientGroup {
	var items []types.IngredientLine
	for _, obj := range fm.Objects("ingredients") {
		items = append(items, types.IngredientLine{
			Amount: obj.String("amount"),
			Unit:   obj.String("unit"),
			Name:   obj.String("ingredient", "name"),
		})
	}
	for _, s := range fm.List("ingredients") {
		items = append(items, p.ingredients.Parse(s))
	}
	if len(items) == 0 {
		return nil
	}
	return []types.IngredientGroup{{GroupLabel: types.DefaultGroupLabel, Items: items}}
}

// instructionSteps numbers steps by position; any step number in the
// source is ignored.
func instructionSteps(fm *frontmatter.Frontmatter) []types.InstructionStep {
	var steps []types.InstructionStep
	for _, obj := range fm.Objects("instructions") {
		if text := obj.String("instruction", "text"); text != "" {
			steps = append(steps, types.InstructionStep{Index: len(steps) + 1, Text: text})
		}
	}
	for _, s := range fm.List("instructions") {
		steps = append(steps, types.InstructionStep{Index: len(steps) + 1, Text: s})
	}
	return steps
}

func nutrition(m frontmatter.Object) *types.Nutrition {
	if m == nil {
		return nil
	}
	n := types.Nutrition{
		Protein: m.String("protein"),
		Carbs:   m.String("carbs"),
		Fat:     m.String("fat"),
		Fiber:   m.String("fiber"),
		Sugar:   m.String("sugar"),
		Sodium:  m.String("sodium"),
	}
	if cal, ok := m.Int("calories"); ok {
		n.Calories = cal
	}
	return &n
}
