// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recipe-importer/internal/classify"
	"github.com/pdiddy/recipe-importer/internal/ingredient"
	"github.com/pdiddy/recipe-importer/pkg/types"
)

func newEngine() *Engine {
	return NewEngine(classify.New(classify.DefaultTables()), ingredient.NewParser(ingredient.DefaultVocabulary()))
}

func TestNormalize_Defaults(t *testing.T) {
	r := Normalize(types.NormalizedRecipe{Title: "  Beef Stew  ", CategoryID: classify.MainDishesID})

	assert.Equal(t, "Beef Stew", r.Title)
	assert.Equal(t, "beef-stew", r.Slug)
	assert.Equal(t, DefaultDifficulty, r.Difficulty)
	assert.Equal(t, DefaultServings, r.Servings)
	assert.Equal(t, DefaultDateCreated, r.DateCreated)
	assert.Equal(t, "", r.Description)

	assert.NotNil(t, r.Tags)
	assert.NotNil(t, r.IngredientGroups)
	assert.NotNil(t, r.Instructions)
	assert.NotNil(t, r.Notes)
	assert.NotNil(t, r.Variations)
	assert.Nil(t, r.Nutrition)
}

func TestNormalize_Collections(t *testing.T) {
	r := Normalize(types.NormalizedRecipe{
		Title: "Chili",
		Tags:  []string{" spicy ", "Spicy", "", "beans", "spicy"},
		IngredientGroups: []types.IngredientGroup{
			{GroupLabel: "", Items: []types.IngredientLine{{Amount: " 1 ", Unit: "lb", Name: " beef "}, {Amount: "2"}}},
			{GroupLabel: "Empty", Items: nil},
			{GroupLabel: "Blank names", Items: []types.IngredientLine{{Name: "  "}}},
		},
		Instructions: []types.InstructionStep{
			{Index: 7, Text: "Brown beef."},
			{Index: 2, Text: "   "},
			{Index: 9, Text: "Simmer."},
		},
		Notes:       []string{"", " good "},
		Variations:  []string{"  "},
		Rating:      9,
		ReviewCount: -3,
		Nutrition:   &types.Nutrition{},
	})

	assert.Equal(t, []string{"spicy", "beans"}, r.Tags)
	require.Len(t, r.IngredientGroups, 1)
	assert.Equal(t, types.DefaultGroupLabel, r.IngredientGroups[0].GroupLabel)
	assert.Equal(t, []types.IngredientLine{{Amount: "1", Unit: "lb", Name: "beef"}}, r.IngredientGroups[0].Items)
	assert.Equal(t, []types.InstructionStep{{Index: 1, Text: "Brown beef."}, {Index: 2, Text: "Simmer."}}, r.Instructions)
	assert.Equal(t, []string{"good"}, r.Notes)
	assert.Empty(t, r.Variations)
	assert.Equal(t, MaxRating, r.Rating)
	assert.Equal(t, 0, r.ReviewCount)
	assert.Nil(t, r.Nutrition)
}

func TestNormalize_Idempotent(t *testing.T) {
	draft := types.NormalizedRecipe{
		Title:        "Crème Brûlée",
		Description:  "Family recipe for Crème Brûlée. A cherished recipe passed down through generations.",
		Tags:         []string{"a", "A"},
		Rating:       -1,
		Instructions: []types.InstructionStep{{Index: 4, Text: "Torch."}},
	}
	once := Normalize(draft)
	assert.Equal(t, once, Normalize(once))
	assert.Equal(t, "creme-brulee", once.Slug)
	assert.Equal(t, "Delicious homemade Crème Brûlée", once.Description)
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name  string
		desc  string
		title string
		want  string
	}{
		{"empty stays empty", "", "Stew", ""},
		{"authored text kept", "Hearty and warm.", "Stew", "Hearty and warm."},
		{"template replaced", "Family recipe for Stew. A cherished recipe passed down through generations.", "Stew", "Delicious homemade Stew"},
		{"boilerplate trimmed from real text", "A cherished recipe passed down through generations. Best in winter.", "Stew", "Best in winter."},
		{"family prefix trimmed", "Family recipe for Stew. Serve with bread.", "Stew", "Serve with bread."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDescription(tt.desc, tt.title))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Grandma's Apple Pie", "grandmas-apple-pie"},
		{"  -- Beef   Stew --  ", "beef-stew"},
		{"Mac & Cheese", "mac-cheese"},
		{"Jalapeño Poppers", "jalapeno-poppers"},
		{"snake_case_title", "snake_case_title"},
		{"100% Whole-Wheat Bread", "100-whole-wheat-bread"},
		{"寿司", "寿司"},
		{"Ωmega Soup", "ωmega-soup"},
		{"한국 불고기", "한국-불고기"},
		{"Crème Brûlée – Mamá's", "creme-brulee-mamas"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Slugify(tt.title)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Slugify(got))
			assert.NotRegexp(t, `^-|-$`, got)
		})
	}
}

func TestNormalize_SlugNeverEmpty(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"寿司", "寿司"},
		{"Pão de Queijo", "pao-de-queijo"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(types.NormalizedRecipe{Title: tt.title}).Slug)
		})
	}

	punct := Normalize(types.NormalizedRecipe{Title: "???"})
	assert.Regexp(t, `^[0-9a-f]{12}$`, punct.Slug)
	assert.Equal(t, punct.Slug, Normalize(punct).Slug)
	assert.NotEqual(t, punct.Slug, Normalize(types.NormalizedRecipe{Title: "!!!"}).Slug)
	assert.Equal(t, punct.Slug, Slugify(punct.Slug))
}

func TestTitleFromFilename(t *testing.T) {
	assert.Equal(t, "Beef Stew", TitleFromFilename("beef_stew"))
	assert.Equal(t, "Mom's BBQ Ribs", TitleFromFilename("mom's-BBQ-ribs"))
	assert.Equal(t, "", TitleFromFilename("__"))
}

func TestEngine_Parse(t *testing.T) {
	e := newEngine()

	tests := []struct {
		name        string
		doc         types.RecipeDocument
		wantDialect types.Dialect
		wantErr     error
		check       func(t *testing.T, r types.NormalizedRecipe)
	}{
		{
			name:        "structured",
			doc:         types.RecipeDocument{Path: "r/breakfast/pancakes.md", Content: "\n---\ntitle: Pancakes\nservings: 0\n---\n"},
			wantDialect: types.DialectStructured,
			check: func(t *testing.T, r types.NormalizedRecipe) {
				assert.Equal(t, "pancakes", r.Slug)
				assert.Equal(t, classify.BreakfastID, r.CategoryID)
				assert.Equal(t, DefaultServings, r.Servings)
				assert.False(t, r.IsFamilyRecipe)
			},
		},
		{
			name:        "free text without headings",
			doc:         types.RecipeDocument{Path: "r/misc/uncle_jims-chili.txt", Content: "Mix and simmer."},
			wantDialect: types.DialectFreeText,
			check: func(t *testing.T, r types.NormalizedRecipe) {
				assert.Equal(t, "Uncle Jims Chili", r.Title)
				assert.Equal(t, "Delicious homemade Uncle Jims Chili", r.Description)
				assert.Empty(t, r.IngredientGroups)
				assert.Empty(t, r.Instructions)
			},
		},
		{
			name:        "unclosed frontmatter",
			doc:         types.RecipeDocument{Path: "r/x/a.md", Content: "---\ntitle: A\n"},
			wantDialect: types.DialectStructured,
			wantErr:     ErrNoFrontmatter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, dialect, err := e.Parse(tt.doc)
			assert.Equal(t, tt.wantDialect, dialect)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assertRecordShape(t, r)
			tt.check(t, r)
		})
	}
}

func TestEngine_InvalidRecord(t *testing.T) {
	e := NewEngineWith(stubParser{draft: types.NormalizedRecipe{Title: "Ghost"}})

	_, _, err := e.Parse(types.RecipeDocument{Path: "a/b.md", Content: "text"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "categoryId is required")
}

func TestEngine_MissingParser(t *testing.T) {
	e := NewEngineWith()
	_, dialect, err := e.Parse(types.RecipeDocument{Path: "a/b.md", Content: "text"})
	assert.Equal(t, types.DialectFreeText, dialect)
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, types.DialectStructured, Detect("---\ntitle: x\n---"))
	assert.Equal(t, types.DialectStructured, Detect("\n\t ---\n"))
	assert.Equal(t, types.DialectFreeText, Detect("## Title\n---\n"))
	assert.Equal(t, types.DialectFreeText, Detect(""))
	assert.Equal(t, types.DialectFreeText, Detect("--- title"))
}

func TestNewContext(t *testing.T) {
	ctx := NewContext("knowledgebase/recipes/beef/pot_roast.md")
	assert.Equal(t, "beef", ctx.Folder)
	assert.Equal(t, "pot_roast", ctx.Stem)
}

// assertRecordShape checks the shape every emitted record must have.
func assertRecordShape(t *testing.T, r types.NormalizedRecipe) {
	t.Helper()
	assert.NotEmpty(t, r.Title)
	assert.NotEmpty(t, r.Slug)
	assert.Equal(t, slugFor(r.Title), r.Slug)
	for _, g := range r.IngredientGroups {
		assert.NotEmpty(t, g.Items)
	}
	for i, s := range r.Instructions {
		assert.Equal(t, i+1, s.Index)
	}
	assert.GreaterOrEqual(t, r.Rating, 0.0)
	assert.LessOrEqual(t, r.Rating, MaxRating)
}

type stubParser struct {
	draft types.NormalizedRecipe
}

func (s stubParser) Dialect() types.Dialect { return types.DialectFreeText }

func (s stubParser) Parse(string, Context) (types.NormalizedRecipe, error) {
	return s.draft, nil
}
