// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/recipe-importer/pkg/types"
)

func TestParse(t *testing.T) {
	p := NewParser(DefaultVocabulary())

	tests := []struct {
		name string
		line string
		want types.IngredientLine
	}{
		{
			name: "mixed number with unit",
			line: "1 1/2 cups flour",
			want: types.IngredientLine{Amount: "1 1/2", Unit: "cups", Name: "flour"},
		},
		{
			name: "no quantity or unit",
			line: "Salt to taste",
			want: types.IngredientLine{Name: "Salt to taste"},
		},
		{
			name: "size word as unit",
			line: "2 large eggs",
			want: types.IngredientLine{Amount: "2", Unit: "large", Name: "eggs"},
		},
		{
			name: "fraction glyph",
			line: "½ tsp baking soda",
			want: types.IngredientLine{Amount: "½", Unit: "tsp", Name: "baking soda"},
		},
		{
			name: "glyph attached to digit",
			line: "1½ cups sugar",
			want: types.IngredientLine{Amount: "1½", Unit: "cups", Name: "sugar"},
		},
		{
			name: "unit with trailing period",
			line: "1 tbsp. butter",
			want: types.IngredientLine{Amount: "1", Unit: "tbsp", Name: "butter"},
		},
		{
			name: "unit is case-insensitive",
			line: "3 Cloves garlic",
			want: types.IngredientLine{Amount: "3", Unit: "Cloves", Name: "garlic"},
		},
		{
			name: "range quantity",
			line: "10-12 oz chicken",
			want: types.IngredientLine{Amount: "10-12", Unit: "oz", Name: "chicken"},
		},
		{
			name: "unit must be a whole word",
			line: "1 garlic bulb",
			want: types.IngredientLine{Amount: "1", Name: "garlic bulb"},
		},
		{
			name: "bare unit becomes the name",
			line: "1 can",
			want: types.IngredientLine{Amount: "1", Name: "can"},
		},
		{
			name: "bare quantity falls back to whole line",
			line: "2",
			want: types.IngredientLine{Name: "2"},
		},
		{
			name: "list marker stripped",
			line: "- 1 lb ground beef",
			want: types.IngredientLine{Amount: "1", Unit: "lb", Name: "ground beef"},
		},
		{
			name: "leading dash removed from name",
			line: "2 - carrots",
			want: types.IngredientLine{Amount: "2", Name: "carrots"},
		},
		{
			name: "hyphen-only prefix is not a quantity",
			line: "-- pinch of salt",
			want: types.IngredientLine{Name: "pinch of salt"},
		},
		{
			name: "empty line",
			line: "   ",
			want: types.IngredientLine{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.line))
		})
	}
}

func TestParse_CustomVocabulary(t *testing.T) {
	p := NewParser(NewVocabulary([]string{"Pinch", " dash "}))

	assert.Equal(t, types.IngredientLine{Amount: "1", Unit: "pinch", Name: "nutmeg"}, p.Parse("1 pinch nutmeg"))
	assert.Equal(t, types.IngredientLine{Amount: "2", Name: "cups milk"}, p.Parse("2 cups milk"))
}

func TestParse_ZeroVocabulary(t *testing.T) {
	var p Parser
	assert.Equal(t, types.IngredientLine{Amount: "2", Name: "cups milk"}, p.Parse("2 cups milk"))
}

func TestVocabulary(t *testing.T) {
	v := NewVocabulary([]string{"cup", "Cups", "", "  "})

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []string{"cup", "cups"}, v.Units())
	assert.True(t, v.IsUnit("CUP."))
	assert.False(t, v.IsUnit("."))
	assert.False(t, v.IsUnit("cupboard"))
}

func TestIsListItem(t *testing.T) {
	assert.True(t, IsListItem("  - flour"))
	assert.True(t, IsListItem("* sugar"))
	assert.False(t, IsListItem("-flour"))
	assert.False(t, IsListItem("1. Mix"))
}
