// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Dialect identifies which parser a recipe document is routed to.
type Dialect string

const (
	// DialectStructured marks documents that open with a frontmatter block.
	DialectStructured Dialect = "structured"
	// DialectFreeText marks loose markdown or prose documents.
	DialectFreeText Dialect = "free_text"
)

// DefaultGroupLabel is the label given to ingredient groups that have no
// heading of their own.
const DefaultGroupLabel = "Ingredients"

// RecipeDocument is one input file as read by the loader. It is never
// mutated after loading.
type RecipeDocument struct {
	// Path is the filesystem path the content was read from. The parent
	// directory name is the source folder used for classification.
	Path string `json:"path" yaml:"path"`

	// Content is the raw text of the file.
	Content string `json:"-" yaml:"-"`
}

// IngredientLine is one parsed ingredient. Amount and Unit may be empty;
// Name is non-empty whenever the source line had any text.
type IngredientLine struct {
	Amount string `json:"amount" yaml:"amount"`
	Unit   string `json:"unit" yaml:"unit"`
	Name   string `json:"name" yaml:"name" validate:"required"`
}

// IngredientGroup is a labelled list of ingredients.
type IngredientGroup struct {
	GroupLabel string           `json:"groupLabel" yaml:"groupLabel" validate:"required"`
	Items      []IngredientLine `json:"items" yaml:"items" validate:"min=1,dive"`
}

// InstructionStep is one numbered step. Index values are assigned by
// position and run 1..N without gaps.
type InstructionStep struct {
	Index int    `json:"index" yaml:"index" validate:"gte=1"`
	Text  string `json:"text" yaml:"text" validate:"required"`
}

// Nutrition carries the optional per-serving nutrition panel read from
// structured frontmatter.
type Nutrition struct {
	Calories int    `json:"calories,omitempty" yaml:"calories,omitempty"`
	Protein  string `json:"protein,omitempty" yaml:"protein,omitempty"`
	Carbs    string `json:"carbs,omitempty" yaml:"carbs,omitempty"`
	Fat      string `json:"fat,omitempty" yaml:"fat,omitempty"`
	Fiber    string `json:"fiber,omitempty" yaml:"fiber,omitempty"`
	Sugar    string `json:"sugar,omitempty" yaml:"sugar,omitempty"`
	Sodium   string `json:"sodium,omitempty" yaml:"sodium,omitempty"`
}

// IsZero reports whether no nutrition field is set.
func (n Nutrition) IsZero() bool {
	return n == Nutrition{}
}

// NormalizedRecipe is the canonical record produced for every parsed
// document, regardless of dialect. Collections are always non-nil so they
// serialize as arrays.
type NormalizedRecipe struct {
	Title            string            `json:"title" yaml:"title" validate:"required"`
	Slug             string            `json:"slug" yaml:"slug" validate:"required"`
	Description      string            `json:"description" yaml:"description"`
	CategoryID       string            `json:"categoryId" yaml:"categoryId" validate:"required"`
	Subcategory      string            `json:"subcategory" yaml:"subcategory"`
	Cuisine          string            `json:"cuisine" yaml:"cuisine"`
	Difficulty       string            `json:"difficulty" yaml:"difficulty"`
	Servings         int               `json:"servings" yaml:"servings" validate:"gte=0"`
	PrepTime         string            `json:"prepTime" yaml:"prepTime"`
	CookTime         string            `json:"cookTime" yaml:"cookTime"`
	TotalTime        string            `json:"totalTime" yaml:"totalTime"`
	RestTime         string            `json:"restTime" yaml:"restTime"`
	Tags             []string          `json:"tags" yaml:"tags"`
	IngredientGroups []IngredientGroup `json:"ingredientGroups" yaml:"ingredientGroups" validate:"dive"`
	Instructions     []InstructionStep `json:"instructions" yaml:"instructions" validate:"dive"`
	Notes            []string          `json:"notes" yaml:"notes"`
	Variations       []string          `json:"variations" yaml:"variations"`
	Storage          string            `json:"storage" yaml:"storage"`
	Nutrition        *Nutrition        `json:"nutrition,omitempty" yaml:"nutrition,omitempty"`
	IsFamilyRecipe   bool              `json:"isFamilyRecipe" yaml:"isFamilyRecipe"`
	Featured         bool              `json:"featured" yaml:"featured"`
	Rating           float64           `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	ReviewCount      int               `json:"reviewCount" yaml:"reviewCount" validate:"gte=0"`
	DateCreated      string            `json:"dateCreated" yaml:"dateCreated"`
	SourceFolder     string            `json:"sourceFolder" yaml:"sourceFolder"`
}

// IngredientCount returns the number of ingredient items across all groups.
func (r NormalizedRecipe) IngredientCount() int {
	n := 0
	for _, g := range r.IngredientGroups {
		n += len(g.Items)
	}
	return n
}
