// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

// Category identifiers are the content store document ids of the recipe
// categories.
const (
	MainDishesID = "6d1db21c-b896-40c1-b84c-74074bf632b9"
	BreakfastID  = "9d8f6746-12af-44be-8c44-c5db86d52a36"
	DessertsID   = "56230a66-83f0-4a25-9a50-8bfd17d08448"
	AppetizersID = "09c60c2c-0641-4f53-b4ff-1395595cfdc3"
)

// Category is one recipe category.
type Category struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// SubcategoryRule labels a title that contains any of Keywords.
type SubcategoryRule struct {
	Keywords []string `yaml:"keywords" json:"keywords"`
	Label    string   `yaml:"label" json:"label"`
}

// Tables is the immutable lookup data the classifier runs on. Keys in
// Folders and Aliases are lower-case; values are category ids.
type Tables struct {
	Categories []Category        `yaml:"categories" json:"categories"`
	DefaultID  string            `yaml:"default" json:"default"`
	Folders    map[string]string `yaml:"folders" json:"folders"`

	// Aliases maps explicit category names found in frontmatter to ids.
	Aliases map[string]string `yaml:"aliases" json:"aliases"`

	// Keyword sets are matched as substrings of the lower-cased title.
	Dessert     []string `yaml:"dessert" json:"dessert"`
	SavoryBread []string `yaml:"savory_bread" json:"savory_bread"`
	Breakfast   []string `yaml:"breakfast" json:"breakfast"`
	Appetizer   []string `yaml:"appetizer" json:"appetizer"`
	DessertID   string   `yaml:"dessert_id" json:"dessert_id"`
	BreakfastID string   `yaml:"breakfast_id" json:"breakfast_id"`
	AppetizerID string   `yaml:"appetizer_id" json:"appetizer_id"`

	Subcategories []SubcategoryRule `yaml:"subcategories" json:"subcategories"`
}

// DefaultTables returns the built-in tables.
func DefaultTables() Tables {
	return Tables{
		Categories: []Category{
			{ID: MainDishesID, Name: "Main Dishes"},
			{ID: BreakfastID, Name: "Breakfast"},
			{ID: DessertsID, Name: "Desserts"},
			{ID: AppetizersID, Name: "Appetizers & Snacks"},
		},
		DefaultID: MainDishesID,
		Folders: map[string]string{
			"asian":     MainDishesID,
			"italian":   MainDishesID,
			"mexican":   MainDishesID,
			"soups":     MainDishesID,
			"beef":      MainDishesID,
			"pork":      MainDishesID,
			"poultry":   MainDishesID,
			"breakfast": BreakfastID,
			"desert":    DessertsID,
			"dessert":   DessertsID,
			"desserts":  DessertsID,
			"sides":     AppetizersID,
		},
		Aliases: map[string]string{
			"main dishes":         MainDishesID,
			"main-dishes":         MainDishesID,
			"main":                MainDishesID,
			"dinner":              MainDishesID,
			"breakfast":           BreakfastID,
			"dessert":             DessertsID,
			"desserts":            DessertsID,
			"appetizers":          AppetizersID,
			"appetizers & snacks": AppetizersID,
			"snacks":              AppetizersID,
			"sides":               AppetizersID,
		},
		Dessert: []string{
			"pie", "cake", "cookie", "muffin", "scone", "biscotti", "fudge",
			"candy", "custard", "cheesecake", "tart", "brownie", "frosting",
		},
		SavoryBread: []string{
			"corn bread", "cornbread", "french bread", "hot bread",
			"beef bread", "sausage bread", "loaf",
		},
		Breakfast:   []string{"breakfast", "pancake", "waffle", "omelet", "morning"},
		Appetizer:   []string{"dip", "appetizer", "snack", "nuts", "spread"},
		DessertID:   DessertsID,
		BreakfastID: BreakfastID,
		AppetizerID: AppetizersID,
		Subcategories: []SubcategoryRule{
			{Keywords: []string{"pie"}, Label: "Pies"},
			{Keywords: []string{"cake"}, Label: "Cakes"},
			{Keywords: []string{"cookie", "biscotti"}, Label: "Cookies"},
			{Keywords: []string{"muffin"}, Label: "Muffins"},
			{Keywords: []string{"scone"}, Label: "Scones"},
			{Keywords: []string{"bread", "biscuit"}, Label: "Breads & Biscuits"},
			{Keywords: []string{"casserole"}, Label: "Casseroles"},
			{Keywords: []string{"soup", "chowder"}, Label: "Soups"},
			{Keywords: []string{"salad"}, Label: "Salads"},
		},
	}
}

// CategoryName returns the display name for id, or id itself when unknown.
func (t Tables) CategoryName(id string) string {
	for _, c := range t.Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
