// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/recipe-importer/internal/classify"
	"github.com/pdiddy/recipe-importer/internal/ingredient"
	"github.com/pdiddy/recipe-importer/pkg/types"
)

// Free-text records carry these fixed values.
const (
	FreeTextCuisine = "American"
	FamilyRecipeTag = "family-recipe"

	freeTextDescription = "Family recipe for %s. A cherished recipe passed down through generations."

	// Steps and paragraphs at or below these lengths are noise.
	minStepLen      = 5
	minParagraphLen = 10
)

var (
	recipeNumberPrefix = regexp.MustCompile(`(?i)^recipe\s*#?\s*\d+\s*[:.\-]?\s*`)
	numberedStep       = regexp.MustCompile(`^\d+[.):]\s*(.+)$`)
	bulletStep         = regexp.MustCompile(`^[*-]\s+(.+)$`)
	paragraphBreak     = regexp.MustCompile(`\n[ \t]*\n`)
)

// FreeTextParser reads loose markdown recipes by their headings and list
// markers.
type FreeTextParser struct {
	classifier  *classify.Classifier
	ingredients *ingredient.Parser
}

// NewFreeTextParser returns a parser over the given tables.
func NewFreeTextParser(c *classify.Classifier, ip *ingredient.Parser) *FreeTextParser {
	return &FreeTextParser{classifier: c, ingredients: ip}
}

// Dialect implements Parser.
func (p *FreeTextParser) Dialect() types.Dialect {
	return types.DialectFreeText
}

// Parse implements Parser. It fails only when neither the document nor the
// file name yields a title.
func (p *FreeTextParser) Parse(text string, ctx Context) (types.NormalizedRecipe, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	title := extractTitle(lines)
	if title == "" {
		title = TitleFromFilename(ctx.Stem)
	}
	if title == "" {
		return types.NormalizedRecipe{}, ErrMissingTitle
	}

	sec := splitSections(lines)
	cls := p.classifier.Classify(classify.Input{Title: title, Folder: ctx.Folder})

	r := types.NormalizedRecipe{
		Title:            title,
		Description:      fmt.Sprintf(freeTextDescription, title),
		CategoryID:       cls.CategoryID,
		Subcategory:      cls.Subcategory,
		Cuisine:          FreeTextCuisine,
		Difficulty:       DefaultDifficulty,
		Servings:         DefaultServings,
		Tags:             []string{FamilyRecipeTag},
		IngredientGroups: p.ingredientGroups(sec.ingredients),
		Instructions:     parseSteps(sec.instructions),
		IsFamilyRecipe:   true,
		DateCreated:      DefaultDateCreated,
		SourceFolder:     ctx.Folder,
	}
	if note := strings.TrimSpace(strings.Join(sec.notes, "\n")); note != "" {
		r.Notes = []string{note}
	}
	return r, nil
}

// extractTitle returns the first level-2 heading that is not a section
// heading, with any "Recipe #N:" prefix removed.
func extractTitle(lines []string) string {
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if !strings.HasPrefix(s, "##") || strings.HasPrefix(s, "###") {
			continue
		}
		if isSectionHeading(s) {
			continue
		}
		t := strings.TrimSpace(s[2:])
		t = recipeNumberPrefix.ReplaceAllString(t, "")
		t = strings.TrimSpace(strings.Trim(t, "*"))
		if t != "" {
			return t
		}
	}
	return ""
}

// spanLine is one line of the ingredients span. Label lines open a new
// ingredient group.
type spanLine struct {
	text  string
	label bool
}

type sections struct {
	ingredients  []spanLine
	instructions []string
	notes        []string
}

// splitSections walks the document once. The ingredients span runs from
// the first Ingredients heading to an Instructions or Notes heading; the
// instructions span runs from the first Instructions heading to the next
// markdown or section heading; notes run from the first Notes heading to
// the end.
func splitSections(lines []string) sections {
	const (
		none = iota
		inIngredients
		inInstructions
		inNotes
	)

	var sec sections
	mode := none
	seenIngredients, seenInstructions := false, false

	for _, line := range lines {
		if mode == inNotes {
			sec.notes = append(sec.notes, line)
			continue
		}

		h := classifyLine(line)
		switch h.kind {
		case ingredientsHeading:
			switch {
			case !seenIngredients:
				seenIngredients = true
				mode = inIngredients
				if h.rest != "" {
					sec.ingredients = append(sec.ingredients, spanLine{text: h.rest})
				}
			case mode == inIngredients:
				sec.ingredients = append(sec.ingredients, spanLine{text: h.text, label: true})
			default:
				mode = none
			}

		case instructionsHeading:
			if seenInstructions {
				mode = none
				continue
			}
			seenInstructions = true
			mode = inInstructions
			if h.rest != "" {
				sec.instructions = append(sec.instructions, h.rest)
			}

		case notesHeading:
			mode = inNotes
			if h.rest != "" {
				sec.notes = append(sec.notes, h.rest)
			}

		case otherHeading:
			switch mode {
			case inIngredients:
				sec.ingredients = append(sec.ingredients, spanLine{text: h.text, label: true})
			case inInstructions:
				// Bold labels such as "**For the crust:**" sub-divide the
				// steps; only a markdown heading ends them.
				if h.markdown {
					mode = none
				}
			}

		default:
			switch mode {
			case inIngredients:
				sec.ingredients = append(sec.ingredients, spanLine{text: line})
			case inInstructions:
				sec.instructions = append(sec.instructions, line)
			}
		}
	}
	return sec
}

// ingredientGroups parses bullet lines of the span. Sub-headings inside the
// span label the groups that follow them.
func (p *FreeTextParser) ingredientGroups(span []spanLine) []types.IngredientGroup {
	var groups []types.IngredientGroup
	cur := types.IngredientGroup{GroupLabel: types.DefaultGroupLabel}

	for _, l := range span {
		if l.label {
			if len(cur.Items) > 0 {
				groups = append(groups, cur)
			}
			cur = types.IngredientGroup{GroupLabel: l.text}
			continue
		}
		if !ingredient.IsListItem(l.text) {
			continue
		}
		if item := p.ingredients.Parse(l.text); item.Name != "" {
			cur.Items = append(cur.Items, item)
		}
	}
	if len(cur.Items) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// parseSteps applies the numbered/bullet rule and falls back to paragraphs
// only when that rule finds nothing.
func parseSteps(lines []string) []types.InstructionStep {
	var steps []types.InstructionStep
	for _, line := range lines {
		text := markedStep(strings.TrimSpace(line))
		if utf8.RuneCountInString(text) > minStepLen {
			steps = append(steps, types.InstructionStep{Index: len(steps) + 1, Text: text})
		}
	}
	if len(steps) > 0 {
		return steps
	}

	for _, para := range paragraphBreak.Split(strings.Join(lines, "\n"), -1) {
		para = strings.Join(strings.Fields(para), " ")
		if utf8.RuneCountInString(para) <= minParagraphLen {
			continue
		}
		if strings.HasPrefix(strings.ToLower(para), "note") {
			continue
		}
		steps = append(steps, types.InstructionStep{Index: len(steps) + 1, Text: para})
	}
	return steps
}

// markedStep returns the text after a "1." / "1)" / "1:" or "-" / "*"
// marker, or "" when the line has no marker.
func markedStep(line string) string {
	if m := numberedStep.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := bulletStep.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
