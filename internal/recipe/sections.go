// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import (
	"strings"
)

// sectionKind classifies a line of a free-text document.
type sectionKind int

const (
	notHeading sectionKind = iota
	ingredientsHeading
	instructionsHeading
	notesHeading
	otherHeading
)

// sectionWords maps the bare heading words to their kinds.
var sectionWords = map[string]sectionKind{
	"ingredient":   ingredientsHeading,
	"ingredients":  ingredientsHeading,
	"instruction":  instructionsHeading,
	"instructions": instructionsHeading,
	"directions":   instructionsHeading,
	"note":         notesHeading,
	"notes":        notesHeading,
}

// heading is one classified line.
type heading struct {
	kind sectionKind
	// text is the heading text without markup.
	text string
	// rest is any content after a "Word:" heading on the same line.
	rest string
	// markdown is set for "#" headings, as opposed to bold labels.
	markdown bool
}

// classifyLine recognizes section headings in the usual wrappings:
// "## Ingredients", "Ingredients:", "**Ingredients:**", "**Note:** text",
// or a bare "Ingredients". Markdown headings and whole-line bold text that
// name no section are otherHeading.
func classifyLine(line string) heading {
	s := strings.TrimSpace(line)
	if s == "" {
		return heading{}
	}

	markdown := strings.HasPrefix(s, "#")
	if markdown {
		s = strings.TrimSpace(strings.TrimLeft(s, "#"))
	}

	wholeBold := false
	if strings.HasPrefix(s, "**") {
		if end := strings.Index(s[2:], "**"); end >= 0 {
			inner := strings.TrimSpace(s[2 : 2+end])
			after := strings.TrimSpace(s[2+end+2:])
			wholeBold = after == "" || after == ":"
			s = strings.TrimSpace(inner + " " + after)
		}
	}

	word, rest, _ := strings.Cut(s, ":")
	word = strings.TrimSpace(word)
	if kind, ok := sectionWords[strings.ToLower(word)]; ok {
		return heading{kind: kind, text: word, rest: strings.TrimSpace(rest)}
	}

	if markdown || wholeBold {
		// "## Notes from Grandma" still opens the notes section.
		first, _, _ := strings.Cut(s, " ")
		first = strings.TrimRight(first, ":.")
		if kind, ok := sectionWords[strings.ToLower(first)]; ok {
			return heading{kind: kind, text: strings.TrimRight(s, ":"), markdown: markdown}
		}
		return heading{kind: otherHeading, text: strings.TrimSpace(strings.TrimRight(s, ":")), markdown: markdown}
	}
	return heading{}
}

// isSectionHeading reports whether line opens an ingredients,
// instructions, or notes section.
func isSectionHeading(line string) bool {
	switch classifyLine(line).kind {
	case ingredientsHeading, instructionsHeading, notesHeading:
		return true
	}
	return false
}
