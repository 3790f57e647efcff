// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a URL-safe identifier from title. Accents are folded,
// letters and digits of any script are kept along with "_", everything else
// is dropped, and runs of spaces and hyphens become a single hyphen. The
// result never starts or ends with a hyphen, and
// Slugify(Slugify(s)) == Slugify(s).
func Slugify(title string) string {
	s := strings.ToLower(norm.NFKD.String(title))

	var b strings.Builder
	b.Grow(len(s))
	sep := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			if sep && b.Len() > 0 {
				b.WriteByte('-')
			}
			sep = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			sep = true
		}
	}
	return norm.NFC.String(b.String())
}

// slugKeySpace namespaces fallback slugs.
var slugKeySpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("recipe-importer/slug"))

// slugFor returns Slugify(title), or a stable hex slug derived from title
// when nothing in the title survives slugging.
func slugFor(title string) string {
	if s := Slugify(title); s != "" || title == "" {
		return s
	}
	id := uuid.NewSHA1(slugKeySpace, []byte(title))
	return strings.ReplaceAll(id.String(), "-", "")[:12]
}

// TitleFromFilename turns a file stem into a display title: underscores and
// hyphens become spaces and each word is capitalized. The rest of each word
// keeps its case.
func TitleFromFilename(stem string) string {
	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(stem))
	caser := cases.Title(language.Und, cases.NoLower)
	return caser.String(strings.Join(words, " "))
}
