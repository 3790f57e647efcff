// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import "errors"

var (
	// ErrNoFrontmatter reports a structured document without a closed
	// delimiter pair.
	ErrNoFrontmatter = errors.New("no frontmatter block")

	// ErrMissingTitle reports a structured document whose frontmatter has
	// no title.
	ErrMissingTitle = errors.New("frontmatter has no title")

	// ErrInvalid wraps validation failures of an assembled record.
	ErrInvalid = errors.New("invalid recipe")
)

// Skippable reports whether err marks a document that yields no record but
// should not count as a read failure.
func Skippable(err error) bool {
	return errors.Is(err, ErrNoFrontmatter) || errors.Is(err, ErrMissingTitle) || errors.Is(err, ErrInvalid)
}
