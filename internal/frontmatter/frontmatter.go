// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package frontmatter reads the restricted YAML subset used in recipe
// frontmatter blocks.
//
// The reader is an explicit line-driven state machine. It understands
// scalar "key: value" pairs, inline flow lists, block lists of strings,
// block lists of flat objects, and one level of nested mapping. Anything
// else is skipped, so reading never fails.
package frontmatter

import (
	"strings"
)

// Delimiter is the line that opens and closes a frontmatter block.
const Delimiter = "---"

// Frontmatter is an ordered mapping of keys to values. Each key appears at
// most once; setting an existing key replaces its value in place.
type Frontmatter struct {
	keys   []string
	values map[string]Value
}

// New returns an empty Frontmatter.
func New() *Frontmatter {
	return &Frontmatter{values: make(map[string]Value)}
}

// Set stores v under key.
func (f *Frontmatter) Set(key string, v Value) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = v
}

// Get returns the value for key.
func (f *Frontmatter) Get(key string) (Value, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Keys returns keys in first-seen order.
func (f *Frontmatter) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Len returns the number of keys.
func (f *Frontmatter) Len() int {
	return len(f.keys)
}

// lookup returns the first present key among aliases.
func (f *Frontmatter) lookup(aliases ...string) (Value, bool) {
	for _, k := range aliases {
		if v, ok := f.values[k]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// String returns the first present alias as a trimmed string, or "".
func (f *Frontmatter) String(aliases ...string) string {
	v, _ := f.lookup(aliases...)
	return strings.TrimSpace(v.String())
}

// Int returns the first present alias as an int.
func (f *Frontmatter) Int(aliases ...string) (int, bool) {
	v, ok := f.lookup(aliases...)
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// Float returns the first present alias as a float64.
func (f *Frontmatter) Float(aliases ...string) (float64, bool) {
	v, ok := f.lookup(aliases...)
	if !ok {
		return 0, false
	}
	return v.AsFloat()
}

// Bool returns the first present alias as a bool.
func (f *Frontmatter) Bool(aliases ...string) (bool, bool) {
	v, ok := f.lookup(aliases...)
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// List returns the string items of the first present alias. A non-empty
// scalar is returned as a one-element list.
func (f *Frontmatter) List(aliases ...string) []string {
	v, ok := f.lookup(aliases...)
	if !ok {
		return nil
	}
	switch v.Kind {
	case KindList, KindObjects:
		return v.List
	case KindString, KindInt, KindFloat:
		if s := strings.TrimSpace(v.String()); s != "" {
			return []string{s}
		}
	}
	return nil
}

// Objects returns the object items of the first present alias.
func (f *Frontmatter) Objects(aliases ...string) []Object {
	v, ok := f.lookup(aliases...)
	if !ok {
		return nil
	}
	return v.Objects
}

// Mapping returns the nested mapping of the first present alias.
func (f *Frontmatter) Mapping(aliases ...string) Object {
	v, ok := f.lookup(aliases...)
	if !ok || v.Kind != KindMapping {
		return nil
	}
	return v.Mapping
}

// Split separates a document into its frontmatter block and body. Leading
// whitespace is ignored. ok is false when the document does not open with a
// delimiter line or the block is never closed.
func Split(text string) (block, body string, ok bool) {
	lines := strings.Split(strings.TrimLeft(text, " \t\r\n\ufeff"), "\n")
	if len(lines) == 0 || !isDelimiter(lines[0]) {
		return "", "", false
	}
	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			block = strings.Join(lines[1:i], "\n")
			body = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			return block, body, true
		}
	}
	return "", "", false
}

// HasDelimiter reports whether text, after leading whitespace, opens with a
// delimiter line.
func HasDelimiter(text string) bool {
	s := strings.TrimLeft(text, " \t\r\n\ufeff")
	first, _, _ := strings.Cut(s, "\n")
	return isDelimiter(first)
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == Delimiter
}
