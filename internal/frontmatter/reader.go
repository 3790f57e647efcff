// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package frontmatter

import (
	"strings"
)

// State is the reader's position in the block grammar.
type State int

const (
	// Scanning expects top-level "key: value" lines.
	Scanning State = iota
	// InArray is inside a block list under the current key.
	InArray
	// InArrayObject is inside an object item of a block list.
	InArrayObject
	// InMapping is inside a nested mapping under the current key.
	InMapping
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case InArray:
		return "in-array"
	case InArrayObject:
		return "in-array-object"
	case InMapping:
		return "in-mapping"
	default:
		return "unknown"
	}
}

// reader holds the state machine for one block.
type reader struct {
	fm    *Frontmatter
	state State

	// key is the top-level key whose collection is being read. pending is
	// true while key had an empty value and its shape is not yet known.
	key     string
	pending bool

	list    []string
	objects []Object
	obj     Object
	mapping Object
}

// Parse reads block (the text between the delimiters) into a Frontmatter.
func Parse(block string) *Frontmatter {
	r := &reader{fm: New()}
	lines := strings.Split(block, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " \t\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			r.blank(nextNonBlank(lines, i+1))
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		r.step(line, trimmed)
	}
	r.finish()
	return r.fm
}

// Read splits text and parses its frontmatter block. ok is false when the
// document has no delimited block.
func Read(text string) (fm *Frontmatter, body string, ok bool) {
	block, body, ok := Split(text)
	if !ok {
		return nil, "", false
	}
	return Parse(block), body, true
}

// step feeds one non-blank line to the machine. A line that closes the
// current state is re-dispatched in Scanning.
func (r *reader) step(line, trimmed string) {
	indented := indentOf(line) > 0

	switch r.state {
	case Scanning:
		r.scan(line, trimmed, indented)

	case InArray:
		switch {
		case isItem(trimmed):
			r.item(itemText(trimmed))
		case !indented:
			r.finish()
			r.scan(line, trimmed, indented)
		}

	case InArrayObject:
		switch {
		case isItem(trimmed):
			r.closeObject()
			r.state = InArray
			r.item(itemText(trimmed))
		case indented:
			if k, v, ok := splitKey(trimmed); ok {
				r.obj[k] = parseScalar(v)
			}
		default:
			r.finish()
			r.scan(line, trimmed, indented)
		}

	case InMapping:
		if !indented {
			r.finish()
			r.scan(line, trimmed, indented)
			return
		}
		if k, v, ok := splitKey(trimmed); ok {
			r.mapping[k] = parseScalar(v)
		}
	}
}

// scan handles a line in the Scanning state.
func (r *reader) scan(line, trimmed string, indented bool) {
	if r.pending {
		switch {
		case isItem(trimmed):
			r.state = InArray
			r.list = []string{}
			r.item(itemText(trimmed))
			return
		case indented:
			if k, v, ok := splitKey(trimmed); ok {
				r.state = InMapping
				r.mapping = Object{k: parseScalar(v)}
				return
			}
		}
		r.pending = false
	}

	if indented {
		return
	}
	k, v, ok := splitKey(trimmed)
	if !ok {
		return
	}
	r.key = k
	if strings.TrimSpace(v) == "" {
		r.pending = true
		r.fm.Set(k, Value{Kind: KindString})
		return
	}
	r.pending = false
	r.fm.Set(k, parseScalar(v))
}

// item adds one list entry. An entry shaped like "key: value" with a
// lower-case key opens an object; "Tip: use butter" stays a string.
func (r *reader) item(text string) {
	if k, v, ok := splitKey(text); ok && k[0] >= 'a' && k[0] <= 'z' {
		r.obj = Object{k: parseScalar(v)}
		r.state = InArrayObject
		return
	}
	if text == "" {
		return
	}
	r.list = append(r.list, parseScalar(text).String())
}

// blank applies the blank-line rule: a list or mapping ends unless the
// next non-blank line continues it.
func (r *reader) blank(next string) {
	switch r.state {
	case InArray, InArrayObject:
		if next != "" && isItem(strings.TrimSpace(next)) {
			return
		}
		r.finish()
	case InMapping:
		if next != "" && indentOf(next) > 0 {
			return
		}
		r.finish()
	}
}

func (r *reader) closeObject() {
	if r.obj != nil {
		r.objects = append(r.objects, r.obj)
		r.obj = nil
	}
}

// finish commits any open collection under the current key and returns
// to Scanning.
func (r *reader) finish() {
	switch r.state {
	case InArrayObject:
		r.closeObject()
		fallthrough
	case InArray:
		v := Value{Kind: KindList, List: r.list}
		if v.List == nil {
			v.List = []string{}
		}
		if len(r.objects) > 0 {
			v.Kind = KindObjects
			v.Objects = r.objects
		}
		r.fm.Set(r.key, v)
	case InMapping:
		r.fm.Set(r.key, Value{Kind: KindMapping, Mapping: r.mapping})
	}
	r.state = Scanning
	r.pending = false
	r.list, r.objects, r.obj, r.mapping = nil, nil, nil, nil
}

func isItem(trimmed string) bool {
	return trimmed == "-" || strings.HasPrefix(trimmed, "- ")
}

func itemText(trimmed string) string {
	return strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func nextNonBlank(lines []string, from int) string {
	for i := from; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return strings.TrimRight(lines[i], " \t\r")
		}
	}
	return ""
}

// splitKey splits "key: value". Keys are identifiers of letters, digits,
// underscores, and hyphens; a colon inside a value is kept.
func splitKey(s string) (key, value string, ok bool) {
	idx := strings.IndexByte(s, ':')
	if idx <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(s[:idx])
	if key == "" || !isIdent(key) {
		return "", "", false
	}
	value = s[idx+1:]
	if value != "" && value[0] != ' ' && value[0] != '\t' {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}

func isIdent(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
