// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package frontmatter

import (
	"strconv"
	"strings"
)

// Kind identifies the shape of a frontmatter value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindList
	KindObjects
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	case KindObjects:
		return "objects"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Object is a flat mapping of scalar values, used for list-of-object
// entries and nested mappings.
type Object map[string]Value

// String returns the first present key among keys as a string.
func (o Object) String(keys ...string) string {
	for _, k := range keys {
		if v, ok := o[k]; ok {
			return v.String()
		}
	}
	return ""
}

// Int returns the first present key among keys as an int.
func (o Object) Int(keys ...string) (int, bool) {
	for _, k := range keys {
		if v, ok := o[k]; ok {
			return v.AsInt()
		}
	}
	return 0, false
}

// Value is one parsed frontmatter value. Exactly the fields matching Kind
// are meaningful, except that a list of objects keeps any plain string
// items in List.
type Value struct {
	Kind    Kind
	Str     string
	Int     int
	Float   float64
	List    []string
	Objects []Object
	Mapping Object

	// Raw is the source text of a numeric scalar ("007", "1.50").
	Raw string
}

// String renders a scalar value as text. Numbers keep their source
// spelling. Collections render empty.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		if v.Raw != "" {
			return v.Raw
		}
		return strconv.Itoa(v.Int)
	case KindFloat:
		if v.Raw != "" {
			return v.Raw
		}
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	default:
		return ""
	}
}

// AsInt converts scalar values to int. Floats are truncated; numeric
// strings are parsed.
func (v Value) AsInt() (int, bool) {
	switch v.Kind {
	case KindInt:
		return v.Int, true
	case KindFloat:
		return int(v.Float), true
	case KindString:
		n, err := strconv.Atoi(strings.TrimSpace(v.Str))
		return n, err == nil
	default:
		return 0, false
	}
}

// AsFloat converts scalar values to float64.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AsBool interprets true/false/yes/no (any case) and non-zero numbers.
func (v Value) AsBool() (bool, bool) {
	switch v.Kind {
	case KindInt:
		return v.Int != 0, true
	case KindFloat:
		return v.Float != 0, true
	case KindString:
		switch strings.ToLower(strings.TrimSpace(v.Str)) {
		case "true", "yes", "on":
			return true, true
		case "false", "no", "off":
			return false, true
		}
	}
	return false, false
}

// parseScalar reads one scalar token: a quoted string, an int, a float, an
// inline flow list, or a bare string.
func parseScalar(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{Kind: KindString}
	}

	if unq, ok := unquote(s); ok {
		return Value{Kind: KindString, Str: unq}
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return Value{Kind: KindList, List: parseFlowList(s[1 : len(s)-1])}
	}

	if looksNumeric(s) {
		if n, err := strconv.Atoi(s); err == nil {
			return Value{Kind: KindInt, Int: n, Raw: s}
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Value{Kind: KindFloat, Float: f, Raw: s}
		}
	}

	return Value{Kind: KindString, Str: s}
}

// looksNumeric guards strconv against words like "inf" or "NaN".
func looksNumeric(s string) bool {
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
		case (r == '-' || r == '+') && i == 0:
		default:
			return false
		}
	}
	return true
}

func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	first, last := s[0], s[len(s)-1]
	switch {
	case first == '"' && last == '"':
		if u, err := strconv.Unquote(s); err == nil {
			return u, true
		}
		return s[1 : len(s)-1], true
	case first == '\'' && last == '\'':
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'"), true
	}
	return "", false
}

func parseFlowList(inner string) []string {
	out := []string{}
	for _, part := range strings.Split(inner, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if unq, ok := unquote(part); ok {
			part = unq
		}
		out = append(out, part)
	}
	return out
}
