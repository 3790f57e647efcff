// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBlock = `title: "Grandma's Apple Pie"
category: desserts
servings: 8
rating: 4.5
prep_time: 30 minutes
featured: true
tags: [pie, "fall baking", apple]
ingredients:
  - amount: 1 1/2
    unit: cups
    ingredient: flour
  - amount: 6
    unit: ""
    ingredient: apples, sliced
instructions:
  - step: 1
    instruction: Make the crust.
  - step: 2
    instruction: "Fill and bake: 45 minutes."
notes:
  - Use tart apples.
  - Tip: chill the dough.
nutrition:
  calories: 320
  protein: 4g
storage: Keep covered.`

func TestParse_Scalars(t *testing.T) {
	fm := Parse(sampleBlock)

	assert.Equal(t, "Grandma's Apple Pie", fm.String("title"))
	assert.Equal(t, "desserts", fm.String("category"))

	n, ok := fm.Int("servings")
	require.True(t, ok)
	assert.Equal(t, 8, n)

	r, ok := fm.Float("rating")
	require.True(t, ok)
	assert.InDelta(t, 4.5, r, 1e-9)

	assert.Equal(t, "30 minutes", fm.String("prepTime", "prep_time"))

	b, ok := fm.Bool("featured")
	require.True(t, ok)
	assert.True(t, b)

	assert.Equal(t, "Keep covered.", fm.String("storage"))
}

func TestParse_FlowList(t *testing.T) {
	fm := Parse(sampleBlock)
	assert.Equal(t, []string{"pie", "fall baking", "apple"}, fm.List("tags"))
}

func TestParse_ObjectList(t *testing.T) {
	fm := Parse(sampleBlock)

	ings := fm.Objects("ingredients")
	require.Len(t, ings, 2)
	assert.Equal(t, "1 1/2", ings[0].String("amount"))
	assert.Equal(t, "cups", ings[0].String("unit"))
	assert.Equal(t, "flour", ings[0].String("ingredient"))
	assert.Equal(t, "6", ings[1].String("amount"))
	assert.Equal(t, "", ings[1].String("unit"))
	assert.Equal(t, "apples, sliced", ings[1].String("ingredient"))

	steps := fm.Objects("instructions")
	require.Len(t, steps, 2)
	assert.Equal(t, "Fill and bake: 45 minutes.", steps[1].String("instruction"))
	n, ok := steps[1].Int("step")
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestParse_StringList(t *testing.T) {
	fm := Parse(sampleBlock)
	assert.Equal(t, []string{"Use tart apples.", "Tip: chill the dough."}, fm.List("notes"))
	assert.Empty(t, fm.Objects("notes"))
}

func TestParse_Mapping(t *testing.T) {
	fm := Parse(sampleBlock)

	m := fm.Mapping("nutrition")
	require.NotNil(t, m)
	cal, ok := m.Int("calories")
	require.True(t, ok)
	assert.Equal(t, 320, cal)
	assert.Equal(t, "4g", m.String("protein"))
}

func TestParse_KeyOrder(t *testing.T) {
	fm := Parse("b: 1\na: 2\nb: 3")
	assert.Equal(t, []string{"b", "a"}, fm.Keys())
	n, _ := fm.Int("b")
	assert.Equal(t, 3, n)
}

func TestParse_BlankLineRule(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  []string
		after string
	}{
		{
			name:  "blank between items keeps the list open",
			block: "tags:\n  - a\n\n  - b\ntitle: x",
			want:  []string{"a", "b"},
			after: "x",
		},
		{
			name:  "blank before a key closes the list",
			block: "tags:\n  - a\n\ntitle: x",
			want:  []string{"a"},
			after: "x",
		},
		{
			name:  "unindented items",
			block: "tags:\n- a\n- b\ntitle: x",
			want:  []string{"a", "b"},
			after: "x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := Parse(tt.block)
			assert.Equal(t, tt.want, fm.List("tags"))
			assert.Equal(t, tt.after, fm.String("title"))
		})
	}
}

func TestParse_EmptyValueWithoutCollection(t *testing.T) {
	fm := Parse("description:\ntitle: Soup")
	v, ok := fm.Get("description")
	require.True(t, ok)
	assert.Equal(t, KindString, v.Kind)
	assert.Equal(t, "", v.Str)
	assert.Equal(t, "Soup", fm.String("title"))
}

func TestParse_SkipsUnknownLines(t *testing.T) {
	fm := Parse("# comment\njust some text\n  stray indent: 1\ntitle: Stew")
	assert.Equal(t, []string{"title"}, fm.Keys())
}

func TestParseScalar(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
		str  string
	}{
		{raw: "42", kind: KindInt, str: "42"},
		{raw: "-3", kind: KindInt, str: "-3"},
		{raw: "2.5", kind: KindFloat, str: "2.5"},
		{raw: "007", kind: KindInt, str: "007"},
		{raw: "1.50", kind: KindFloat, str: "1.50"},
		{raw: "+4", kind: KindInt, str: "+4"},
		{raw: "inf", kind: KindString, str: "inf"},
		{raw: "'it''s'", kind: KindString, str: "it's"},
		{raw: `"a \"b\""`, kind: KindString, str: `a "b"`},
		{raw: "1 1/2", kind: KindString, str: "1 1/2"},
		{raw: "", kind: KindString, str: ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := parseScalar(tt.raw)
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, tt.str, v.String())
		})
	}
}

func TestParse_NumbersKeepSourceText(t *testing.T) {
	fm := Parse("title: 007\nservings: 04\ningredients:\n  - amount: 1.50\n    unit: cup\n    ingredient: milk")

	assert.Equal(t, "007", fm.String("title"))
	n, ok := fm.Int("servings")
	require.True(t, ok)
	assert.Equal(t, 4, n)

	items := fm.Objects("ingredients")
	require.Len(t, items, 1)
	assert.Equal(t, "1.50", items[0].String("amount"))
	f, ok := items[0]["amount"].AsFloat()
	require.True(t, ok)
	assert.InDelta(t, 1.5, f, 1e-9)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantBlock string
		wantBody  string
		wantOK    bool
	}{
		{
			name:      "block and body",
			text:      "---\ntitle: Stew\n---\n\n# Stew\n",
			wantBlock: "title: Stew",
			wantBody:  "# Stew",
			wantOK:    true,
		},
		{
			name:      "leading whitespace ignored",
			text:      "\n\n  ---\r\ntitle: Stew\r\n---\r\n",
			wantBlock: "title: Stew\r",
			wantOK:    true,
		},
		{
			name: "unclosed block",
			text: "---\ntitle: Stew\n",
		},
		{
			name: "no delimiter",
			text: "# Stew\n---\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, body, ok := Split(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantBlock, block)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestHasDelimiter(t *testing.T) {
	assert.True(t, HasDelimiter("  \n---\nx"))
	assert.True(t, HasDelimiter("---"))
	assert.False(t, HasDelimiter("----\n"))
	assert.False(t, HasDelimiter("# title\n---"))
}
