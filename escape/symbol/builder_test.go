package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name string
		refs []Reference
	}{
		{"empty set", nil},
		{"name too short", []Reference{{Name: "&", Codepoints: []rune{'a'}}}},
		{"missing marker", []Reference{{Name: "amp;", Codepoints: []rune{'&'}}}},
		{"non-ascii name", []Reference{{Name: "&ampé;", Codepoints: []rune{'&'}}}},
		{"zero codepoints", []Reference{{Name: "&amp;", Codepoints: nil}}},
		{"three codepoints", []Reference{{Name: "&amp;", Codepoints: []rune{'a', 'b', 'c'}}}},
		{"codepoint out of range", []Reference{{Name: "&amp;", Codepoints: []rune{0x110000}}}},
		{"conflicting duplicate", []Reference{
			{Name: "&amp;", Codepoints: []rune{'&'}},
			{Name: "&amp;", Codepoints: []rune{'<'}},
		}},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.refs, DefaultOptions)
			assert.Error(t, err)
		})
	}
}

func TestNewDropsExactDuplicates(t *testing.T) {
	t.Parallel()

	tbl, err := New([]Reference{
		{Name: "&amp;", Codepoints: []rune{'&'}},
		{Name: "&amp;", Codepoints: []rune{'&'}},
	}, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestCanonicalNameTieBreak(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// Terminated names beat unterminated ones when PreferTerminated is
	// set, shorter beats longer among equals.
	tbl, err := New([]Reference{
		{Name: "&amp", Codepoints: []rune{'&'}},
		{Name: "&amp;", Codepoints: []rune{'&'}},
		{Name: "&AMP;", Codepoints: []rune{'&'}},
	}, DefaultOptions)
	require.NoError(t, err)

	name, ok := tbl.NameFor('&')
	assert.True(ok)
	// "&AMP;" and "&amp;" are equally good; the last in sorted order wins.
	assert.Equal("&amp;", name)

	// Without the preference the shortest name wins.
	opts := DefaultOptions
	opts.PreferTerminated = false
	tbl, err = New([]Reference{
		{Name: "&amp", Codepoints: []rune{'&'}},
		{Name: "&ampersand;", Codepoints: []rune{'&'}},
	}, opts)
	require.NoError(t, err)
	name, ok = tbl.NameFor('&')
	assert.True(ok)
	assert.Equal("&amp", name)
}

func TestExpandPairs(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	tbl, err := New([]Reference{
		{Name: "&fjlig;", Codepoints: []rune{'f', 'j'}},
		{Name: "&lt;", Codepoints: []rune{'<'}},
	}, DefaultOptions)
	require.NoError(t, err)

	// Sorted order: "&fjlig;" then "&lt;".
	cps, n := tbl.Expand(0)
	assert.Equal(2, n)
	assert.Equal([2]rune{'f', 'j'}, cps)

	cps, n = tbl.Expand(1)
	assert.Equal(1, n)
	assert.Equal('<', cps[0])

	// Two-codepoint references never become the canonical escape.
	_, ok := tbl.NameFor('f')
	assert.False(ok)
}

func TestNameForOverflow(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// One codepoint above the dense range forces the overflow map.
	tbl, err := New([]Reference{
		{Name: "&lt;", Codepoints: []rune{'<'}},
		{Name: "&hearts;", Codepoints: []rune{0x2665}},
		{Name: "&xodot;", Codepoints: []rune{0x2A00}},
	}, DefaultOptions)
	require.NoError(t, err)

	for cp, want := range map[rune]string{
		'<':    "&lt;",
		0x2665: "&hearts;",
		0x2A00: "&xodot;",
	} {
		name, ok := tbl.NameFor(cp)
		assert.True(ok, "codepoint %#x", cp)
		assert.Equal(want, name)
	}

	_, ok := tbl.NameFor('a')
	assert.False(ok)
}

func TestEscapeLevelOf(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	opts := DefaultOptions
	opts.Levels = []uint8{0: 3, '&': 1, 'a': 4}
	opts.AboveLevel = 2
	tbl, err := New([]Reference{{Name: "&amp;", Codepoints: []rune{'&'}}}, opts)
	require.NoError(t, err)

	assert.Equal(1, tbl.EscapeLevelOf('&'))
	assert.Equal(4, tbl.EscapeLevelOf('a'))
	assert.Equal(2, tbl.EscapeLevelOf(0x2665))
}

func TestRemap(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	opts := DefaultOptions
	opts.NumericRemap = map[rune]rune{0x80: 0x20AC}
	tbl, err := New([]Reference{{Name: "&amp;", Codepoints: []rune{'&'}}}, opts)
	require.NoError(t, err)

	assert.Equal(rune(0x20AC), tbl.Remap(0x80))
	assert.Equal(rune(0x81), tbl.Remap(0x81))
}
