package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/textescape/common/text"
)

func mustTable(t *testing.T, names ...string) *Table {
	t.Helper()
	refs := make([]Reference, len(names))
	for i, name := range names {
		refs[i] = Reference{Name: name, Codepoints: []rune{rune(0x100 + i)}}
	}
	tbl, err := New(refs, DefaultOptions)
	require.NoError(t, err)
	return tbl
}

func search(tbl *Table, fragment string) (MatchResult, string) {
	units := text.EncodeUnits(fragment)
	res, idx := tbl.Search(units, 0, len(units))
	if idx < 0 {
		return res, ""
	}
	return res, tbl.Name(idx)
}

func TestSearchExact(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	tbl := mustTable(t, "&not", "&not;", "&notin;", "&notinva;")

	res, name := search(tbl, "&notin;")
	assert.Equal(Found, res)
	assert.Equal("&notin;", name)

	res, name = search(tbl, "&not;")
	assert.Equal(Found, res)
	assert.Equal("&not;", name)
}

func TestSearchLongestPrefix(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	tbl := mustTable(t, "&not", "&not;", "&notin;", "&notinva;")

	// "&notin" has no exact entry; "&not" is the longest proper prefix
	// ("&not;" and "&notin;" mismatch on the fifth unit).
	res, name := search(tbl, "&notin")
	assert.Equal(PartialFound, res)
	assert.Equal("&not", name)

	res, name = search(tbl, "&notfoo;")
	assert.Equal(PartialFound, res)
	assert.Equal("&not", name)
}

func TestSearchPrefixSteppedOverByBisection(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// Names sorting between the prefix and the fragment can make the
	// bisection land only on non-prefix entries; the backward walk from
	// the insertion point must still find "&ab".
	tbl := mustTable(t, "&aa", "&ab", "&abc", "&abd", "&abe")

	res, name := search(tbl, "&abz")
	assert.Equal(PartialFound, res)
	assert.Equal("&ab", name)
}

func TestSearchNotFound(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	tbl := mustTable(t, "&amp;", "&lt;")

	for _, fragment := range []string{"&zzz;", "&a", "&", ""} {
		res, _ := search(tbl, fragment)
		assert.Equal(NotFound, res, "fragment %q", fragment)
	}
}
