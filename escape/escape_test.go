package escape

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/textescape/common/text"
	"github.com/sunwei/textescape/escape/symbol"
)

// testReferences is a small HTML-flavored table exercising named, paired
// and high-codepoint references.
var testReferences = []symbol.Reference{
	{Name: "&amp;", Codepoints: []rune{'&'}},
	{Name: "&lt;", Codepoints: []rune{'<'}},
	{Name: "&gt;", Codepoints: []rune{'>'}},
	{Name: "&quot;", Codepoints: []rune{'"'}},
	{Name: "&not", Codepoints: []rune{0xAC}},
	{Name: "&not;", Codepoints: []rune{0xAC}},
	{Name: "&notin;", Codepoints: []rune{0x2209}},
	{Name: "&fjlig;", Codepoints: []rune{'f', 'j'}},
}

func testLevels() []uint8 {
	levels := make([]uint8, 0xA0)
	for i := range levels {
		levels[i] = 3
	}
	for c := '0'; c <= '9'; c++ {
		levels[c] = 4
	}
	for c := 'a'; c <= 'z'; c++ {
		levels[c] = 4
	}
	for c := 'A'; c <= 'Z'; c++ {
		levels[c] = 4
	}
	for _, c := range "&<>\"'" {
		levels[c] = 1
	}
	return levels
}

func newTestTable(t *testing.T) *symbol.Table {
	t.Helper()
	opts := symbol.DefaultOptions
	opts.Levels = testLevels()
	opts.NumericRemap = map[rune]rune{0x80: 0x20AC}
	tbl, err := symbol.New(testReferences, opts)
	require.NoError(t, err)
	return tbl
}

func TestEscapeMarkupSignificant(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	out, err := Escape(tbl, `<a href="x">`, TypeNamedDefaultDecimal, LevelMarkupSignificant)
	require.NoError(t, err)
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;", out)
}

func TestEscapeTypes(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	for _, test := range []struct {
		in     string
		typ    Type
		level  Level
		expect string
	}{
		{"<", TypeNamedDefaultDecimal, LevelMarkupSignificant, "&lt;"},
		{"<", TypeNamedDefaultHexa, LevelMarkupSignificant, "&lt;"},
		{"<", TypeDecimal, LevelMarkupSignificant, "&#60;"},
		{"<", TypeHexa, LevelMarkupSignificant, "&#x3c;"},
		// No named reference: falls back to the numeric form.
		{"é", TypeNamedDefaultDecimal, LevelNonASCII, "&#233;"},
		{"é", TypeNamedDefaultHexa, LevelNonASCII, "&#xe9;"},
		// Supplementary codepoints escape as one reference.
		{"\U0001F600", TypeDecimal, LevelNonASCII, "&#128512;"},
		{"\U0001F600", TypeHexa, LevelNonASCII, "&#x1f600;"},
	} {
		out, err := Escape(tbl, test.in, test.typ, test.level)
		require.NoError(t, err)
		assert.Equal(t, test.expect, out, "%q as %s", test.in, test.typ)
	}
}

func TestEscapeLevelsAreCumulative(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	in := "a <é"
	for level, expect := range map[Level]string{
		LevelMarkupSignificant: "a &lt;é",
		LevelNonASCII:          "a &lt;&#233;",
		LevelNonAlphanumeric:   "a&#32;&lt;&#233;",
		LevelAll:               "&#97;&#32;&lt;&#233;",
	} {
		out, err := Escape(tbl, in, TypeNamedDefaultDecimal, level)
		require.NoError(t, err)
		assert.Equal(t, expect, out, "level %s", level)
	}
}

func TestEscapeIdentity(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	in := "nothing to do here"
	out, err := Escape(tbl, in, TypeNamedDefaultDecimal, LevelMarkupSignificant)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out, err = Escape(tbl, "", TypeNamedDefaultDecimal, LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	allocs := testing.AllocsPerRun(100, func() {
		out, _ = Escape(tbl, in, TypeNamedDefaultDecimal, LevelNonASCII)
	})
	assert.Equal(t, float64(0), allocs)
}

func TestEscapeDropsInvalidCodepoints(t *testing.T) {
	t.Parallel()

	opts := symbol.DefaultOptions
	opts.Levels = testLevels()
	opts.Validator = func(cp rune) bool { return cp != 0 }
	tbl, err := symbol.New(testReferences, opts)
	require.NoError(t, err)

	out, err := Escape(tbl, "a\x00b", TypeNamedDefaultDecimal, LevelMarkupSignificant)
	require.NoError(t, err)
	assert.Equal(t, "ab", out)
}

func TestEscapeInvalidArguments(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	_, err := Escape(nil, "x", TypeNamedDefaultDecimal, LevelNonASCII)
	assert.Error(t, err)

	_, err = Escape(tbl, "x", Type(0), LevelNonASCII)
	assert.Error(t, err)
	_, err = Escape(tbl, "x", Type(5), LevelNonASCII)
	assert.Error(t, err)

	_, err = Escape(tbl, "x", TypeNamedDefaultDecimal, Level(0))
	assert.Error(t, err)
	_, err = Escape(tbl, "x", TypeNamedDefaultDecimal, Level(5))
	assert.Error(t, err)
}

func TestEscapeUnits(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	units := text.EncodeUnits(`x<y`)
	var buf bytes.Buffer
	err := EscapeUnits(tbl, &buf, units, 1, 1, TypeNamedDefaultDecimal, LevelMarkupSignificant)
	require.NoError(t, err)
	assert.Equal(t, "&lt;", buf.String())

	// A surrogate pair escapes as the combined codepoint.
	buf.Reset()
	units = text.EncodeUnits("\U0001F600")
	err = EscapeUnits(tbl, &buf, units, 0, len(units), TypeDecimal, LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, "&#128512;", buf.String())

	// A lone high surrogate stands for itself.
	buf.Reset()
	err = EscapeUnits(tbl, &buf, []uint16{0xD83D}, 0, 1, TypeDecimal, LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, "&#55357;", buf.String())
}

func TestEscapeUnitsBounds(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	units := []uint16{'a', 'b'}
	var buf bytes.Buffer
	for _, test := range []struct{ offset, length int }{
		{-1, 1}, {0, -1}, {1, 2}, {3, 0},
	} {
		err := EscapeUnits(tbl, &buf, units, test.offset, test.length, TypeDecimal, LevelAll)
		assert.Error(t, err, "offset %d length %d", test.offset, test.length)
	}
}
