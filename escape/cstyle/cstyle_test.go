package cstyle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/textescape/common/text"
	"github.com/sunwei/textescape/escape"
)

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
	for c := 0x00; c <= 0x1F; c++ {
		levels[c] = 1
	}
	levels['"'] = 1
	levels['\\'] = 1
	return levels
}

// newJSTable builds a JavaScript-flavored table: \xHH and octal enabled.
func newJSTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New(Options{
		SingleEscapes: map[rune]byte{
			0x08: 'b', 0x09: 't', 0x0A: 'n', 0x0C: 'f', 0x0D: 'r',
			'"': '"', '\\': '\\',
		},
		Levels:        testLevels(),
		AboveLevel:    2,
		XHexa:         true,
		OctalUnescape: true,
	})
	require.NoError(t, err)
	return tbl
}

// newJavaTable builds a Java-flavored table: \uuu...HHHH and octal, no \xHH.
func newJavaTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New(Options{
		SingleEscapes: map[rune]byte{
			0x08: 'b', 0x09: 't', 0x0A: 'n', 0x0C: 'f', 0x0D: 'r',
			'"': '"', '\'': '\'', '\\': '\\',
		},
		Levels:        testLevels(),
		AboveLevel:    2,
		OctalUnescape: true,
		JavaUnicode:   true,
	})
	require.NoError(t, err)
	return tbl
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New(Options{SingleEscapes: map[rune]byte{0x100: 'n'}})
	assert.Error(t, err)

	_, err = New(Options{SingleEscapes: map[rune]byte{'\n': 0x80}})
	assert.Error(t, err)

	_, err = New(Options{SingleEscapes: map[rune]byte{'\n': 'n', '\r': 'n'}})
	assert.Error(t, err)

	_, err = New(Options{
		SingleEscapes: map[rune]byte{'\n': 'n'},
		UnescapeOnly:  map[rune]byte{'\r': 'n'},
	})
	assert.Error(t, err)
}

func TestUnescapeOnlySingleEscapes(t *testing.T) {
	t.Parallel()

	tbl, err := New(Options{
		SingleEscapes: map[rune]byte{0x0A: 'n'},
		UnescapeOnly:  map[rune]byte{0x0B: 'v'},
		Levels:        testLevels(),
		AboveLevel:    2,
	})
	require.NoError(t, err)

	out, err := Escape(tbl, "\x0B", TypeSECDefaultUHexa, escape.LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, `\u000b`, out)
	assert.Equal(t, "\x0B", Unescape(tbl, `\v`))
}

func TestEscapeSingleEscapeChars(t *testing.T) {
	t.Parallel()
	tbl := newJSTable(t)

	out, err := Escape(tbl, "a\"b\n", TypeSECDefaultXHexa, escape.LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, `a\"b\n`, out)

	// Numeric-only types skip the single escape chars.
	out, err = Escape(tbl, "\"", TypeXHexa, escape.LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, `\x22`, out)

	out, err = Escape(tbl, "\"", TypeUHexa, escape.LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, `\u0022`, out)
}

func TestEscapeNumericForms(t *testing.T) {
	t.Parallel()
	tbl := newJSTable(t)

	for _, test := range []struct {
		in     string
		typ    Type
		expect string
	}{
		// \xHH for codepoints that fit a byte, \uHHHH beyond.
		{"é", TypeSECDefaultXHexa, `\xe9`},
		{"é", TypeSECDefaultUHexa, `\u00e9`},
		{"€", TypeSECDefaultXHexa, `\u20ac`},
		// Supplementary codepoints escape as their surrogate pair.
		{"\U0001F600", TypeSECDefaultUHexa, `\ud83d\ude00`},
	} {
		out, err := Escape(tbl, test.in, test.typ, escape.LevelNonASCII)
		require.NoError(t, err)
		assert.Equal(t, test.expect, out, "%q", test.in)
	}
}

func TestEscapeValidation(t *testing.T) {
	t.Parallel()
	java := newJavaTable(t)

	// \xHH types need a table built with XHexa.
	_, err := Escape(java, "é", TypeSECDefaultXHexa, escape.LevelNonASCII)
	assert.Error(t, err)
	_, err = Escape(java, "é", TypeXHexa, escape.LevelNonASCII)
	assert.Error(t, err)

	_, err = Escape(nil, "é", TypeUHexa, escape.LevelNonASCII)
	assert.Error(t, err)
	_, err = Escape(java, "é", Type(0), escape.LevelNonASCII)
	assert.Error(t, err)
	_, err = Escape(java, "é", TypeUHexa, escape.Level(9))
	assert.Error(t, err)
}

func TestEscapeIdentity(t *testing.T) {
	t.Parallel()
	tbl := newJSTable(t)

	in := "nothing to escape"
	out, err := Escape(tbl, in, TypeSECDefaultXHexa, escape.LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	allocs := testing.AllocsPerRun(100, func() {
		out, _ = Escape(tbl, in, TypeSECDefaultXHexa, escape.LevelNonASCII)
	})
	assert.Equal(t, float64(0), allocs)
}

func TestUnescape(t *testing.T) {
	t.Parallel()
	tbl := newJSTable(t)

	for in, expect := range map[string]string{
		`\n\t`:           "\n\t",
		`\x41`:           "A",
		`\u0041`:         "A",
		`\ud83d\ude00`:  "\U0001F600",
		`a\"b`:           `a"b`,
		`\101`:           "A",
		`\377`:           "ÿ",
		`\40`:            " ",
		`\777`:           "?7",
		`\u004`:          `\u004`,
		`\x4g`:           `\x4g`,
		`\q`:             `\q`,
		`trailing\`:      `trailing\`,
		"no backslashes": "no backslashes",
		"":               "",
	} {
		assert.Equal(t, expect, Unescape(tbl, in), "input %q", in)
	}

	// A lone high surrogate decodes to the replacement character.
	assert.Equal(t, "�", Unescape(tbl, `\ud83d`))
}

func TestUnescapeJavaUnicode(t *testing.T) {
	t.Parallel()

	java := newJavaTable(t)
	assert.Equal(t, "A", Unescape(java, `\u0041`))
	assert.Equal(t, "A", Unescape(java, `\uuu0041`))

	// Without JavaUnicode the extra 'u's are not a valid escape.
	js := newJSTable(t)
	assert.Equal(t, `\uuu0041`, Unescape(js, `\uuu0041`))
}

func TestUnescapeOctalDisabled(t *testing.T) {
	t.Parallel()

	tbl, err := New(Options{
		SingleEscapes: map[rune]byte{0x0A: 'n'},
		Levels:        testLevels(),
		AboveLevel:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, `\101`, Unescape(tbl, `\101`))
	assert.Equal(t, `\x41`, Unescape(tbl, `\x41`))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	tbl := newJSTable(t)

	for _, s := range []string{
		`var x = "café";`,
		"tabs\tand\nnewlines",
		"\U0001F600 emoji",
	} {
		for _, typ := range []Type{TypeSECDefaultUHexa, TypeSECDefaultXHexa, TypeXHexa, TypeUHexa} {
			out, err := Escape(tbl, s, typ, escape.LevelNonASCII)
			require.NoError(t, err)
			assert.Equal(t, s, Unescape(tbl, out), "type %d", typ)
		}
	}
}

func TestEscapeAndUnescapeUnits(t *testing.T) {
	t.Parallel()
	tbl := newJSTable(t)

	units := text.EncodeUnits(`x"y`)
	var buf bytes.Buffer
	err := EscapeUnits(tbl, &buf, units, 1, 1, TypeSECDefaultUHexa, escape.LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, `\"`, buf.String())

	buf.Reset()
	units = text.EncodeUnits(`a\u0041b`)
	err = UnescapeUnits(tbl, &buf, units, 0, len(units))
	require.NoError(t, err)
	assert.Equal(t, "aAb", buf.String())

	err = EscapeUnits(tbl, &buf, units, -1, 1, TypeUHexa, escape.LevelNonASCII)
	assert.Error(t, err)
	err = UnescapeUnits(tbl, &buf, units, 0, len(units)+1)
	assert.Error(t, err)
}
