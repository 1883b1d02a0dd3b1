package xmlescape

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/textescape/common/text"
	"github.com/sunwei/textescape/escape"
)

func TestPrepare(t *testing.T) {
	require.NoError(t, Prepare())

	tbl, err := XML10Table()
	require.NoError(t, err)
	assert.Equal(t, 5, tbl.Len())
}

func TestEscape(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for in, expect := range map[string]string{
		"":              "",
		"plain":         "plain",
		`5 < 6 & 7`:     "5 &lt; 6 &amp; 7",
		`"a" 'b'`:       "&quot;a&quot; &apos;b&apos;",
		"café":          "caf&#233;",
		"\U0001F600":    "&#128512;",
	} {
		assert.Equal(expect, Escape(in), "input %q", in)
	}
}

func TestEscapeDropsForbiddenCodepoints(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// NUL is forbidden in both versions.
	assert.Equal("ab", Escape("a\x00b"))
	assert.Equal("ab", EscapeXML11("a\x00b"))

	// Most C0 controls are forbidden in 1.0 but writable in 1.1.
	assert.Equal("ab", Escape("a\x01b"))
	out, err := EscapeXML11With("a\x01b", escape.TypeDecimal, escape.LevelNonAlphanumeric)
	require.NoError(t, err)
	assert.Equal("a&#1;b", out)

	// Tab and newline are fine in both.
	assert.Equal("a\tb\n", Escape("a\tb\n"))
}

func TestEscapeWithExplicitTypeAndLevel(t *testing.T) {
	t.Parallel()

	out, err := EscapeWith("<", escape.TypeHexa, escape.LevelMarkupSignificant)
	require.NoError(t, err)
	assert.Equal(t, "&#x3c;", out)

	_, err = EscapeWith("<", escape.TypeNamedDefaultDecimal, escape.Level(0))
	assert.Error(t, err)
}

func TestUnescape(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for in, expect := range map[string]string{
		"&lt;&amp;&apos;": "<&'",
		"&#60;&#x3c;":     "<<",
		"caf&#233;":       "café",
		// XML has no named references beyond the predefined five, and no
		// Windows-1252 remap.
		"&eacute;": "&eacute;",
		"&#x80;":   "\u0080",
		"&#0;":     "�",
	} {
		assert.Equal(expect, Unescape(in), "input %q", in)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		`<tag attr="v">café & more</tag>`,
		"plain",
	} {
		assert.Equal(t, s, Unescape(Escape(s)), "input %q", s)
		assert.Equal(t, s, Unescape(EscapeXML11(s)), "input %q", s)
	}
}

func TestUnits(t *testing.T) {
	t.Parallel()

	units := text.EncodeUnits("a<b")
	var buf bytes.Buffer
	require.NoError(t, EscapeUnits(&buf, units, 0, len(units), escape.TypeNamedDefaultDecimal, escape.LevelMarkupSignificant))
	assert.Equal(t, "a&lt;b", buf.String())

	buf.Reset()
	units = text.EncodeUnits("a&gt;b")
	require.NoError(t, UnescapeUnits(&buf, units, 0, len(units)))
	assert.Equal(t, "a>b", buf.String())
}
