package htmlescape

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/transform"

	"github.com/sunwei/textescape/common/text"
	"github.com/sunwei/textescape/escape"
)

func TestPrepare(t *testing.T) {
	require.NoError(t, Prepare())

	t5, err := HTML5Table()
	require.NoError(t, err)
	t4, err := HTML4Table()
	require.NoError(t, err)
	assert.Greater(t, t5.Len(), t4.Len())
	assert.Equal(t, 212, t4.Len())
}

func TestEscape(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for in, expect := range map[string]string{
		"":                 "",
		"plain text":       "plain text",
		"café":             "caf&eacute;",
		"5 < 6 & 7 > 2":    "5 &lt; 6 &amp; 7 &gt; 2",
		"€":                "&euro;",
		"∉":           "&notin;",
		// No named reference: decimal fallback.
		"\u0085":     "&#133;",
		"\U0001F600":       "&#128512;",
	} {
		assert.Equal(expect, Escape(in), "input %q", in)
	}
}

func TestEscapeWithExplicitTypeAndLevel(t *testing.T) {
	t.Parallel()

	out, err := EscapeWith(`<a href="x">`, escape.TypeNamedDefaultDecimal, escape.LevelMarkupSignificant)
	require.NoError(t, err)
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;", out)

	out, err = EscapeWith("é", escape.TypeHexa, escape.LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, "&#xe9;", out)

	_, err = EscapeWith("x", escape.Type(9), escape.LevelNonASCII)
	assert.Error(t, err)
}

func TestEscapeHTML4(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("&copy; caf&eacute;", EscapeHTML4("© café"))
	// The euro sign is HTML5-only, HTML4 falls back to numeric.
	assert.Equal("&#8364;", EscapeHTML4("€"))
	assert.Equal("&euro;", Escape("€"))
}

func TestEscapeIdentity(t *testing.T) {
	t.Parallel()
	require.NoError(t, Prepare())

	in := "just ascii, nothing else"
	assert.Equal(t, in, Escape(in))

	allocs := testing.AllocsPerRun(100, func() {
		_ = Escape(in)
	})
	assert.Equal(t, float64(0), allocs)
}

func TestUnescape(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for in, expect := range map[string]string{
		"&amp;&lt;&gt;": "&<>",
		"&quot;hi&quot;": `"hi"`,
		// Semicolon-less legacy form.
		"&copy 2026":  "© 2026",
		"&eacute":     "é",
		// Longest-prefix resolution for unknown tails.
		"&notfoo;": "¬foo;",
		"&notin":   "¬in",
		"&notin;":  "∉",
		// Two-codepoint expansion.
		"&fjlig;": "fj",
		// Windows-1252 numeric remap.
		"&#x80;": "€",
		"&#147;": "“",
		// Left alone.
		"&bogus;":  "&bogus;",
		"&#zz;":    "&#zz;",
		"AT&T":     "AT&T",
		"":         "",
	} {
		assert.Equal(expect, Unescape(in), "input %q", in)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for _, s := range []string{
		`<p id="a">café & friends</p>`,
		"5 < 6 & 7 > 2",
		"∉ \U0001F600",
	} {
		assert.Equal(s, Unescape(Escape(s)), "input %q", s)
		assert.Equal(s, Unescape(EscapeHTML4(s)), "input %q", s)
	}
}

func TestUnits(t *testing.T) {
	t.Parallel()

	units := text.EncodeUnits("a<b")
	var buf bytes.Buffer
	require.NoError(t, EscapeUnits(&buf, units, 0, len(units), escape.TypeNamedDefaultDecimal, escape.LevelMarkupSignificant))
	assert.Equal(t, "a&lt;b", buf.String())

	buf.Reset()
	units = text.EncodeUnits("a&lt;b")
	require.NoError(t, UnescapeUnits(&buf, units, 0, len(units)))
	assert.Equal(t, "a<b", buf.String())
}

func TestTransformers(t *testing.T) {
	t.Parallel()

	tr, err := NewEscapeTransformer(escape.TypeNamedDefaultDecimal, escape.LevelNonASCII)
	require.NoError(t, err)
	got, _, err := transform.String(tr, `<b>café</b>`)
	require.NoError(t, err)
	assert.Equal(t, "&lt;b&gt;caf&eacute;&lt;/b&gt;", got)

	un, err := NewUnescapeTransformer()
	require.NoError(t, err)
	got, _, err = transform.String(un, "&lt;b&gt;caf&eacute;&lt;/b&gt;")
	require.NoError(t, err)
	assert.Equal(t, `<b>café</b>`, got)
}
