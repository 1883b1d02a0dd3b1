package escape

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/textescape/common/text"
)

func TestUnescapeNamed(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	for in, expect := range map[string]string{
		"&amp;&lt;&gt;":    "&<>",
		"5 &lt; 6":         "5 < 6",
		"&notin;":          "∉",
		"&not;":            "¬",
		"&not":             "¬",
		"&fjlig;":          "fj",
		"a&amp;b&quot;c":   `a&b"c`,
		"&amp;amp;":        "&amp;",
		"&&amp;":           "&&",
		"abc&":             "abc&",
		"&bogus;":          "&bogus;",
		"& loose ampersand": "& loose ampersand",
		"":                 "",
	} {
		assert.Equal(t, expect, Unescape(tbl, in), "input %q", in)
	}
}

func TestUnescapePartialMatch(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	// Terminator-less tokens resolve to the longest known name; the
	// excess stays literal.
	assert.Equal(t, "¬foo;", Unescape(tbl, "&notfoo;"))
	assert.Equal(t, "¬in", Unescape(tbl, "&notin"))
}

func TestUnescapeNumeric(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	for in, expect := range map[string]string{
		"&#60;":   "<",
		"&#x3c;":  "<",
		"&#X3C;":  "<",
		"&#128512;": "\U0001F600",
		// Missing terminator is accepted, the digit run is maximal.
		"&#65a":  "Aa",
		"&#65":   "A",
		// The numeric remap applies to numeric references only.
		"&#x80;": "€",
		"&#172;": "¬",
		// Empty digit runs are not references.
		"&#zz;": "&#zz;",
		"&#;":   "&#;",
		"&#":    "&#",
		// NUL, surrogates and out-of-range values yield the replacement
		// character.
		"&#0;":          "�",
		"&#xD800;":      "�",
		"&#x110000;":    "�",
		"&#9999999999;": "�",
	} {
		assert.Equal(t, expect, Unescape(tbl, in), "input %q", in)
	}
}

func TestUnescapeIdentity(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	in := "no references here"
	assert.Equal(t, in, Unescape(tbl, in))

	allocs := testing.AllocsPerRun(100, func() {
		_ = Unescape(tbl, in)
	})
	assert.Equal(t, float64(0), allocs)
}

func TestUnescapeRoundTrip(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	for _, s := range []string{
		`<p class="x">5 < 6 & 7 > 2</p>`,
		"plain",
		"café ∉ \U0001F600",
	} {
		for _, level := range []Level{LevelMarkupSignificant, LevelNonASCII, LevelNonAlphanumeric, LevelAll} {
			escaped, err := Escape(tbl, s, TypeNamedDefaultDecimal, level)
			require.NoError(t, err)
			assert.Equal(t, s, Unescape(tbl, escaped), "level %s", level)
		}
	}
}

func TestUnescapeUnits(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	units := text.EncodeUnits("x&lt;y")
	var buf bytes.Buffer
	err := UnescapeUnits(tbl, &buf, units, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, "<", buf.String())

	err = UnescapeUnits(tbl, &buf, units, 0, 7)
	assert.Error(t, err)

	err = UnescapeUnits(nil, &buf, units, 0, 1)
	assert.Error(t, err)
}
