package jsescape

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/textescape/common/text"
	"github.com/sunwei/textescape/escape"
	"github.com/sunwei/textescape/escape/cstyle"
)

func TestEscape(t *testing.T) {
	t.Parallel()
	require.NoError(t, Prepare())
	assert := assert.New(t)

	for in, expect := range map[string]string{
		"":            "",
		"plain text":  "plain text",
		`alert("hi")`: `alert(\"hi\")`,
		"'single'":    `\'single\'`,
		"tab\there":   `tab\there`,
		// \v is unescape-only, old IE cannot read it.
		"\x0B":        `\x0b`,
		"back\\slash": `back\\slash`,
		"café":        `caf\xe9`,
		"€":           `\u20ac`,
		"\U0001F600":  `\ud83d\ude00`,
	} {
		assert.Equal(expect, Escape(in), "input %q", in)
	}

	// '/' stays literal at the default level.
	assert.Equal("a/b", Escape("a/b"))
}

func TestEscapeWith(t *testing.T) {
	t.Parallel()

	out, err := EscapeWith("é", cstyle.TypeUHexa, escape.LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, `\u00e9`, out)

	out, err = EscapeWith("/", cstyle.TypeSECDefaultXHexa, escape.LevelNonAlphanumeric)
	require.NoError(t, err)
	assert.Equal(t, "/", out)

	out, err = EscapeWith("/", cstyle.TypeSECDefaultXHexa, escape.LevelAll)
	require.NoError(t, err)
	assert.Equal(t, `\/`, out)
}

func TestUnescape(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for in, expect := range map[string]string{
		`\n\t\v`:       "\n\t\x0B",
		`\x41B`:        "AB",
		`\101`:         "A",
		`\ud83d\ude00`: "\U0001F600",
		`\q`:           `\q`,
		"none":         "none",
	} {
		assert.Equal(expect, Unescape(in), "input %q", in)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"var x = \"café \U0001F600\";",
		"lines\nand\ttabs",
	} {
		assert.Equal(t, s, Unescape(Escape(s)), "input %q", s)
	}
}

func TestUnits(t *testing.T) {
	t.Parallel()

	units := text.EncodeUnits(`a"b`)
	var buf bytes.Buffer
	require.NoError(t, EscapeUnits(&buf, units, 0, len(units), DefaultType, DefaultLevel))
	assert.Equal(t, `a\"b`, buf.String())

	buf.Reset()
	units = text.EncodeUnits(`a\x41b`)
	require.NoError(t, UnescapeUnits(&buf, units, 0, len(units)))
	assert.Equal(t, "aAb", buf.String())
}
