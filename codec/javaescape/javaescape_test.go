package javaescape

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
		"plain":       "plain",
		"say \"hi\"":  `say \"hi\"`,
		"don't":       `don\'t`,
		"a\\b":        `a\\b`,
		"tab\there":   `tab\there`,
		"path/to":     "path/to",
		"café":        `caf\u00e9`,
		"\U0001F600":  `\ud83d\ude00`,
	} {
		assert.Equal(expect, Escape(in), "input %q", in)
	}
}

func TestEscapeWith(t *testing.T) {
	t.Parallel()

	// Java defines no two-digit hexadecimal form.
	_, err := EscapeWith("é", cstyle.TypeSECDefaultXHexa, escape.LevelNonASCII)
	assert.Error(t, err)

	out, err := EscapeWith("é", cstyle.TypeUHexa, escape.LevelNonASCII)
	require.NoError(t, err)
	assert.Equal(t, `\u00e9`, out)
}

func TestUnescape(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for in, expect := range map[string]string{
		`\n\t`:     "\n\t",
		`\'quote`:  "'quote",
		// Pre-processor form with any number of 'u's.
		`\uuu0041`: "A",
		// Legacy octal escapes.
		`\101`:     "A",
		`\40`:      " ",
		// Not Java escapes.
		`\x41`: `\x41`,
		`\q`:   `\q`,
	} {
		assert.Equal(expect, Unescape(in), "input %q", in)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"String s = \"café \U0001F600\";",
		"tabs\tand'quotes'",
	} {
		assert.Equal(t, s, Unescape(Escape(s)), "input %q", s)
	}
}

func TestUnits(t *testing.T) {
	t.Parallel()

	units := text.EncodeUnits("a'b")
	var buf bytes.Buffer
	require.NoError(t, EscapeUnits(&buf, units, 0, len(units), DefaultType, DefaultLevel))
	assert.Equal(t, `a\'b`, buf.String())

	buf.Reset()
	units = text.EncodeUnits(`a\uu0041b`)
	require.NoError(t, UnescapeUnits(&buf, units, 0, len(units)))
	assert.Equal(t, "aAb", buf.String())
}
