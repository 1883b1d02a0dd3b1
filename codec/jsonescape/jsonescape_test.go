package jsonescape

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
		"a\\b":        `a\\b`,
		"tab\there":   `tab\there`,
		"path/to":     "path/to",
		"single'":     "single'",
		"café":        `caf\u00e9`,
		"\x0B":       `\u000b`,
		"\U0001F600":  `\ud83d\ude00`,
	} {
		assert.Equal(expect, Escape(in), "input %q", in)
	}
}

func TestEscapeWith(t *testing.T) {
	t.Parallel()

	// JSON defines no two-digit hexadecimal form.
	_, err := EscapeWith("é", cstyle.TypeSECDefaultXHexa, escape.LevelNonASCII)
	assert.Error(t, err)
	_, err = EscapeWith("é", cstyle.TypeXHexa, escape.LevelNonASCII)
	assert.Error(t, err)

	out, err := EscapeWith("<", cstyle.TypeSECDefaultUHexa, escape.LevelNonAlphanumeric)
	require.NoError(t, err)
	assert.Equal(t, `\u003c`, out)
}

func TestUnescape(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for in, expect := range map[string]string{
		`\n\t`:  "\n\t",
		`\"ok`:  `"ok`,
		`\/`:    "/",
		"plain": "plain",
		// Not JSON escapes: the backslash passes through literally.
		`\x41`: `\x41`,
		`\101`: `\101`,
		`\q`:   `\q`,
	} {
		assert.Equal(expect, Unescape(in), "input %q", in)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"{\"k\": \"café \U0001F600\"}",
		"tabs\tquotes\"and\\backslashes",
	} {
		assert.Equal(t, s, Unescape(Escape(s)), "input %q", s)
	}
}

func TestUnits(t *testing.T) {
	t.Parallel()

	units := text.EncodeUnits("a\"b")
	var buf bytes.Buffer
	require.NoError(t, EscapeUnits(&buf, units, 0, len(units), DefaultType, DefaultLevel))
	assert.Equal(t, `a\"b`, buf.String())

	buf.Reset()
	units = text.EncodeUnits(`a\nb`)
	require.NoError(t, UnescapeUnits(&buf, units, 0, len(units)))
	assert.Equal(t, "a\nb", buf.String())
}
