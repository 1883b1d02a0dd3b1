package escape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/transform"
)

func TestEscapeTransformer(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	tr, err := NewEscapeTransformer(tbl, TypeNamedDefaultDecimal, LevelNonASCII)
	require.NoError(t, err)

	// The transformer and Escape agree, including on input long enough to
	// force multiple Transform calls.
	for _, s := range []string{
		"",
		"plain",
		`<a href="x">café</a>`,
		"x\U0001F600y",
		strings.Repeat("<b>é &amp;</b> ", 200),
	} {
		want, err := Escape(tbl, s, TypeNamedDefaultDecimal, LevelNonASCII)
		require.NoError(t, err)
		got, _, err := transform.String(tr, s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Invalid UTF-8 bytes pass through untouched.
	got, _, err := transform.String(tr, "a\xffb")
	require.NoError(t, err)
	assert.Equal(t, "a\xffb", got)

	_, err = NewEscapeTransformer(nil, TypeNamedDefaultDecimal, LevelNonASCII)
	assert.Error(t, err)
}

func TestUnescapeTransformer(t *testing.T) {
	t.Parallel()
	tbl := newTestTable(t)

	tr, err := NewUnescapeTransformer(tbl)
	require.NoError(t, err)

	for _, s := range []string{
		"",
		"no references",
		"&amp;&lt;&gt; &#128512; &notfoo; &#zz;",
		"&fjlig; and &notin",
		strings.Repeat("x&amp;y&#60;z ", 300),
	} {
		got, _, err := transform.String(tr, s)
		require.NoError(t, err)
		assert.Equal(t, Unescape(tbl, s), got)
	}

	_, err = NewUnescapeTransformer(nil)
	assert.Error(t, err)
}
