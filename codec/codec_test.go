package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Parallel()

	p, err := NewProvider()
	require.NoError(t, err)

	// Lookup is case insensitive and alias aware.
	for name, canonical := range map[string]string{
		"html":       "html",
		"HTML5":      "html",
		"html4":      "html4",
		"xml":        "xml",
		"XML10":      "xml",
		"xml11":      "xml11",
		"js":         "js",
		"JavaScript": "js",
		"ecmascript": "js",
		"json":       "json",
		"java":       "java",
	} {
		c := p.Get(name)
		require.NotNil(t, c, "name %q", name)
		assert.Equal(t, canonical, c.Name(), "name %q", name)
	}

	assert.Nil(t, p.Get("markdown"))
	assert.Contains(t, p.Names(), "javascript")
}

func TestCodecsEscapeAndUnescape(t *testing.T) {
	t.Parallel()

	p, err := NewProvider()
	require.NoError(t, err)

	for name, expect := range map[string]string{
		"html": "&lt;a&gt;",
		"xml":  "&lt;a&gt;",
	} {
		c := p.Get(name)
		require.NotNil(t, c)
		assert.Equal(t, expect, c.Escape("<a>"), "codec %q", name)
		assert.Equal(t, "<a>", c.Unescape(expect), "codec %q", name)
	}

	js := p.Get("js")
	assert.Equal(t, `say \"hi\"`, js.Escape(`say "hi"`))
	assert.Equal(t, `say "hi"`, js.Unescape(`say \"hi\"`))

	java := p.Get("java")
	assert.Equal(t, "A", java.Unescape(`\uuu0041`))
}

func TestDefaultIsShared(t *testing.T) {
	t.Parallel()

	p1, err := Default()
	require.NoError(t, err)
	p2, err := Default()
	require.NoError(t, err)
	assert.Same(t, p1, p2)
}
