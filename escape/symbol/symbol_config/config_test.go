package symbol_config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/textescape/config"
	"github.com/sunwei/textescape/escape"
)

const tableTOML = `
marker = "&"
terminator = ";"
preferTerminated = true
defaultLevel = 3
aboveLevel = 2

[[references]]
name = "&amp;"
codepoints = [38]

[[references]]
name = "&lt;"
codepoints = [60]

[[levels]]
from = 38
to = 38
level = 1

[[levels]]
from = 60
to = 60
level = 1
`

func TestDecodeFromTOML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromTOML([]byte(tableTOML))
	require.NoError(t, err)

	conf, err := Decode(cfg)
	require.NoError(t, err)

	assert.Equal(t, "&", conf.Marker)
	assert.Equal(t, ";", conf.Terminator)
	assert.True(t, conf.PreferTerminated)
	assert.Equal(t, 3, conf.DefaultLevel)
	assert.Equal(t, 2, conf.AboveLevel)
	require.Len(t, conf.References, 2)
	assert.Equal(t, "&amp;", conf.References[0].Name)
	assert.Equal(t, []int{38}, conf.References[0].Codepoints)
	require.Len(t, conf.Levels, 2)
}

func TestDecodeDefaults(t *testing.T) {
	t.Parallel()

	conf, err := Decode(config.New())
	require.NoError(t, err)
	assert.Equal(t, Default.Marker, conf.Marker)
	assert.Equal(t, Default.DefaultLevel, conf.DefaultLevel)
}

func TestConfiguredTableEscapes(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromTOML([]byte(tableTOML))
	require.NoError(t, err)
	conf, err := Decode(cfg)
	require.NoError(t, err)

	tbl, err := conf.Table()
	require.NoError(t, err)

	out, err := escape.Escape(tbl, "a & b < c", escape.TypeNamedDefaultDecimal, escape.LevelMarkupSignificant)
	require.NoError(t, err)
	assert.Equal(t, "a &amp; b &lt; c", out)

	assert.Equal(t, "a & b < c", escape.Unescape(tbl, out))
}

func TestTableValidation(t *testing.T) {
	t.Parallel()

	conf := Default
	conf.Marker = "&&"
	_, err := conf.Table()
	assert.Error(t, err)

	conf = Default
	conf.References = []ReferenceConfig{{Name: "amp;", Codepoints: []int{38}}}
	_, err = conf.Table()
	assert.Error(t, err)
}
