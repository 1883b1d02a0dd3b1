package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwei/textescape/common/maps"
)

func TestDefaultConfigProvider(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c := New()
	c.Set("marker", "&")
	c.Set("table.defaultLevel", 3)

	assert.Equal("&", c.GetString("marker"))
	assert.Equal(3, c.GetInt("table.defaultlevel"))
	assert.True(c.IsSet("Table.DefaultLevel"))
	assert.False(c.IsSet("table.missing"))
	assert.Nil(c.Get("nope.nope"))
}

func TestNewFromLowercasesKeys(t *testing.T) {
	t.Parallel()

	c := NewFrom(map[string]any{
		"Marker": "&",
		"Table":  map[string]any{"AboveLevel": 2},
	})
	assert.Equal(t, "&", c.GetString("marker"))
	assert.Equal(t, 2, c.GetInt("table.abovelevel"))
}

func TestSetDefaults(t *testing.T) {
	t.Parallel()

	c := New()
	c.Set("marker", "%")
	c.SetDefaults(maps.Params{
		"marker":     "&",
		"terminator": ";",
	})
	assert.Equal(t, "%", c.GetString("marker"))
	assert.Equal(t, ";", c.GetString("terminator"))
}

func TestFromTOMLAndYAML(t *testing.T) {
	t.Parallel()

	c, err := FromTOML([]byte("marker = \"&\"\naboveLevel = 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "&", c.GetString("marker"))
	assert.Equal(t, 2, c.GetInt("abovelevel"))

	c, err = FromYAML([]byte("marker: \"&\"\nlevels:\n  default: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, "&", c.GetString("marker"))
	assert.Equal(t, 3, c.GetInt("levels.default"))

	_, err = FromTOML([]byte("marker = ["))
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "table.toml", []byte("marker = \"&\"\n"), 0o644))

	c, err := FromFile(fs, "table.toml")
	require.NoError(t, err)
	assert.Equal(t, "&", c.GetString("marker"))

	m, err := FromFileToMap(fs, "table.toml")
	require.NoError(t, err)
	assert.Equal(t, "&", m["marker"])

	_, err = FromFile(fs, "missing.toml")
	assert.Error(t, err)
}
