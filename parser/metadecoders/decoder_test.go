package metadecoders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromString(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for name, expect := range map[string]Format{
		"table.toml": TOML,
		"table.yaml": YAML,
		"table.yml":  YAML,
		"table.xml":  XML,
		"table.json": JSON,
		"TABLE.TOML": TOML,
		"table.txt":  "",
		"table":      "",
	} {
		assert.Equal(expect, FormatFromString(name), name)
	}
}

func TestUnmarshalToMap(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		format Format
		data   string
	}{
		{TOML, "marker = \"&\"\n"},
		{YAML, "marker: \"&\"\n"},
		{JSON, `{"marker": "&"}`},
		{XML, `<table><marker>&amp;</marker></table>`},
	} {
		m, err := Default.UnmarshalToMap([]byte(test.data), test.format)
		require.NoError(t, err, string(test.format))
		assert.Equal(t, "&", m["marker"], string(test.format))
	}
}

func TestUnmarshalToMapErrors(t *testing.T) {
	t.Parallel()

	_, err := Default.UnmarshalToMap([]byte("marker = ["), TOML)
	assert.Error(t, err)

	_, err = Default.UnmarshalToMap([]byte("x"), Format("ini"))
	assert.Error(t, err)
}
