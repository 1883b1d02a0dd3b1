package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareParams(t *testing.T) {
	t.Parallel()

	m := Params{
		"Marker": "&",
		"Table": map[any]any{
			"AboveLevel": 2,
		},
		"Names": map[string]string{
			"Amp": "&amp;",
		},
	}
	PrepareParams(m)

	assert.Equal(t, "&", m["marker"])
	table, ok := m["table"].(Params)
	assert.True(t, ok)
	assert.Equal(t, 2, table["abovelevel"])
	names, ok := m["names"].(Params)
	assert.True(t, ok)
	assert.Equal(t, "&amp;", names["amp"])
}

func TestParamsSetAndGet(t *testing.T) {
	t.Parallel()

	p := Params{"a": Params{"b": 1}}
	p.Set(Params{"a": Params{"c": 2}, "d": 3})

	assert.Equal(t, 1, p.Get("a", "b"))
	assert.Equal(t, 2, p.Get("a", "c"))
	assert.Equal(t, 3, p.Get("D"))
	assert.Nil(t, p.Get("a", "missing"))
	assert.Nil(t, p.Get())
}

func TestToParamsAndPrepare(t *testing.T) {
	t.Parallel()

	p, ok := ToParamsAndPrepare(map[string]any{"Key": "v"})
	assert.True(t, ok)
	assert.Equal(t, "v", p["key"])

	p, ok = ToParamsAndPrepare(nil)
	assert.True(t, ok)
	assert.Empty(t, p)

	_, ok = ToParamsAndPrepare(42)
	assert.False(t, ok)
}
