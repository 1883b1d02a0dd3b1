package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanCodepoint(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// BMP codepoint.
	cp, width := ScanCodepoint([]uint16{'a', 'b'}, 0)
	assert.Equal('a', cp)
	assert.Equal(1, width)

	// Surrogate pair combines to one supplementary codepoint.
	units := EncodeUnits("\U0001F600")
	assert.Len(units, 2)
	cp, width = ScanCodepoint(units, 0)
	assert.Equal('\U0001F600', cp)
	assert.Equal(2, width)

	// Lone high surrogate at end of buffer stands for itself.
	cp, width = ScanCodepoint([]uint16{0xD83D}, 0)
	assert.Equal(rune(0xD83D), cp)
	assert.Equal(1, width)

	// High surrogate not followed by a low one stands for itself.
	cp, width = ScanCodepoint([]uint16{0xD83D, 'x'}, 0)
	assert.Equal(rune(0xD83D), cp)
	assert.Equal(1, width)
}

func TestSurrogatePredicates(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(IsHighSurrogate(0xD800))
	assert.True(IsHighSurrogate(0xDBFF))
	assert.False(IsHighSurrogate(0xDC00))

	assert.True(IsLowSurrogate(0xDC00))
	assert.True(IsLowSurrogate(0xDFFF))
	assert.False(IsLowSurrogate(0xD800))

	assert.True(IsSurrogate(0xD800))
	assert.True(IsSurrogate(0xDFFF))
	assert.False(IsSurrogate(0xE000))
	assert.False(IsSurrogate('a'))
}

func TestEncodeDecodeUnits(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for _, s := range []string{"", "plain", "héllo", "\U0001F600 mixed  "} {
		assert.Equal(s, DecodeUnits(EncodeUnits(s)))
	}
}

func TestUnitCount(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(0, UnitCount(""))
	assert.Equal(3, UnitCount("abc"))
	assert.Equal(2, UnitCount("\U0001F600"))
	assert.Equal(1, UnitLen('a'))
	assert.Equal(2, UnitLen('\U0010FFFF'))
}
