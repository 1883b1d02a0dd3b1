package text

import (
	"unicode/utf16"
)

// Surrogate ranges per the UTF-16 encoding scheme.
// 0xD800-0xDBFF carries the high 10 bits of a supplementary codepoint,
// 0xDC00-0xDFFF the low 10 bits, offset by 0x10000.
const (
	surrHigh     = 0xD800
	surrLow      = 0xDC00
	surrEnd      = 0xE000
	surrSelf     = 0x10000
	MaxCodepoint = '\U0010FFFF'
)

// IsHighSurrogate reports whether u is a UTF-16 high (leading) surrogate.
func IsHighSurrogate(u uint16) bool {
	return surrHigh <= u && u < surrLow
}

// IsLowSurrogate reports whether u is a UTF-16 low (trailing) surrogate.
func IsLowSurrogate(u uint16) bool {
	return surrLow <= u && u < surrEnd
}

// IsSurrogate reports whether the codepoint cp lies in the surrogate range.
func IsSurrogate(cp rune) bool {
	return surrHigh <= cp && cp < surrEnd
}

// ScanCodepoint returns the codepoint starting at units[i] and the number of
// code units it occupies (1 or 2).
//
// A high surrogate immediately followed by a low surrogate combines into a
// single supplementary codepoint of width 2. A lone high surrogate, either at
// the end of the buffer or not followed by a low surrogate, stands for itself
// with width 1. ScanCodepoint never fails on malformed sequences.
func ScanCodepoint(units []uint16, i int) (cp rune, width int) {
	u := units[i]
	if IsHighSurrogate(u) && i+1 < len(units) && IsLowSurrogate(units[i+1]) {
		return (rune(u)-surrHigh)<<10 | (rune(units[i+1]) - surrLow) + surrSelf, 2
	}
	return rune(u), 1
}

// UnitLen returns the number of UTF-16 code units needed to store cp.
func UnitLen(cp rune) int {
	if cp >= surrSelf {
		return 2
	}
	return 1
}

// EncodeUnits converts s to its UTF-16 code unit sequence.
func EncodeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// DecodeUnits converts a UTF-16 code unit sequence back to a string.
// Unpaired surrogates decode to U+FFFD.
func DecodeUnits(units []uint16) string {
	return string(utf16.Decode(units))
}

// UnitCount returns the number of UTF-16 code units needed to store s.
func UnitCount(s string) int {
	var n int
	for _, r := range s {
		n += UnitLen(r)
	}
	return n
}
