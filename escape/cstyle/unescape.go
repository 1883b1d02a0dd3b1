package cstyle

import (
	"io"
	"strings"
	"unicode/utf16"

	"github.com/sunwei/textescape/bufferpool"
	"github.com/sunwei/textescape/common/text"
)

// Unescape resolves every backslash escape in s against t: single escape
// chars, \uHHHH (with surrogate pair recombination), \xHH and octal where
// the format defines them. Malformed sequences pass through unchanged,
// never an error. When s contains no backslash, Unescape returns s itself.
func Unescape(t *Table, s string) string {
	if s == "" || strings.IndexByte(s, '\\') < 0 {
		return s
	}

	buf := bufferpool.GetBuffer()
	defer bufferpool.PutBuffer(buf)
	buf.Grow(len(s))

	units := text.EncodeUnits(s)
	changed, _ := unescapeUnits(buf, t, units, 0, len(units))
	if !changed {
		return s
	}
	return buf.String()
}

// UnescapeUnits unescapes the UTF-16 code units units[offset:offset+length]
// against t, writing UTF-8 output to w. Bounds are validated up front.
func UnescapeUnits(t *Table, w io.Writer, units []uint16, offset, length int) error {
	if t == nil {
		return errNilTable
	}
	if offset < 0 || length < 0 || offset+length > len(units) {
		return errBounds(len(units), offset, length)
	}
	_, err := unescapeUnits(w, t, units, offset, offset+length)
	return err
}

func unescapeUnits(w io.Writer, t *Table, units []uint16, start, end int) (changed bool, err error) {
	for i := start; i < end; {
		if units[i] != '\\' || i+1 >= end {
			cp, width := text.ScanCodepoint(units, i)
			if err = writeRune(w, cp); err != nil {
				return
			}
			i += width
			continue
		}

		e := units[i+1]
		switch {
		case e < 0x80 && t.unsec[e] != -1:
			if err = writeRune(w, t.unsec[e]); err != nil {
				return
			}
			i += 2
			changed = true

		case e == 'u':
			cp, consumed, ok := parseUHexa(t, units, i, end)
			if !ok {
				if err = writeRune(w, '\\'); err != nil {
					return
				}
				i++
				continue
			}
			if text.IsHighSurrogate(uint16(cp)) {
				if lo, c2, ok2 := parseUHexa(t, units, i+consumed, end); ok2 && text.IsLowSurrogate(uint16(lo)) {
					cp = utf16.DecodeRune(cp, lo)
					consumed += c2
				}
			}
			if err = writeRune(w, cp); err != nil {
				return
			}
			i += consumed
			changed = true

		case e == 'x' && t.xHexa:
			if i+4 > end {
				if err = writeRune(w, '\\'); err != nil {
					return
				}
				i++
				continue
			}
			hi, ok1 := hexValue(units[i+2])
			lo, ok2 := hexValue(units[i+3])
			if !ok1 || !ok2 {
				if err = writeRune(w, '\\'); err != nil {
					return
				}
				i++
				continue
			}
			if err = writeRune(w, hi<<4|lo); err != nil {
				return
			}
			i += 4
			changed = true

		case t.octalUnescape && '0' <= e && e <= '7':
			cp, consumed := parseOctal(units, i, end)
			if err = writeRune(w, cp); err != nil {
				return
			}
			i += consumed
			changed = true

		default:
			// Unknown escape: the backslash passes through literally.
			if err = writeRune(w, '\\'); err != nil {
				return
			}
			i++
		}
	}
	return
}

// parseUHexa parses \uHHHH starting at the backslash at units[i]. For
// Java-style tables any number of 'u's is accepted (\uuu0041).
func parseUHexa(t *Table, units []uint16, i, end int) (cp rune, consumed int, ok bool) {
	if i+1 >= end || units[i] != '\\' || units[i+1] != 'u' {
		return 0, 0, false
	}
	j := i + 2
	if t.javaUnicode {
		for j < end && units[j] == 'u' {
			j++
		}
	}
	if j+4 > end {
		return 0, 0, false
	}
	var val rune
	for k := 0; k < 4; k++ {
		d, isHex := hexValue(units[j+k])
		if !isHex {
			return 0, 0, false
		}
		val = val<<4 | d
	}
	return val, j + 4 - i, true
}

// parseOctal parses the maximal octal run after the backslash at units[i]:
// up to three digits when the value stays within \377, two otherwise.
func parseOctal(units []uint16, i, end int) (cp rune, consumed int) {
	j := i + 1
	var val rune
	max := j + 2
	if units[j] <= '3' {
		max = j + 3
	}
	for j < end && j < max && '0' <= units[j] && units[j] <= '7' {
		val = val<<3 | rune(units[j]-'0')
		j++
	}
	return val, j - i
}

func hexValue(u uint16) (rune, bool) {
	switch {
	case '0' <= u && u <= '9':
		return rune(u - '0'), true
	case 'a' <= u && u <= 'f':
		return rune(u-'a') + 10, true
	case 'A' <= u && u <= 'F':
		return rune(u-'A') + 10, true
	}
	return 0, false
}
