package escape

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sunwei/textescape/bufferpool"
	"github.com/sunwei/textescape/common/text"
	"github.com/sunwei/textescape/escape/symbol"
)

// Unescape resolves every character reference in s against t, maximally.
//
// Malformed input is never an error: an incomplete numeric reference, an
// unknown name or a bare marker simply passes through unchanged, matching
// what browsers do. Numeric references missing the terminator are still
// accepted; a terminator-less named token resolves to the longest name the
// table knows (so "&notfoo" yields the codepoint of "&not" followed by
// "foo").
//
// When s contains no reference, Unescape returns s itself.
func Unescape(t *symbol.Table, s string) string {
	if s == "" || strings.IndexByte(s, t.Marker()) < 0 {
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
func UnescapeUnits(t *symbol.Table, w io.Writer, units []uint16, offset, length int) error {
	if t == nil {
		return errNilTable
	}
	if err := checkBounds(len(units), offset, length); err != nil {
		return err
	}
	_, err := unescapeUnits(w, t, units, offset, offset+length)
	return err
}

// unescapeUnits runs the per-marker state machine (scanning, saw-marker,
// numeric-hex, numeric-dec, named) as straight-line code over one pass.
func unescapeUnits(w io.Writer, t *symbol.Table, units []uint16, start, end int) (changed bool, err error) {
	marker := uint16(t.Marker())
	for i := start; i < end; {
		if units[i] != marker || i+1 >= end {
			cp, width := text.ScanCodepoint(units, i)
			if err = writeRune(w, cp); err != nil {
				return
			}
			i += width
			continue
		}

		// Saw the marker. Whitespace, '<' or a second marker right after
		// it means this is no reference at all; likewise anything that is
		// neither '#' nor alphanumeric.
		next := units[i+1]
		switch {
		case next == '#':
			cp, consumed, ok := parseNumeric(t, units, i, end)
			if !ok {
				break
			}
			if err = writeRune(w, cp); err != nil {
				return
			}
			i += consumed
			changed = true
			continue
		case isAlnumUnit(next):
			cps, n, consumed, ok := resolveName(t, units, i, end)
			if !ok {
				break
			}
			if err = writeRune(w, cps[0]); err != nil {
				return
			}
			if n == 2 {
				if err = writeRune(w, cps[1]); err != nil {
					return
				}
			}
			i += consumed
			changed = true
			continue
		}

		if err = writeRune(w, rune(marker)); err != nil {
			return
		}
		i++
	}
	return
}

// parseNumeric parses a numeric reference starting at the marker at
// units[i]. It consumes the maximal digit run and a trailing terminator if
// present; a missing terminator is accepted (lenient parsing). An empty
// digit run is not a reference.
func parseNumeric(t *symbol.Table, units []uint16, i, end int) (cp rune, consumed int, ok bool) {
	j := i + 2
	hexa := false
	if j < end && (units[j] == 'x' || units[j] == 'X') {
		hexa = true
		j++
	}

	k := j
	var val rune
	for k < end {
		d, isDigit := digitValue(units[k], hexa)
		if !isDigit {
			break
		}
		if val <= text.MaxCodepoint {
			// Keep consuming past overflow, the result is U+FFFD anyway.
			if hexa {
				val = val<<4 | d
			} else {
				val = val*10 + d
			}
		}
		k++
	}
	if k == j {
		return 0, 0, false
	}
	if k < end && units[k] == uint16(t.Terminator()) {
		k++
	}

	val = t.Remap(val)
	if val == 0 || val > text.MaxCodepoint || text.IsSurrogate(val) {
		val = utf8.RuneError
	}
	return val, k - i, true
}

// resolveName resolves a named reference starting at the marker at
// units[i]. A partial match consumes only the matched name's length; the
// fragment's excess stays in the input as literal text.
func resolveName(t *symbol.Table, units []uint16, i, end int) (cps [2]rune, n int, consumed int, ok bool) {
	j := i + 1
	for j < end && isAlnumUnit(units[j]) {
		j++
	}
	k := j
	if k < end && units[k] == uint16(t.Terminator()) {
		k++
	}

	res, idx := t.Search(units, i, k)
	switch res {
	case symbol.Found:
		cps, n = t.Expand(idx)
		return cps, n, k - i, true
	case symbol.PartialFound:
		cps, n = t.Expand(idx)
		return cps, n, len(t.Name(idx)), true
	}
	return cps, 0, 0, false
}

func isAlnumUnit(u uint16) bool {
	return 'a' <= u && u <= 'z' || 'A' <= u && u <= 'Z' || '0' <= u && u <= '9'
}

func digitValue(u uint16, hexa bool) (rune, bool) {
	switch {
	case '0' <= u && u <= '9':
		return rune(u - '0'), true
	case hexa && 'a' <= u && u <= 'f':
		return rune(u-'a') + 10, true
	case hexa && 'A' <= u && u <= 'F':
		return rune(u-'A') + 10, true
	}
	return 0, false
}
