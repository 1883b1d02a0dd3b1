// Package escape implements the generic markup-reference engine shared by
// the HTML and XML codecs: escaping against an immutable symbol.Table and
// the lenient, browser-style unescaping of named, decimal and hexadecimal
// character references.
package escape

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/sunwei/textescape/bufferpool"
	"github.com/sunwei/textescape/common/text"
	"github.com/sunwei/textescape/escape/symbol"
)

// growHint is added to the input length when sizing output buffers.
// A performance hint only.
const growHint = 16

// Escape escapes s against t at the given type and level.
//
// When no codepoint of s requires work, the input string itself is
// returned, so callers on hot paths pay no allocation for already-clean
// text.
//
// Codepoints the table marks invalid for the format (e.g. NUL for XML) are
// silently DROPPED from the output rather than escaped or copied. This is
// a deliberate sanitizing policy, not a defect: raising an error here
// would make the escaper unusable on arbitrary real-world text.
func Escape(t *symbol.Table, s string, typ Type, level Level) (string, error) {
	if err := validate(t, typ, level); err != nil {
		return "", err
	}
	if s == "" || !needsEscape(t, s, level) {
		return s, nil
	}

	buf := bufferpool.GetBuffer()
	defer bufferpool.PutBuffer(buf)
	buf.Grow(len(s) + growHint)

	units := text.EncodeUnits(s)
	if err := escapeUnits(buf, t, units, 0, len(units), typ, level); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EscapeUnits escapes the UTF-16 code units units[offset:offset+length]
// against t, writing UTF-8 output to w. Bounds are validated up front.
func EscapeUnits(t *symbol.Table, w io.Writer, units []uint16, offset, length int, typ Type, level Level) error {
	if err := validate(t, typ, level); err != nil {
		return err
	}
	if err := checkBounds(len(units), offset, length); err != nil {
		return err
	}
	return escapeUnits(w, t, units, offset, offset+length, typ, level)
}

var errNilTable = errors.New("escape: nil table")

func validate(t *symbol.Table, typ Type, level Level) error {
	if t == nil {
		return errNilTable
	}
	if !typ.Valid() {
		return fmt.Errorf("escape: invalid escape type %d", int(typ))
	}
	if !level.Valid() {
		return fmt.Errorf("escape: invalid escape level %d", int(level))
	}
	return nil
}

func checkBounds(n, offset, length int) error {
	if offset < 0 || length < 0 || offset+length > n {
		return fmt.Errorf("escape: bounds [%d:+%d] out of range for buffer of %d units", offset, length, n)
	}
	return nil
}

// needsEscape is the fast path scan: it reports whether any codepoint of s
// would be transformed at the given level.
func needsEscape(t *symbol.Table, s string, level Level) bool {
	for _, r := range s {
		if !t.ValidCodepoint(r) || int(level) >= t.EscapeLevelOf(r) {
			return true
		}
	}
	return false
}

func escapeUnits(w io.Writer, t *symbol.Table, units []uint16, start, end int, typ Type, level Level) error {
	for i := start; i < end; {
		cp, width := text.ScanCodepoint(units, i)
		i += width

		valid := t.ValidCodepoint(cp)
		if valid && int(level) < t.EscapeLevelOf(cp) {
			if err := writeRune(w, cp); err != nil {
				return err
			}
			continue
		}
		if !valid {
			// Dropped, see Escape.
			continue
		}
		if typ.useNames() {
			if name, ok := t.NameFor(cp); ok {
				if _, err := io.WriteString(w, name); err != nil {
					return err
				}
				continue
			}
		}
		if err := writeNumeric(w, t, cp, typ.useHexa()); err != nil {
			return err
		}
	}
	return nil
}

func writeNumeric(w io.Writer, t *symbol.Table, cp rune, hexa bool) error {
	var scratch [16]byte
	_, err := w.Write(appendNumeric(scratch[:0], t, cp, hexa))
	return err
}

func appendNumeric(b []byte, t *symbol.Table, cp rune, hexa bool) []byte {
	b = append(b, t.Marker(), '#')
	if hexa {
		b = append(b, 'x')
		b = strconv.AppendInt(b, int64(cp), 16)
	} else {
		b = strconv.AppendInt(b, int64(cp), 10)
	}
	return append(b, t.Terminator())
}

func writeRune(w io.Writer, cp rune) error {
	var scratch [utf8.UTFMax]byte
	n := utf8.EncodeRune(scratch[:], cp)
	_, err := w.Write(scratch[:n])
	return err
}
