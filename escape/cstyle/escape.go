package cstyle

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/sunwei/textescape/bufferpool"
	"github.com/sunwei/textescape/common/text"
	"github.com/sunwei/textescape/escape"
)

// Type selects the escaped representation: single-escape-chars with a
// numeric fallback, or numeric forms only.
type Type int

const (
	// TypeSECDefaultUHexa prefers single escape chars, falling back to
	// \uHHHH.
	TypeSECDefaultUHexa Type = 1 + iota

	// TypeSECDefaultXHexa prefers single escape chars, falling back to
	// \xHH for codepoints that fit a byte and \uHHHH beyond. Requires a
	// table built with XHexa.
	TypeSECDefaultXHexa

	// TypeXHexa produces \xHH where possible, \uHHHH beyond. Requires a
	// table built with XHexa.
	TypeXHexa

	// TypeUHexa always produces \uHHHH.
	TypeUHexa
)

// Valid reports whether t is one of the defined types.
func (t Type) Valid() bool {
	return t >= TypeSECDefaultUHexa && t <= TypeUHexa
}

func (t Type) useSECs() bool {
	return t == TypeSECDefaultUHexa || t == TypeSECDefaultXHexa
}

func (t Type) useXHexa() bool {
	return t == TypeSECDefaultXHexa || t == TypeXHexa
}

const hexDigits = "0123456789abcdef"

var errNilTable = errors.New("cstyle: nil table")

func errBounds(n, offset, length int) error {
	return fmt.Errorf("cstyle: bounds [%d:+%d] out of range for buffer of %d units", offset, length, n)
}

// Escape escapes s against t at the given type and level. As in the markup
// engine, the input string itself is returned when nothing needs work.
func Escape(t *Table, s string, typ Type, level escape.Level) (string, error) {
	if err := validate(t, typ, level); err != nil {
		return "", err
	}
	if s == "" || !needsEscape(t, s, level) {
		return s, nil
	}

	buf := bufferpool.GetBuffer()
	defer bufferpool.PutBuffer(buf)
	buf.Grow(len(s) + 8)

	var scratch [12]byte
	for _, r := range s {
		if int(level) < t.EscapeLevelOf(r) {
			buf.WriteRune(r)
			continue
		}
		buf.Write(appendEscaped(scratch[:0], t, r, typ))
	}
	return buf.String(), nil
}

// EscapeUnits escapes the UTF-16 code units units[offset:offset+length]
// against t, writing UTF-8 output to w. Bounds are validated up front.
func EscapeUnits(t *Table, w io.Writer, units []uint16, offset, length int, typ Type, level escape.Level) error {
	if err := validate(t, typ, level); err != nil {
		return err
	}
	if offset < 0 || length < 0 || offset+length > len(units) {
		return errBounds(len(units), offset, length)
	}

	var scratch [12]byte
	for i, end := offset, offset+length; i < end; {
		cp, width := text.ScanCodepoint(units, i)
		i += width
		if int(level) < t.EscapeLevelOf(cp) {
			if err := writeRune(w, cp); err != nil {
				return err
			}
			continue
		}
		if _, err := w.Write(appendEscaped(scratch[:0], t, cp, typ)); err != nil {
			return err
		}
	}
	return nil
}

func validate(t *Table, typ Type, level escape.Level) error {
	if t == nil {
		return errNilTable
	}
	if !typ.Valid() {
		return fmt.Errorf("cstyle: invalid escape type %d", int(typ))
	}
	if typ.useXHexa() && !t.xHexa {
		return fmt.Errorf("cstyle: escape type %d needs \\xHH, not defined for this format", int(typ))
	}
	if !level.Valid() {
		return fmt.Errorf("cstyle: invalid escape level %d", int(level))
	}
	return nil
}

func needsEscape(t *Table, s string, level escape.Level) bool {
	for _, r := range s {
		if int(level) >= t.EscapeLevelOf(r) {
			return true
		}
	}
	return false
}

func appendEscaped(b []byte, t *Table, cp rune, typ Type) []byte {
	if typ.useSECs() {
		if letter, ok := t.singleEscape(cp); ok {
			return append(b, '\\', letter)
		}
	}
	if typ.useXHexa() && cp <= 0xFF {
		return append(b, '\\', 'x', hexDigits[cp>>4], hexDigits[cp&0xF])
	}
	if cp > 0xFFFF {
		// Supplementary codepoints escape as their surrogate pair.
		hi, lo := utf16.EncodeRune(cp)
		b = appendUHexa(b, hi)
		return appendUHexa(b, lo)
	}
	return appendUHexa(b, cp)
}

func appendUHexa(b []byte, cp rune) []byte {
	return append(b, '\\', 'u',
		hexDigits[cp>>12&0xF], hexDigits[cp>>8&0xF], hexDigits[cp>>4&0xF], hexDigits[cp&0xF])
}

func writeRune(w io.Writer, cp rune) error {
	var scratch [utf8.UTFMax]byte
	n := utf8.EncodeRune(scratch[:], cp)
	_, err := w.Write(scratch[:n])
	return err
}
