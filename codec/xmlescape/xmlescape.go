// Package xmlescape escapes and unescapes XML text using the five
// predefined XML entities and numeric character references.
package xmlescape

import (
	"io"

	"github.com/sunwei/textescape/escape"
	"github.com/sunwei/textescape/escape/symbol"
)

// Defaults used by Escape and EscapeXML11.
const (
	DefaultType  = escape.TypeNamedDefaultDecimal
	DefaultLevel = escape.LevelNonASCII
)

// Escape escapes s as XML 1.0.
//
// Codepoints XML 1.0 forbids outright (NUL, most C0 controls, unpaired
// surrogates, U+FFFE/U+FFFF) are DROPPED from the output, not escaped:
// there is no well-formed way to write them, and erroring would make the
// escaper unusable on arbitrary text. Already-clean input is returned
// as is.
func Escape(s string) string {
	out, _ := escape.Escape(mustXML10(), s, DefaultType, DefaultLevel)
	return out
}

// EscapeWith escapes s as XML 1.0 with explicit type and level.
func EscapeWith(s string, typ escape.Type, level escape.Level) (string, error) {
	t, err := XML10Table()
	if err != nil {
		return "", err
	}
	return escape.Escape(t, s, typ, level)
}

// EscapeXML11 escapes s as XML 1.1, which forbids only NUL,
// U+FFFE/U+FFFF and unpaired surrogates.
func EscapeXML11(s string) string {
	out, _ := escape.Escape(mustXML11(), s, DefaultType, DefaultLevel)
	return out
}

// EscapeXML11With escapes s as XML 1.1 with explicit type and level.
func EscapeXML11With(s string, typ escape.Type, level escape.Level) (string, error) {
	t, err := XML11Table()
	if err != nil {
		return "", err
	}
	return escape.Escape(t, s, typ, level)
}

// EscapeUnits escapes the UTF-16 code units units[offset:offset+length] as
// XML 1.0, writing UTF-8 output to w.
func EscapeUnits(w io.Writer, units []uint16, offset, length int, typ escape.Type, level escape.Level) error {
	t, err := XML10Table()
	if err != nil {
		return err
	}
	return escape.EscapeUnits(t, w, units, offset, length, typ, level)
}

// Unescape resolves every XML entity and numeric reference in s.
// Malformed references pass through unchanged.
func Unescape(s string) string {
	return escape.Unescape(mustXML10(), s)
}

// UnescapeUnits unescapes the UTF-16 code units units[offset:offset+length],
// writing UTF-8 output to w.
func UnescapeUnits(w io.Writer, units []uint16, offset, length int) error {
	t, err := XML10Table()
	if err != nil {
		return err
	}
	return escape.UnescapeUnits(t, w, units, offset, length)
}

func mustXML10() *symbol.Table {
	t, err := XML10Table()
	if err != nil {
		panic(err)
	}
	return t
}

func mustXML11() *symbol.Table {
	t, err := XML11Table()
	if err != nil {
		panic(err)
	}
	return t
}
