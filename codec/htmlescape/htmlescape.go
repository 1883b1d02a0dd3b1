// Package htmlescape escapes and unescapes HTML text using the WHATWG
// named character reference list (HTML5) or its HTML 4.01 subset.
package htmlescape

import (
	"io"

	"golang.org/x/text/transform"

	"github.com/sunwei/textescape/escape"
	"github.com/sunwei/textescape/escape/symbol"
)

// Defaults used by Escape and EscapeHTML4.
const (
	DefaultType  = escape.TypeNamedDefaultDecimal
	DefaultLevel = escape.LevelNonASCII
)

// Escape escapes s as HTML5: named references where they exist, decimal
// references otherwise, for markup-significant and non-ASCII codepoints.
// Already-clean input is returned as is.
func Escape(s string) string {
	out, _ := escape.Escape(mustHTML5(), s, DefaultType, DefaultLevel)
	return out
}

// EscapeWith escapes s as HTML5 with explicit type and level.
func EscapeWith(s string, typ escape.Type, level escape.Level) (string, error) {
	t, err := HTML5Table()
	if err != nil {
		return "", err
	}
	return escape.Escape(t, s, typ, level)
}

// EscapeHTML4 is Escape restricted to the HTML 4.01 reference set.
func EscapeHTML4(s string) string {
	out, _ := escape.Escape(mustHTML4(), s, DefaultType, DefaultLevel)
	return out
}

// EscapeHTML4With escapes s as HTML 4.01 with explicit type and level.
func EscapeHTML4With(s string, typ escape.Type, level escape.Level) (string, error) {
	t, err := HTML4Table()
	if err != nil {
		return "", err
	}
	return escape.Escape(t, s, typ, level)
}

// EscapeUnits escapes the UTF-16 code units units[offset:offset+length] as
// HTML5, writing UTF-8 output to w.
func EscapeUnits(w io.Writer, units []uint16, offset, length int, typ escape.Type, level escape.Level) error {
	t, err := HTML5Table()
	if err != nil {
		return err
	}
	return escape.EscapeUnits(t, w, units, offset, length, typ, level)
}

// Unescape resolves every HTML character reference in s, maximally and
// leniently: references without a trailing semicolon, legacy Windows-1252
// numeric references and unknown names all resolve the way browsers
// resolve them. The HTML5 table subsumes HTML4, so there is one Unescape.
func Unescape(s string) string {
	return escape.Unescape(mustHTML5(), s)
}

// UnescapeUnits unescapes the UTF-16 code units units[offset:offset+length],
// writing UTF-8 output to w.
func UnescapeUnits(w io.Writer, units []uint16, offset, length int) error {
	t, err := HTML5Table()
	if err != nil {
		return err
	}
	return escape.UnescapeUnits(t, w, units, offset, length)
}

// NewEscapeTransformer returns the streaming form of EscapeWith.
func NewEscapeTransformer(typ escape.Type, level escape.Level) (transform.Transformer, error) {
	t, err := HTML5Table()
	if err != nil {
		return nil, err
	}
	return escape.NewEscapeTransformer(t, typ, level)
}

// NewUnescapeTransformer returns the streaming form of Unescape.
func NewUnescapeTransformer() (transform.Transformer, error) {
	t, err := HTML5Table()
	if err != nil {
		return nil, err
	}
	return escape.NewUnescapeTransformer(t)
}

func mustHTML5() *symbol.Table {
	t, err := HTML5Table()
	if err != nil {
		panic(err)
	}
	return t
}

func mustHTML4() *symbol.Table {
	t, err := HTML4Table()
	if err != nil {
		panic(err)
	}
	return t
}
