// Package jsescape escapes and unescapes JavaScript string literal
// contents: single escape chars, \xHH and \uHHHH forms, with legacy octal
// escapes accepted on input.
package jsescape

import (
	"io"
	"sync"

	"github.com/sunwei/textescape/escape"
	"github.com/sunwei/textescape/escape/cstyle"
)

// Defaults used by Escape.
const (
	DefaultType  = cstyle.TypeSECDefaultXHexa
	DefaultLevel = escape.LevelNonASCII
)

var (
	tblOnce sync.Once
	tbl     *cstyle.Table
	tblErr  error
)

// Table returns the shared JavaScript escape table, building it on first
// use.
func Table() (*cstyle.Table, error) {
	tblOnce.Do(func() {
		tbl, tblErr = cstyle.New(cstyle.Options{
			SingleEscapes: map[rune]byte{
				0x08: 'b', 0x09: 't', 0x0A: 'n', 0x0C: 'f', 0x0D: 'r',
				'"': '"', '\'': '\'', '\\': '\\', '/': '/',
			},
			// Old IE versions do not understand \v, so it is accepted on
			// input but never produced.
			UnescapeOnly: map[rune]byte{0x0B: 'v'},
			Levels:        jsEscapeLevels(),
			AboveLevel:    2,
			XHexa:         true,
			OctalUnescape: true,
		})
	})
	return tbl, tblErr
}

// Prepare forces the table to be built.
func Prepare() error {
	_, err := Table()
	return err
}

// Escape escapes s for inclusion in a JavaScript string literal, single
// or double quoted. Already-clean input is returned as is.
func Escape(s string) string {
	out, _ := cstyle.Escape(mustTable(), s, DefaultType, DefaultLevel)
	return out
}

// EscapeWith escapes s with explicit type and level.
func EscapeWith(s string, typ cstyle.Type, level escape.Level) (string, error) {
	t, err := Table()
	if err != nil {
		return "", err
	}
	return cstyle.Escape(t, s, typ, level)
}

// EscapeUnits escapes the UTF-16 code units units[offset:offset+length],
// writing UTF-8 output to w.
func EscapeUnits(w io.Writer, units []uint16, offset, length int, typ cstyle.Type, level escape.Level) error {
	t, err := Table()
	if err != nil {
		return err
	}
	return cstyle.EscapeUnits(t, w, units, offset, length, typ, level)
}

// Unescape resolves every JavaScript escape in s, including \xHH, \uHHHH
// surrogate pairs and legacy octal. Malformed escapes pass through
// unchanged.
func Unescape(s string) string {
	return cstyle.Unescape(mustTable(), s)
}

// UnescapeUnits unescapes the UTF-16 code units units[offset:offset+length],
// writing UTF-8 output to w.
func UnescapeUnits(w io.Writer, units []uint16, offset, length int) error {
	t, err := Table()
	if err != nil {
		return err
	}
	return cstyle.UnescapeUnits(t, w, units, offset, length)
}

// jsEscapeLevels: control chars and the literal-breaking set at 1, ASCII
// letters and digits at 4, the rest of ASCII at 3, '/' only at the
// maximal level. Above the table everything shares level 2.
func jsEscapeLevels() []uint8 {
	levels := make([]uint8, 0xA0)
	for i := range levels {
		levels[i] = 3
	}
	for c := '0'; c <= '9'; c++ {
		levels[c] = 4
	}
	for c := 'a'; c <= 'z'; c++ {
		levels[c] = 4
	}
	for c := 'A'; c <= 'Z'; c++ {
		levels[c] = 4
	}
	for c := 0x00; c <= 0x1F; c++ {
		levels[c] = 1
	}
	for c := 0x7F; c <= 0x9F; c++ {
		levels[c] = 1
	}
	levels['"'] = 1
	levels['\''] = 1
	levels['\\'] = 1
	levels['/'] = 4
	return levels
}

func mustTable() *cstyle.Table {
	t, err := Table()
	if err != nil {
		panic(err)
	}
	return t
}
