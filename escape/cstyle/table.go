// Package cstyle implements the backslash-literal variant of the escape
// engine used by the JavaScript, JSON and Java string codecs: a
// single-escape-char table plus \xHH and \uHHHH numeric forms instead of
// named character references.
package cstyle

import (
	"fmt"
)

// A Table is the immutable escape table of one C-style string format.
// Build it once with New and share it freely.
type Table struct {
	// secs maps low codepoints to their escape letter ('\n' -> 'n').
	// Zero means no single-escape-char form exists.
	secs [0x80]byte

	// unsec is the reverse of secs, from escape letter to codepoint.
	// -1 means the letter is not a defined escape.
	unsec [0x80]rune

	levels     []uint8
	aboveLevel uint8

	xHexa         bool
	octalUnescape bool
	javaUnicode   bool
}

// Options configures a Table build.
type Options struct {
	// SingleEscapes maps codepoints to their escape letter, e.g.
	// '\n' -> 'n'. Only ASCII codepoints may carry a letter.
	SingleEscapes map[rune]byte

	// UnescapeOnly maps escape letters accepted during unescaping that
	// are never produced ('\v' in JavaScript, which old IE versions do
	// not understand).
	UnescapeOnly map[rune]byte

	// Levels and AboveLevel work exactly as in the markup engine: the
	// minimum escape level per low codepoint, one shared bucket above.
	Levels     []uint8
	AboveLevel uint8

	// XHexa enables the two-digit \xHH form (JavaScript).
	XHexa bool

	// OctalUnescape accepts legacy \NNN octal escapes during unescaping
	// (JavaScript, Java). Octal is never produced when escaping.
	OctalUnescape bool

	// JavaUnicode accepts the Java pre-processor form \uuuu...HHHH with
	// any number of 'u's during unescaping.
	JavaUnicode bool
}

// New builds an immutable Table from opts. Malformed single-escape records
// are configuration errors and fail the build.
func New(opts Options) (*Table, error) {
	t := &Table{
		levels:        opts.Levels,
		aboveLevel:    opts.AboveLevel,
		xHexa:         opts.XHexa,
		octalUnescape: opts.OctalUnescape,
		javaUnicode:   opts.JavaUnicode,
	}
	for i := range t.unsec {
		t.unsec[i] = -1
	}
	for cp, letter := range opts.SingleEscapes {
		if err := t.addSingleEscape(cp, letter, false); err != nil {
			return nil, err
		}
	}
	for cp, letter := range opts.UnescapeOnly {
		if err := t.addSingleEscape(cp, letter, true); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) addSingleEscape(cp rune, letter byte, unescapeOnly bool) error {
	if cp < 0 || cp >= 0x80 {
		return fmt.Errorf("cstyle: single escape for codepoint %#x out of ASCII range", cp)
	}
	if letter >= 0x80 {
		return fmt.Errorf("cstyle: escape letter %#x out of ASCII range", letter)
	}
	if prev := t.unsec[letter]; prev != -1 && prev != cp {
		return fmt.Errorf("cstyle: escape letter %q defined for both %#x and %#x", letter, prev, cp)
	}
	if !unescapeOnly {
		t.secs[cp] = letter
	}
	t.unsec[letter] = cp
	return nil
}

// EscapeLevelOf returns the minimum escape level at which cp must be
// escaped.
func (t *Table) EscapeLevelOf(cp rune) int {
	if int(cp) < len(t.levels) {
		return int(t.levels[cp])
	}
	return int(t.aboveLevel)
}

func (t *Table) singleEscape(cp rune) (byte, bool) {
	if cp >= 0 && cp < 0x80 && t.secs[cp] != 0 {
		return t.secs[cp], true
	}
	return 0, false
}
