package xmlescape

import (
	"sync"

	"github.com/sunwei/textescape/escape/symbol"
)

// xmlReferences holds the five entities predefined by the XML spec.
var xmlReferences = []symbol.Reference{
	{Name: "&amp;", Codepoints: []rune{'&'}},
	{Name: "&apos;", Codepoints: []rune{'\''}},
	{Name: "&gt;", Codepoints: []rune{'>'}},
	{Name: "&lt;", Codepoints: []rune{'<'}},
	{Name: "&quot;", Codepoints: []rune{'"'}},
}

var (
	xml10Once sync.Once
	xml10Tbl  *symbol.Table
	xml10Err  error

	xml11Once sync.Once
	xml11Tbl  *symbol.Table
	xml11Err  error
)

// XML10Table returns the shared XML 1.0 table, building it on first use.
func XML10Table() (*symbol.Table, error) {
	xml10Once.Do(func() {
		xml10Tbl, xml10Err = symbol.New(xmlReferences, xmlOptions(validXML10))
	})
	return xml10Tbl, xml10Err
}

// XML11Table returns the shared XML 1.1 table, building it on first use.
func XML11Table() (*symbol.Table, error) {
	xml11Once.Do(func() {
		xml11Tbl, xml11Err = symbol.New(xmlReferences, xmlOptions(validXML11))
	})
	return xml11Tbl, xml11Err
}

// Prepare forces both tables to be built, reporting the first error.
func Prepare() error {
	if _, err := XML10Table(); err != nil {
		return err
	}
	_, err := XML11Table()
	return err
}

func xmlOptions(validator func(rune) bool) symbol.Options {
	opts := symbol.DefaultOptions
	opts.Levels = xmlEscapeLevels()
	opts.Validator = validator
	return opts
}

func xmlEscapeLevels() []uint8 {
	levels := make([]uint8, 0x80)
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
	for _, c := range "&<>\"'" {
		levels[c] = 1
	}
	return levels
}

// validXML10 is the XML 1.0 Char production.
func validXML10(cp rune) bool {
	return cp == 0x9 || cp == 0xA || cp == 0xD ||
		(cp >= 0x20 && cp <= 0xD7FF) ||
		(cp >= 0xE000 && cp <= 0xFFFD) ||
		(cp >= 0x10000 && cp <= 0x10FFFF)
}

// validXML11 is the XML 1.1 Char production, which forbids only NUL in
// the low range.
func validXML11(cp rune) bool {
	return (cp >= 0x1 && cp <= 0xD7FF) ||
		(cp >= 0xE000 && cp <= 0xFFFD) ||
		(cp >= 0x10000 && cp <= 0x10FFFF)
}
