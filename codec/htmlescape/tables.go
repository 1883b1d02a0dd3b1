package htmlescape

import (
	"sync"

	"github.com/sunwei/textescape/escape/symbol"
)

var (
	html5Once sync.Once
	html5Tbl  *symbol.Table
	html5Err  error

	html4Once sync.Once
	html4Tbl  *symbol.Table
	html4Err  error
)

// HTML5Table returns the shared HTML5 reference table, building it on
// first use.
func HTML5Table() (*symbol.Table, error) {
	html5Once.Do(func() {
		html5Tbl, html5Err = symbol.New(html5References, htmlOptions())
	})
	return html5Tbl, html5Err
}

// HTML4Table returns the shared HTML 4.01 reference table, building it on
// first use.
func HTML4Table() (*symbol.Table, error) {
	html4Once.Do(func() {
		html4Tbl, html4Err = symbol.New(html4References(), htmlOptions())
	})
	return html4Tbl, html4Err
}

// Prepare forces both tables to be built, reporting the first error.
func Prepare() error {
	if _, err := HTML5Table(); err != nil {
		return err
	}
	_, err := HTML4Table()
	return err
}

func html4References() []symbol.Reference {
	names := make(map[string]bool, len(html4Names))
	for _, n := range html4Names {
		names[n] = true
	}
	refs := make([]symbol.Reference, 0, len(html4Names))
	for _, ref := range html5References {
		if names[ref.Name] {
			refs = append(refs, ref)
		}
	}
	return refs
}

func htmlOptions() symbol.Options {
	opts := symbol.DefaultOptions
	opts.Levels = htmlEscapeLevels()
	opts.NumericRemap = win1252Remap
	return opts
}

// htmlEscapeLevels assigns the minimum escape level per low codepoint:
// markup-significant characters and the C1 control range at 1, ASCII
// letters and digits at 4 (only escaped when everything is), the rest of
// ASCII at 3. Everything above the table shares level 2 (non-ASCII).
func htmlEscapeLevels() []uint8 {
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
	for _, c := range "&<>\"'" {
		levels[c] = 1
	}
	for c := 0x7F; c <= 0x9F; c++ {
		levels[c] = 1
	}
	return levels
}

// win1252Remap translates the numeric references 0x80-0x9F the way
// browsers do: legacy content wrote Windows-1252 byte values where
// codepoints were meant. Applied to numeric references only.
var win1252Remap = map[rune]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}
