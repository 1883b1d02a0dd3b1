package symbol

// A Reference associates one named character reference with the codepoint
// sequence it expands to.
//
// Name is the full wire form including the marker and, where the format
// defines one, the terminator (e.g. "&amp;", "&not"). Codepoints holds one
// or two codepoints; two-codepoint references exist in HTML5 for a handful
// of ligature-like characters and are used during unescaping only.
type Reference struct {
	Name       string
	Codepoints []rune
}

// Options configures a Table build.
type Options struct {
	// Marker starts every reference on the wire ('&' for markup formats).
	Marker byte

	// Terminator ends a well-formed reference (';' for markup formats).
	Terminator byte

	// PreferTerminated makes the builder pick terminator-bearing names as
	// the canonical escape for a codepoint, in preference to legacy
	// unterminated aliases.
	PreferTerminated bool

	// Levels maps low codepoints to the minimum escape level at which they
	// must be escaped. Codepoints at or beyond len(Levels) share AboveLevel.
	Levels []uint8

	// AboveLevel is the escape level bucket for all codepoints not covered
	// by Levels.
	AboveLevel uint8

	// Validator reports whether a codepoint may appear in escaped output at
	// all. Codepoints failing the predicate are dropped during escaping.
	// A nil Validator admits every codepoint.
	Validator func(rune) bool

	// NumericRemap translates a small set of numeric reference values
	// during unescaping (the Windows-1252 compatibility shim for HTML).
	// Applied to numeric references only, never to named ones.
	NumericRemap map[rune]rune
}

// DefaultOptions is the starting point for markup-style tables.
var DefaultOptions = Options{
	Marker:           '&',
	Terminator:       ';',
	PreferTerminated: true,
	AboveLevel:       2,
}
