package escape

// Level selects how aggressively a codec escapes. Levels are cumulative:
// everything escaped at level N is also escaped at N+1.
type Level int

const (
	// LevelMarkupSignificant escapes only the codepoints that carry
	// markup meaning in the format (for HTML: & < > " ').
	LevelMarkupSignificant Level = 1 + iota

	// LevelNonASCII escapes markup-significant codepoints plus everything
	// outside ASCII.
	LevelNonASCII

	// LevelNonAlphanumeric escapes everything except ASCII letters and
	// digits.
	LevelNonAlphanumeric

	// LevelAll escapes every codepoint.
	LevelAll
)

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelMarkupSignificant && l <= LevelAll
}

func (l Level) String() string {
	switch l {
	case LevelMarkupSignificant:
		return "markup-significant"
	case LevelNonASCII:
		return "non-ascii"
	case LevelNonAlphanumeric:
		return "non-alphanumeric"
	case LevelAll:
		return "all"
	default:
		return "invalid"
	}
}
