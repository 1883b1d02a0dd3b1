package symbol

// maxDenseCodepoint bounds the directly indexed part of the
// codepoint-to-name lookup. Codepoints at or above it are rare enough that
// a map lookup is acceptable.
const maxDenseCodepoint = 0x2FFF

// noReference marks a dense slot with no named reference.
const noReference = -1

// A Table is the immutable reference table one format variant escapes and
// unescapes against. Build it once with New and share it freely; all
// methods are safe for concurrent use.
type Table struct {
	marker     byte
	terminator byte

	// names is sorted lexicographically (ordinal byte order); the binary
	// search in Search depends on this.
	names []string

	// codepoints is parallel to names. A negative value v refers to
	// pairs[-v-1], the two-codepoint expansion of the name.
	codepoints []int32
	pairs      [][2]rune

	// dense[cp] and overflow[cp] give the canonical name index for cp,
	// for low and high codepoints respectively.
	dense    []int32
	overflow map[rune]int32

	levels     []uint8
	aboveLevel uint8
	validator  func(rune) bool
	remap      map[rune]rune

	maxNameLen int
}

// Marker returns the byte starting every reference on the wire.
func (t *Table) Marker() byte {
	return t.marker
}

// Terminator returns the byte ending a well-formed reference.
func (t *Table) Terminator() byte {
	return t.terminator
}

// Len returns the number of names in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// Name returns the i-th name in sorted order.
func (t *Table) Name(i int) string {
	return t.names[i]
}

// MaxNameLen returns the length of the longest name in the table.
func (t *Table) MaxNameLen() int {
	return t.maxNameLen
}

// EscapeLevelOf returns the minimum escape level at which cp must be
// escaped. A codepoint is escaped when the requested level is at or above
// this value.
func (t *Table) EscapeLevelOf(cp rune) int {
	if int(cp) < len(t.levels) {
		return int(t.levels[cp])
	}
	return int(t.aboveLevel)
}

// ValidCodepoint reports whether cp may appear in this format's escaped
// output at all. Invalid codepoints are dropped during escaping.
func (t *Table) ValidCodepoint(cp rune) bool {
	return t.validator == nil || t.validator(cp)
}

// NameFor returns the canonical named reference for cp, if one exists.
func (t *Table) NameFor(cp rune) (string, bool) {
	var i int32 = noReference
	if int(cp) < len(t.dense) {
		i = t.dense[cp]
	} else if t.overflow != nil {
		if v, ok := t.overflow[cp]; ok {
			i = v
		}
	}
	if i == noReference {
		return "", false
	}
	return t.names[i], true
}

// Expand returns the codepoint expansion of the i-th name: one codepoint
// (n == 1) or a two-codepoint pair (n == 2).
func (t *Table) Expand(i int) (cps [2]rune, n int) {
	v := t.codepoints[i]
	if v < 0 {
		return t.pairs[-v-1], 2
	}
	return [2]rune{rune(v), 0}, 1
}

// Remap applies the format's numeric-reference translation to cp.
// It returns cp unchanged when no translation is defined.
func (t *Table) Remap(cp rune) rune {
	if t.remap != nil {
		if r, ok := t.remap[cp]; ok {
			return r
		}
	}
	return cp
}
