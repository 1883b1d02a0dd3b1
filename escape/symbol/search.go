package symbol

// MatchResult classifies the outcome of a name Search.
type MatchResult int

const (
	// NotFound means no table entry matches any prefix of the fragment.
	NotFound MatchResult = iota

	// Found means a table entry equals the fragment exactly.
	Found

	// PartialFound means the returned entry is the longest name in the
	// table that is a proper prefix of the fragment. The caller re-reads
	// the fragment's excess units as literal text.
	PartialFound
)

// Search looks up the fragment units[start:end] in the sorted name table.
//
// An exact hit wins. Otherwise the longest table entry that is a proper
// prefix of the fragment is reported as PartialFound; this is how a
// terminator-less token like "&notfoo" resolves to "&not" while "&notin;"
// keeps its full match.
func (t *Table) Search(units []uint16, start, end int) (MatchResult, int) {
	if start >= end {
		return NotFound, -1
	}

	best := -1
	lo, hi := 0, len(t.names)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		cmp, prefix := compareName(t.names[mid], units, start, end)
		switch {
		case cmp == 0:
			return Found, mid
		case cmp < 0:
			// A proper prefix of the fragment always sorts before it, so
			// prefix candidates only ever appear on this side.
			if prefix && (best == -1 || len(t.names[mid]) > len(t.names[best])) {
				best = mid
			}
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	// The bisection can step over prefix entries (a non-prefix name may
	// sort between a prefix and the fragment). All prefixes of the
	// fragment sit before the insertion point in increasing length order,
	// so the first prefix walking back is the longest. The walk stays
	// inside the block of names sharing the fragment's two leading units.
	for j := lo - 1; j >= 0 && end-start >= 2; j-- {
		name := t.names[j]
		if units[start+1] > 0x7F || len(name) < 2 || name[1] != byte(units[start+1]) {
			break
		}
		if isNamePrefix(name, units, start, end) {
			if best == -1 || len(name) > len(t.names[best]) {
				best = j
			}
			break
		}
	}

	if best != -1 {
		return PartialFound, best
	}
	return NotFound, -1
}

// compareName orders name against the fragment units[start:end] by ordinal
// comparison. cmp follows the usual three-way convention; prefix is set
// when name is a proper prefix of the fragment.
func compareName(name string, units []uint16, start, end int) (cmp int, prefix bool) {
	n := end - start
	for i := 0; i < len(name) && i < n; i++ {
		c, u := rune(name[i]), rune(units[start+i])
		if c != u {
			if c < u {
				return -1, false
			}
			return 1, false
		}
	}
	switch {
	case len(name) == n:
		return 0, false
	case len(name) < n:
		return -1, true
	default:
		return 1, false
	}
}

func isNamePrefix(name string, units []uint16, start, end int) bool {
	if len(name) >= end-start {
		return false
	}
	for i := 0; i < len(name); i++ {
		if rune(name[i]) != rune(units[start+i]) {
			return false
		}
	}
	return true
}
