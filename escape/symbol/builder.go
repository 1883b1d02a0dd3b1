package symbol

import (
	"fmt"
	"sort"

	jww "github.com/spf13/jwalterweatherman"
)

// New builds an immutable Table from refs.
//
// Malformed records (empty or non-ASCII names, names not starting with the
// marker, zero or more than two codepoints) are configuration errors and
// fail the build; they are never deferred to escape/unescape time.
// Exact duplicate records are dropped with a warning.
func New(refs []Reference, opts Options) (*Table, error) {
	if opts.Marker == 0 {
		opts.Marker = DefaultOptions.Marker
	}
	if opts.Terminator == 0 {
		opts.Terminator = DefaultOptions.Terminator
	}

	seen := make(map[string][]rune, len(refs))
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if err := validateReference(ref, opts.Marker); err != nil {
			return nil, err
		}
		if prev, ok := seen[ref.Name]; ok {
			if !sameCodepoints(prev, ref.Codepoints) {
				return nil, fmt.Errorf("symbol: reference %q defined twice with different codepoints", ref.Name)
			}
			jww.WARN.Printf("symbol: dropping duplicate reference %q", ref.Name)
			continue
		}
		seen[ref.Name] = ref.Codepoints
		names = append(names, ref.Name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("symbol: no references given")
	}

	sort.Strings(names)

	t := &Table{
		marker:     opts.Marker,
		terminator: opts.Terminator,
		names:      names,
		codepoints: make([]int32, len(names)),
		levels:     opts.Levels,
		aboveLevel: opts.AboveLevel,
		validator:  opts.Validator,
		remap:      opts.NumericRemap,
	}

	// Parallel codepoint array; two-codepoint expansions go to the pairs
	// slice behind a negative sentinel.
	var maxSingle rune
	for i, name := range names {
		cps := seen[name]
		if len(name) > t.maxNameLen {
			t.maxNameLen = len(name)
		}
		if len(cps) == 2 {
			t.pairs = append(t.pairs, [2]rune{cps[0], cps[1]})
			t.codepoints[i] = int32(-len(t.pairs))
			continue
		}
		t.codepoints[i] = int32(cps[0])
		if cps[0] > maxSingle {
			maxSingle = cps[0]
		}
	}

	// Canonical name per codepoint: walking the sorted names in order and
	// replacing on a better-or-equal candidate leaves the lexicographically
	// last of the best names as canonical.
	canonical := make(map[rune]int32)
	for i, name := range names {
		if t.codepoints[i] < 0 {
			// Never escape to a two-codepoint reference; escaping the two
			// codepoints separately produces identical output.
			continue
		}
		cp := rune(t.codepoints[i])
		best, ok := canonical[cp]
		if !ok || betterName(name, names[best], opts) {
			canonical[cp] = int32(i)
		}
	}

	denseLen := int(maxSingle) + 1
	if denseLen > maxDenseCodepoint {
		denseLen = maxDenseCodepoint
	}
	t.dense = make([]int32, denseLen)
	for i := range t.dense {
		t.dense[i] = noReference
	}
	for cp, i := range canonical {
		if int(cp) < len(t.dense) {
			t.dense[cp] = i
			continue
		}
		if t.overflow == nil {
			t.overflow = make(map[rune]int32)
		}
		t.overflow[cp] = i
	}

	return t, nil
}

func validateReference(ref Reference, marker byte) error {
	if len(ref.Name) < 2 {
		return fmt.Errorf("symbol: reference name %q too short", ref.Name)
	}
	if ref.Name[0] != marker {
		return fmt.Errorf("symbol: reference name %q does not start with marker %q", ref.Name, marker)
	}
	for i := 0; i < len(ref.Name); i++ {
		if c := ref.Name[i]; c <= 0x20 || c >= 0x7F {
			return fmt.Errorf("symbol: reference name %q contains non-printable or non-ASCII byte", ref.Name)
		}
	}
	switch len(ref.Codepoints) {
	case 1, 2:
	default:
		return fmt.Errorf("symbol: reference %q has %d codepoints, want 1 or 2", ref.Name, len(ref.Codepoints))
	}
	for _, cp := range ref.Codepoints {
		if cp < 0 || cp > 0x10FFFF {
			return fmt.Errorf("symbol: reference %q maps to codepoint %#x out of range", ref.Name, cp)
		}
	}
	return nil
}

func sameCodepoints(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// betterName reports whether candidate beats or equals current as the
// canonical escape for a codepoint: terminator-bearing names first (when
// configured), then the shortest. Between equals the candidate wins, so
// the lexicographically last of the best names becomes canonical; for
// HTML that picks "&lt;" over the legacy "&LT;" alias.
func betterName(candidate, current string, opts Options) bool {
	if opts.PreferTerminated {
		ct := candidate[len(candidate)-1] == opts.Terminator
		pt := current[len(current)-1] == opts.Terminator
		if ct != pt {
			return ct
		}
	}
	return len(candidate) <= len(current)
}
