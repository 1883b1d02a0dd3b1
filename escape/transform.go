package escape

import (
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/sunwei/textescape/escape/symbol"
)

// NewEscapeTransformer returns a transform.Transformer escaping a UTF-8
// byte stream against t, the streaming counterpart of Escape.
func NewEscapeTransformer(t *symbol.Table, typ Type, level Level) (transform.Transformer, error) {
	if err := validate(t, typ, level); err != nil {
		return nil, err
	}
	return escapeTransformer{t: t, typ: typ, level: level}, nil
}

// NewUnescapeTransformer returns a transform.Transformer resolving
// character references in a UTF-8 byte stream against t, the streaming
// counterpart of Unescape.
func NewUnescapeTransformer(t *symbol.Table) (transform.Transformer, error) {
	if t == nil {
		return nil, errNilTable
	}
	return unescapeTransformer{t: t}, nil
}

type escapeTransformer struct {
	transform.NopResetter
	t     *symbol.Table
	typ   Type
	level Level
}

func (e escapeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			// Invalid byte at EOF: copy it through untouched.
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = src[nSrc]
			nDst++
			nSrc++
			continue
		}

		valid := e.t.ValidCodepoint(r)
		if valid && int(e.level) < e.t.EscapeLevelOf(r) {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			copy(dst[nDst:], src[nSrc:nSrc+size])
			nDst += size
			nSrc += size
			continue
		}
		if !valid {
			nSrc += size
			continue
		}

		var scratch [48]byte
		out := scratch[:0]
		if name, ok := nameFor(e.t, r, e.typ); ok {
			out = append(out, name...)
		} else {
			out = appendNumeric(out, e.t, r, e.typ.useHexa())
		}
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], out)
		nDst += len(out)
		nSrc += size
	}
	return nDst, nSrc, nil
}

func nameFor(t *symbol.Table, cp rune, typ Type) (string, bool) {
	if !typ.useNames() {
		return "", false
	}
	return t.NameFor(cp)
}

type unescapeTransformer struct {
	transform.NopResetter
	t *symbol.Table
}

func (u unescapeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	marker := u.t.Marker()
	lookMax := u.t.MaxNameLen()
	if lookMax < 16 {
		lookMax = 16
	}

	for nSrc < len(src) {
		if src[nSrc] != marker {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = src[nSrc]
			nDst++
			nSrc++
			continue
		}

		// Gather the bytes that could still belong to a reference. A
		// candidate cut off by the end of src needs more input before it
		// can be resolved.
		i := nSrc + 1
		for i < len(src) && i-nSrc < lookMax {
			b := src[i]
			if b == '#' && i == nSrc+1 {
				i++
				continue
			}
			if 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9' {
				i++
				continue
			}
			if b == u.t.Terminator() {
				i++
			}
			break
		}
		if i == len(src) && !atEOF && i-nSrc < lookMax {
			return nDst, nSrc, transform.ErrShortSrc
		}

		var units [48]uint16
		n := i - nSrc
		for k := 0; k < n; k++ {
			units[k] = uint16(src[nSrc+k])
		}

		var cps [2]rune
		var ncps, consumed int
		var ok bool
		if n >= 2 && src[nSrc+1] == '#' {
			cps[0], consumed, ok = parseNumeric(u.t, units[:n], 0, n)
			ncps = 1
		} else if n >= 2 && isAlnumUnit(units[1]) {
			cps, ncps, consumed, ok = resolveName(u.t, units[:n], 0, n)
		}
		if !ok {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = marker
			nDst++
			nSrc++
			continue
		}

		var scratch [2 * utf8.UTFMax]byte
		out := scratch[:0]
		out = utf8.AppendRune(out, cps[0])
		if ncps == 2 {
			out = utf8.AppendRune(out, cps[1])
		}
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], out)
		nDst += len(out)
		nSrc += consumed
	}
	return nDst, nSrc, nil
}
