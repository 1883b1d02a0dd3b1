package escape

// Type selects the escaped representation a codec produces: whether named
// references are used when available, and whether the numeric fallback is
// decimal or hexadecimal. Pure policy, no state.
type Type int

const (
	// TypeNamedDefaultDecimal prefers named references, falling back to
	// decimal numeric references.
	TypeNamedDefaultDecimal Type = 1 + iota

	// TypeNamedDefaultHexa prefers named references, falling back to
	// hexadecimal numeric references.
	TypeNamedDefaultHexa

	// TypeDecimal always produces decimal numeric references.
	TypeDecimal

	// TypeHexa always produces hexadecimal numeric references.
	TypeHexa
)

// Valid reports whether t is one of the defined types.
func (t Type) Valid() bool {
	return t >= TypeNamedDefaultDecimal && t <= TypeHexa
}

func (t Type) useNames() bool {
	return t == TypeNamedDefaultDecimal || t == TypeNamedDefaultHexa
}

func (t Type) useHexa() bool {
	return t == TypeNamedDefaultHexa || t == TypeHexa
}

func (t Type) String() string {
	switch t {
	case TypeNamedDefaultDecimal:
		return "named-default-decimal"
	case TypeNamedDefaultHexa:
		return "named-default-hexa"
	case TypeDecimal:
		return "decimal"
	case TypeHexa:
		return "hexa"
	default:
		return "invalid"
	}
}
