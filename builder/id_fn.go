package builder

import "strconv"

// IDFn generates a node identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// LetterID returns puzzle-style two-letter IDs: 0→"AA", 1→"AB", 26→"BA",
// up to 675→"ZZ". Larger indices fall back to "N676", "N677", ...
// Negative indices yield "".
func LetterID(idx int) string {
	switch {
	case idx < 0:
		return ""
	case idx < 26*26:
		return string([]byte{byte('A' + idx/26), byte('A' + idx%26)})
	default:
		return "N" + strconv.Itoa(idx)
	}
}

// DecimalID returns the decimal string of idx.
func DecimalID(idx int) string { return strconv.Itoa(idx) }
