package codec

// LowerASCII lower-cases c if it is an ASCII capital letter.
func LowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}

// FoldASCII lower-cases ASCII letters of s. Other characters pass through unchanged.
func FoldASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = LowerASCII(b[j])
			}

			return string(b)
		}
	}

	return s
}

// EqualFold reports whether a and b are equal after ASCII lower-casing.
// Non-ASCII characters compare as-is.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if LowerASCII(a[i]) != LowerASCII(b[i]) {
			return false
		}
	}

	return true
}

// Hash32 returns the archive string hash of s: the sum of its codepage bytes after
// ASCII lower-casing, reduced modulo tableSize unless tableSize is 0.
func Hash32(s string, tableSize uint32) (uint32, error) {
	b, err := Encode(FoldASCII(s))
	if err != nil {
		return 0, err
	}

	var hash uint32
	for _, c := range b {
		hash += uint32(c)
	}

	if tableSize == 0 {
		return hash, nil
	}

	return hash % tableSize, nil
}

// Hash16 is the 16-bit variant of Hash32. The unreduced hash is truncated to 16 bits.
func Hash16(s string, tableSize uint16) (uint16, error) {
	hash, err := Hash32(s, 0)
	if err != nil {
		return 0, err
	}

	if tableSize == 0 {
		return uint16(hash), nil //nolint: gosec
	}

	return uint16(hash % uint32(tableSize)), nil //nolint: gosec
}
