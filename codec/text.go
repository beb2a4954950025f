package codec

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/arloliu/eikit/errs"
)

// Encode converts s to Windows-1251 bytes.
// Characters outside the codepage fail with errs.ErrUnmappableRune.
func Encode(s string) ([]byte, error) {
	if isASCII(s) {
		return []byte(s), nil
	}

	b, err := charmap.Windows1251.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", s, errs.ErrUnmappableRune)
	}

	return b, nil
}

// Decode converts Windows-1251 bytes to a Go string. Every byte maps to a character.
func Decode(b []byte) string {
	if isASCIIBytes(b) {
		return string(b)
	}

	s, _ := charmap.Windows1251.NewDecoder().Bytes(b)

	return string(s)
}

// EncodedLen returns the number of codepage bytes s occupies.
func EncodedLen(s string) (int, error) {
	if isASCII(s) {
		return len(s), nil
	}

	b, err := Encode(s)
	if err != nil {
		return 0, err
	}

	return len(b), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}

	return true
}

func isASCIIBytes(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}

	return true
}
