package mob

import (
	"fmt"
	"strings"

	"github.com/arloliu/eikit/codec"
	"github.com/arloliu/eikit/errs"
)

// SeedSize is the length of the little-endian key prefix of encrypted strings.
const SeedSize = 4

// CryptData applies the string cipher to data[SeedSize:] in place, keyed by
// the first SeedSize bytes. The transform is its own inverse. Buffers shorter
// than the seed are left untouched.
func CryptData(data []byte) {
	if len(data) < SeedSize {
		return
	}

	key := engine.Uint32(data)
	for i := SeedSize; i < len(data); i++ {
		tmp := ((((key * 13) << 4) + key) << 8) - key
		key += (tmp << 2) + 2531011
		data[i] ^= byte(key >> 16)
	}
}

// Seed returns the seed of an encrypted payload, or 0 if it is too short.
func Seed(data []byte) uint32 {
	if len(data) < SeedSize {
		return 0
	}

	return engine.Uint32(data)
}

// EncryptString encodes s in codepage 1251 and encrypts it under seed.
func EncryptString(s string, seed uint32) ([]byte, error) {
	text, err := codec.Encode(s)
	if err != nil {
		return nil, err
	}

	data := make([]byte, SeedSize, SeedSize+len(text))
	engine.PutUint32(data, seed)
	data = append(data, text...)
	CryptData(data)

	return data, nil
}

// DecryptString decrypts an encrypted payload. data is not modified.
func DecryptString(data []byte) (string, error) {
	if len(data) < SeedSize {
		return "", fmt.Errorf("encrypted string of %d bytes: %w", len(data), errs.ErrTruncated)
	}

	tmp := clone(data)
	CryptData(tmp)

	return codec.Decode(tmp[SeedSize:]), nil
}

// TrimNUL removes one trailing NUL terminator from s.
func TrimNUL(s string) string {
	return strings.TrimSuffix(s, "\x00")
}
