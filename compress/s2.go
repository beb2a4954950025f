package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/eikit/errs"
)

// S2Compressor compresses backups as single S2 blocks.
//
// A block starts with its decoded length, so DecompressSize can reject a
// frame before allocating anything.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 block codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as one S2 block. Backups are written once, so the
// slower "better" mode is used.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes one S2 block of at most MaxBackupSize bytes.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > MaxBackupSize {
		return nil, fmt.Errorf("s2 block claims %d bytes: %w", n, errs.ErrSizeOverrun)
	}

	return s2.Decode(nil, data)
}

// DecompressSize decodes one S2 block whose stored length must equal size.
func (c S2Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("s2 block holds %d bytes, want %d: %w", n, size, errs.ErrSizeMismatch)
	}

	return s2.Decode(make([]byte, size), data)
}
