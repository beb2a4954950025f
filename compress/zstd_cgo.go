//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/valyala/gozstd"

	"github.com/arloliu/eikit/errs"
)

// Compress compresses data into one zstd frame using libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 6), nil
}

// Decompress decodes one zstd frame using libzstd. The frame must declare a
// content size of at most MaxBackupSize bytes.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return nil, fmt.Errorf("zstd frame header: %w", err)
	}
	if !h.HasFCS || h.FrameContentSize > MaxBackupSize {
		return nil, fmt.Errorf("zstd frame of unknown or excessive size: %w", errs.ErrSizeOverrun)
	}

	return c.decode(data, int(h.FrameContentSize))
}

// DecompressSize decodes one zstd frame that declares exactly size bytes.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	h, err := zstdFrameHeader(data, size)
	if err != nil {
		return nil, err
	}
	if !h.HasFCS {
		return nil, fmt.Errorf("zstd frame without content size: %w", errs.ErrSizeMismatch)
	}

	return c.decode(data, size)
}

func (c ZstdCompressor) decode(data []byte, size int) ([]byte, error) {
	out, err := gozstd.Decompress(make([]byte, 0, size), data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(out) != size {
		return nil, fmt.Errorf("zstd decoded %d bytes, want %d: %w", len(out), size, errs.ErrSizeMismatch)
	}

	return out, nil
}
