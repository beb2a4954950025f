package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/eikit/errs"
)

// ZstdCompressor compresses payloads as standard zstd frames.
//
// It gives the best ratio of the built-in codecs and suits backups that are
// written once and rarely read.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a zstd codec with the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// zstdFrameHeader decodes the header of the first frame in data and rejects a
// declared content size other than size.
func zstdFrameHeader(data []byte, size int) (zstd.Header, error) {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return h, fmt.Errorf("zstd frame header: %w", err)
	}
	if h.HasFCS && h.FrameContentSize != uint64(size) { //nolint: gosec
		return h, fmt.Errorf("zstd frame holds %d bytes, want %d: %w", h.FrameContentSize, size, errs.ErrSizeMismatch)
	}

	return h, nil
}
