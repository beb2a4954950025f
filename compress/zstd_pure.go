//go:build !cgo || !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

func newZstdDecoder(opts ...zstd.DOption) *zstd.Decoder {
	opts = append([]zstd.DOption{
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(MaxBackupSize),
	}, opts...)
	decoder, err := zstd.NewReader(nil, opts...)
	if err != nil {
		panic(fmt.Sprintf("create zstd decoder: %v", err))
	}

	return decoder
}

var (
	zstdDecoderPool = sync.Pool{
		New: func() any { return newZstdDecoder() },
	}
	// decoders here never grow the destination beyond its capacity
	zstdSizedDecoderPool = sync.Pool{
		New: func() any { return newZstdDecoder(zstd.WithDecodeAllCapLimit(true)) },
	}
	zstdEncoderPool = sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
				zstd.WithEncoderCRC(true),
			)
			if err != nil {
				panic(fmt.Sprintf("create zstd encoder: %v", err))
			}

			return encoder
		},
	}
)

// Compress compresses data into one checksummed zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decodes zstd frames of at most MaxBackupSize bytes in total.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// DecompressSize decodes zstd frames into a buffer of exactly size bytes
// capacity; longer output fails with zstd.ErrDecoderSizeExceeded.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if _, err := zstdFrameHeader(data, size); err != nil {
		return nil, err
	}

	decoder, _ := zstdSizedDecoderPool.Get().(*zstd.Decoder)
	defer zstdSizedDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
