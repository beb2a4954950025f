package compress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// terrainLike mimics an encoded sector: long runs of repeated vertex records
// with slowly changing heights.
func terrainLike(size int) []byte {
	out := make([]byte, 0, size+8)
	for i := 0; len(out) < size; i++ {
		rec := []byte{0, 0, byte(i / 512), 0x10, 0xE8, 0x03, 0x1F, 0xE1}
		out = append(out, rec...)
	}

	return out[:size]
}

func TestCreateCodec(t *testing.T) {
	for _, typ := range allTypes {
		c, err := CreateCodec(typ, "test")
		require.NoError(t, err, typ.String())
		require.NotNil(t, c)
	}

	_, err := CreateCodec(format.CompressionType(0), "backup")
	require.ErrorIs(t, err, errs.ErrInvalidCodecType)
	require.Contains(t, err.Error(), "backup")

	_, err = CreateCodec(format.CompressionType(99), "test")
	require.ErrorIs(t, err, errs.ErrInvalidCodecType)
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	sizes := []int{1, 17, 1024, 70_000}
	for _, typ := range allTypes {
		c, err := CreateCodec(typ, "test")
		require.NoError(t, err)

		t.Run(typ.String(), func(t *testing.T) {
			for _, size := range sizes {
				data := terrainLike(size)
				packed, err := c.Compress(data)
				require.NoError(t, err)

				got, err := c.Decompress(packed)
				require.NoError(t, err)
				require.Equal(t, data, got, "size %d", size)
			}
		})
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for _, typ := range allTypes {
		c, err := CreateCodec(typ, "test")
		require.NoError(t, err)

		packed, err := c.Compress(nil)
		require.NoError(t, err, typ.String())
		got, err := c.Decompress(packed)
		require.NoError(t, err, typ.String())
		require.Empty(t, got, typ.String())
	}
}

func TestAllCodecs_Compresses(t *testing.T) {
	data := terrainLike(64 * 1024)
	for _, typ := range allTypes[1:] {
		c, err := CreateCodec(typ, "test")
		require.NoError(t, err)

		packed, err := c.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(packed), len(data)/2, typ.String())
	}
}

func TestAllCodecs_DecompressSize(t *testing.T) {
	data := terrainLike(10_000)
	for _, typ := range allTypes {
		c, err := CreateCodec(typ, "test")
		require.NoError(t, err)

		t.Run(typ.String(), func(t *testing.T) {
			packed, err := c.Compress(data)
			require.NoError(t, err)

			got, err := c.DecompressSize(packed, len(data))
			require.NoError(t, err)
			require.Equal(t, data, got)

			_, err = c.DecompressSize(packed, len(data)-1)
			require.Error(t, err)
		})
	}
}

func TestS2_DecompressSizeChecksLength(t *testing.T) {
	c := NewS2Compressor()
	packed, err := c.Compress(terrainLike(4096))
	require.NoError(t, err)

	_, err = c.DecompressSize(packed, 100)
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
}

func TestZstd_DecompressSizeChecksFrame(t *testing.T) {
	c := NewZstdCompressor()
	packed, err := c.Compress(terrainLike(4096))
	require.NoError(t, err)

	_, err = c.DecompressSize(packed, 100)
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := bytes.Repeat([]byte{0xFF, 0x00, 0x13}, 40)
	for _, typ := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		c, err := CreateCodec(typ, "test")
		require.NoError(t, err)

		_, err = c.Decompress(garbage)
		require.Error(t, err, typ.String())
	}
}

func TestAllCodecs_Concurrent(t *testing.T) {
	data := terrainLike(8 * 1024)
	for _, typ := range allTypes {
		c, err := CreateCodec(typ, "test")
		require.NoError(t, err)

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 20 {
					packed, err := c.Compress(data)
					if !assertNoError(t, err) {
						return
					}
					got, err := c.Decompress(packed)
					if !assertNoError(t, err) || !bytes.Equal(data, got) {
						t.Errorf("%s: round trip mismatch", typ)
						return
					}
				}
			}()
		}
		wg.Wait()
	}
}

func assertNoError(t *testing.T, err error) bool {
	t.Helper()
	if err != nil {
		t.Error(err)
		return false
	}

	return true
}

func BenchmarkCodecs_Compress(b *testing.B) {
	data := terrainLike(256 * 1024)
	for _, typ := range allTypes {
		c, _ := CreateCodec(typ, "test")
		b.Run(typ.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = c.Compress(data)
			}
		})
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	data := terrainLike(256 * 1024)
	for _, typ := range allTypes {
		c, _ := CreateCodec(typ, "test")
		packed, _ := c.Compress(data)
		b.Run(typ.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = c.Decompress(packed)
			}
		})
	}
}
