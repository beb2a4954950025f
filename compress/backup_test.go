package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eikit/endian"
	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/format"
)

var engine = endian.GetLittleEndianEngine()

func TestBackup_RoundTrip(t *testing.T) {
	data := terrainLike(100_000)
	for _, typ := range allTypes {
		t.Run(typ.String(), func(t *testing.T) {
			frame, err := EncodeBackup(typ, data)
			require.NoError(t, err)
			require.Equal(t, byte(typ), frame[4])

			got, gotType, err := DecodeBackup(frame)
			require.NoError(t, err)
			require.Equal(t, typ, gotType)
			require.Equal(t, data, got)
		})
	}
}

func TestBackup_Empty(t *testing.T) {
	for _, typ := range allTypes {
		frame, err := EncodeBackup(typ, nil)
		require.NoError(t, err)

		got, _, err := DecodeBackup(frame)
		require.NoError(t, err, typ.String())
		require.Empty(t, got)
	}
}

func TestBackup_Header(t *testing.T) {
	frame, err := EncodeBackup(format.CompressionNone, []byte("abc"))
	require.NoError(t, err)
	require.Equal(t, []byte{
		'E', 'I', 'B', 'K',
		byte(format.CompressionNone),
		3, 0, 0, 0, 0, 0, 0, 0,
		'a', 'b', 'c',
	}, frame)
}

func TestBackup_InvalidType(t *testing.T) {
	_, err := EncodeBackup(format.CompressionType(0), []byte("x"))
	require.ErrorIs(t, err, errs.ErrInvalidCodecType)
}

func TestBackup_Corrupt(t *testing.T) {
	good, err := EncodeBackup(format.CompressionS2, terrainLike(4096))
	require.NoError(t, err)

	mutate := func(fn func(b []byte) []byte) []byte {
		return fn(append([]byte(nil), good...))
	}

	tests := []struct {
		name   string
		frame  []byte
		target error
	}{
		{"short", good[:5], errs.ErrTruncated},
		{"magic", mutate(func(b []byte) []byte { b[0] = 'X'; return b }), errs.ErrInvalidSignature},
		{"codec", mutate(func(b []byte) []byte { b[4] = 0x7F; return b }), errs.ErrCorruptData},
		{"size", mutate(func(b []byte) []byte { b[5]++; return b }), errs.ErrSizeMismatch},
		{"payload", mutate(func(b []byte) []byte { return b[:len(b)-10] }), errs.ErrCorruptData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeBackup(tt.frame)
			require.ErrorIs(t, err, tt.target)
			require.ErrorIs(t, err, errs.ErrCorruptData)
		})
	}
}

func TestBackup_LZ4SizeBound(t *testing.T) {
	frame, err := EncodeBackup(format.CompressionLZ4, terrainLike(512))
	require.NoError(t, err)
	// claim about 1MiB, far beyond what the payload can expand to
	frame[7] = 0x10

	_, _, err = DecodeBackup(frame)
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
}

func TestBackup_ExcessiveSize(t *testing.T) {
	for _, typ := range allTypes {
		frame, err := EncodeBackup(typ, terrainLike(512))
		require.NoError(t, err)
		frame[12] = 0x10

		_, _, err = DecodeBackup(frame)
		require.ErrorIs(t, err, errs.ErrSizeOverrun, typ.String())
		require.ErrorIs(t, err, errs.ErrCorruptData, typ.String())
	}
}

func TestBackup_ExpandsBeyondDeclaredSize(t *testing.T) {
	// a highly compressible payload that decodes far beyond the header size
	data := make([]byte, 1<<20)
	for _, typ := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			frame, err := EncodeBackup(typ, data)
			require.NoError(t, err)
			engine.PutUint64(frame[5:], 100)

			_, _, err = DecodeBackup(frame)
			require.ErrorIs(t, err, errs.ErrCorruptData)
		})
	}
}
