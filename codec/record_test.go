package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eikit/errs"
)

type packedRecord struct {
	Signature uint32
	Count     uint16
	Scale     float32
	Kind      uint8
}

func TestRecordSize(t *testing.T) {
	// No alignment gaps: 4 + 2 + 4 + 1.
	require.Equal(t, 11, RecordSize(packedRecord{}))
	require.Equal(t, -1, RecordSize(map[string]int{}))
}

func TestMarshalUnmarshal(t *testing.T) {
	rec := packedRecord{Signature: 0x019CE23C, Count: 2, Scale: 1, Kind: 3}

	data, err := Marshal(&rec)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x3C, 0xE2, 0x9C, 0x01,
		0x02, 0x00,
		0x00, 0x00, 0x80, 0x3F,
		0x03,
	}, data)

	var decoded packedRecord
	n, err := Unmarshal(append(data, 0xAA), &decoded)
	require.NoError(t, err)
	require.Equal(t, 11, n)
	require.Equal(t, rec, decoded)
}

func TestUnmarshalTruncated(t *testing.T) {
	var rec packedRecord
	_, err := Unmarshal([]byte{1, 2, 3}, &rec)
	require.ErrorIs(t, err, errs.ErrTruncated)
	require.ErrorIs(t, err, errs.ErrCorruptData)
}

func TestMarshalNotFixed(t *testing.T) {
	_, err := Marshal([]string{"a"})
	require.ErrorIs(t, err, errs.ErrInvalidOperation)

	_, err = AppendRecord(nil, map[int]int{})
	require.ErrorIs(t, err, errs.ErrInvalidOperation)
}

func TestReadWriteRecord(t *testing.T) {
	rec := packedRecord{Signature: 7, Count: 65535, Scale: -0.5, Kind: 1}

	var buf bytes.Buffer
	require.NoError(t, WriteRecord(&buf, &rec))
	require.Equal(t, 11, buf.Len())

	var decoded packedRecord
	require.NoError(t, ReadRecord(&buf, &decoded))
	require.Equal(t, rec, decoded)

	err := ReadRecord(bytes.NewReader([]byte{1, 2}), &decoded)
	require.ErrorIs(t, err, errs.ErrTruncated)

	err = ReadRecord(bytes.NewReader(nil), &decoded)
	require.ErrorIs(t, err, errs.ErrTruncated)
}
