package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/eikit/endian"
	"github.com/arloliu/eikit/errs"
)

var engine = endian.GetLittleEndianEngine()

// RecordSize returns the packed size of a fixed-layout record, or -1 if v is
// not a fixed-size value.
func RecordSize(v any) int {
	return binary.Size(v)
}

// Marshal encodes a fixed-layout record into a newly allocated slice.
func Marshal(v any) ([]byte, error) {
	size := binary.Size(v)
	if size < 0 {
		return nil, fmt.Errorf("marshal %T: not a fixed-size record: %w", v, errs.ErrInvalidOperation)
	}

	return binary.Append(make([]byte, 0, size), engine, v)
}

// AppendRecord appends the encoding of a fixed-layout record to buf.
func AppendRecord(buf []byte, v any) ([]byte, error) {
	if binary.Size(v) < 0 {
		return buf, fmt.Errorf("append %T: not a fixed-size record: %w", v, errs.ErrInvalidOperation)
	}

	return binary.Append(buf, engine, v)
}

// Unmarshal decodes a fixed-layout record from the beginning of data and returns
// the number of bytes consumed.
func Unmarshal(data []byte, v any) (int, error) {
	size := binary.Size(v)
	if size < 0 {
		return 0, fmt.Errorf("unmarshal %T: not a fixed-size record: %w", v, errs.ErrInvalidOperation)
	}
	if len(data) < size {
		return 0, fmt.Errorf("unmarshal %T: need %d bytes, have %d: %w", v, size, len(data), errs.ErrTruncated)
	}

	return binary.Decode(data[:size], engine, v)
}

// ReadRecord reads exactly one fixed-layout record from r.
func ReadRecord(r io.Reader, v any) error {
	if err := binary.Read(r, engine, v); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("read %T: %w", v, errs.ErrTruncated)
		}

		return err
	}

	return nil
}

// WriteRecord writes one fixed-layout record to w.
func WriteRecord(w io.Writer, v any) error {
	return binary.Write(w, engine, v)
}
