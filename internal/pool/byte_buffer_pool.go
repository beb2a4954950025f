package pool

import (
	"errors"
	"io"
	"sync"
)

// Default sizes of pooled buffers.
const (
	RecordBufferDefaultSize    = 1024 * 16        // 16KiB, one small record file
	RecordBufferMaxThreshold   = 1024 * 128       // 128KiB
	ArchiveBufferDefaultSize   = 1024 * 1024      // 1MiB
	ArchiveBufferMaxThreshold  = 1024 * 1024 * 32 // 32MiB
	growSmallStep              = RecordBufferDefaultSize
	growLargeCapacityThreshold = 4 * growSmallStep
)

var errNegativePosition = errors.New("pool: negative position")

// ByteBuffer is a growable in-memory byte buffer with a write cursor.
//
// Besides plain appends it implements io.WriteSeeker, so code that writes
// through a seekable stream, such as the archive writer, can build its output
// in memory. Writing past the end zero-fills the gap.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B   []byte
	pos int
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and rewinds the cursor, retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
	bb.pos = 0
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Pos returns the cursor position.
func (bb *ByteBuffer) Pos() int {
	return bb.pos
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow in fixed steps; buffers past four steps grow by 25% of
// their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := growSmallStep
	if cap(bb.B) > growLargeCapacityThreshold {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write writes data at the cursor, overwriting existing bytes and growing as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	end := bb.pos + len(data)
	if end > len(bb.B) {
		bb.Grow(end - len(bb.B))
		oldLen := len(bb.B)
		bb.B = bb.B[:end]
		if bb.pos > oldLen {
			clear(bb.B[oldLen:bb.pos])
		}
	}

	copy(bb.B[bb.pos:], data)
	bb.pos = end

	return len(data), nil
}

// Seek moves the cursor. Seeking past the end is allowed; the gap is zero-filled
// on the next write.
func (bb *ByteBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(bb.pos)
	case io.SeekEnd:
		base = int64(len(bb.B))
	default:
		return 0, errors.New("pool: invalid whence")
	}

	next := base + offset
	if next < 0 {
		return 0, errNegativePosition
	}
	bb.pos = int(next)

	return next, nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers whose capacity exceeds maxThreshold are dropped on Put instead of
// being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	recordDefaultPool  = NewByteBufferPool(RecordBufferDefaultSize, RecordBufferMaxThreshold)
	archiveDefaultPool = NewByteBufferPool(ArchiveBufferDefaultSize, ArchiveBufferMaxThreshold)
)

// GetRecordBuffer retrieves a ByteBuffer sized for one small record file.
func GetRecordBuffer() *ByteBuffer {
	return recordDefaultPool.Get()
}

// PutRecordBuffer returns a ByteBuffer to the record pool.
func PutRecordBuffer(bb *ByteBuffer) {
	recordDefaultPool.Put(bb)
}

// GetArchiveBuffer retrieves a ByteBuffer sized for a whole in-memory archive.
func GetArchiveBuffer() *ByteBuffer {
	return archiveDefaultPool.Get()
}

// PutArchiveBuffer returns a ByteBuffer to the archive pool.
func PutArchiveBuffer(bb *ByteBuffer) {
	archiveDefaultPool.Put(bb)
}
