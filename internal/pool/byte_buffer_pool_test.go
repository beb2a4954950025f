package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
	assert.Equal(t, 0, bb.Pos())
}

func TestByteBuffer_WriteAppends(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = bb.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, []byte("hello world"), bb.Bytes())
	assert.Equal(t, 11, bb.Pos())
}

func TestByteBuffer_SeekAndOverwrite(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("XXXXdata"))

	pos, err := bb.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.Equal(t, int64(0), pos)

	_, err = bb.Write([]byte("HEAD"))
	require.NoError(t, err)
	assert.Equal(t, []byte("HEADdata"), bb.Bytes())

	pos, err = bb.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(8), pos)
}

func TestByteBuffer_SeekPastEndZeroFills(t *testing.T) {
	bb := NewByteBuffer(4)
	_, _ = bb.Write([]byte{0xFF})

	_, err := bb.Seek(3, io.SeekCurrent)
	require.NoError(t, err)
	_, err = bb.Write([]byte{0xAA})
	require.NoError(t, err)

	assert.Equal(t, []byte{0xFF, 0, 0, 0, 0xAA}, bb.Bytes())
}

func TestByteBuffer_SeekReusedMemoryZeroFills(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte("garbage!"))
	bb.Reset()

	_, _ = bb.Seek(4, io.SeekStart)
	_, _ = bb.Write([]byte{1})

	assert.Equal(t, []byte{0, 0, 0, 0, 1}, bb.Bytes())
}

func TestByteBuffer_SeekErrors(t *testing.T) {
	bb := NewByteBuffer(4)

	_, err := bb.Seek(-1, io.SeekStart)
	require.Error(t, err)

	_, err = bb.Seek(0, 42)
	require.Error(t, err)
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("small buffer grows by step", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(1)
		assert.GreaterOrEqual(t, bb.Cap(), growSmallStep)
	})

	t.Run("large request honored", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(growSmallStep * 3)
		assert.GreaterOrEqual(t, bb.Cap(), growSmallStep*3)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(2)
		_, _ = bb.Write([]byte("ab"))
		bb.Grow(100)
		assert.Equal(t, []byte("ab"), bb.Bytes())
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("x"))
	p.Put(bb)

	bb = p.Get()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 0, bb.Pos())

	p.Put(nil)
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb)

	assert.LessOrEqual(t, p.Get().Cap(), 16)
}

func TestDefaultPools(t *testing.T) {
	sb := GetRecordBuffer()
	require.NotNil(t, sb)
	PutRecordBuffer(sb)

	ab := GetArchiveBuffer()
	require.NotNil(t, ab)
	PutArchiveBuffer(ab)
}

func TestByteBufferPool_Concurrent(t *testing.T) {
	p := NewByteBufferPool(32, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := p.Get()
				_, _ = bb.Write([]byte("data"))
				p.Put(bb)
			}
		}()
	}
	wg.Wait()
}
