// Package endian provides the byte order engine used by every eikit record codec.
//
// All game formats handled by eikit are little-endian on disk. The engine type
// combines binary.ByteOrder and binary.AppendByteOrder so record encoders can
// either fill a preallocated slice or append to a growing one:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, signature)
//	size := engine.Uint32(data[4:8])
//
// # Thread Safety
//
// The returned engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the on-disk order of all formats.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Float32 reads an IEEE 754 single-precision value from b.
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}

// PutFloat32 writes v into b as an IEEE 754 single-precision value.
func PutFloat32(engine EndianEngine, b []byte, v float32) {
	engine.PutUint32(b, math.Float32bits(v))
}

// AppendFloat32 appends v to b as an IEEE 754 single-precision value.
func AppendFloat32(engine EndianEngine, b []byte, v float32) []byte {
	return engine.AppendUint32(b, math.Float32bits(v))
}
