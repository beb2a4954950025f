// Package compress provides the codecs used for compressed backups of asset
// files.
//
// Four algorithms are supported:
//   - None: stores data as is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// Every codec implements Codec:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "backup")
//	packed, err := codec.Compress(data)
//	data, err = codec.Decompress(packed)
//
// Raw codec output carries no algorithm tag or length. EncodeBackup wraps it in
// a small self-describing frame that DecodeBackup restores without any outside
// knowledge:
//
//	magic u32 "EIBK" | type u8 | size u64 | payload
//
// Zstd uses github.com/klauspost/compress by default. Building with cgo and the
// gozstd tag switches it to github.com/valyala/gozstd; both produce standard
// zstd frames.
package compress
