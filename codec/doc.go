// Package codec holds the low-level conversions shared by the archive, section
// tree and terrain codecs.
//
// # Fixed-layout records
//
// Structured headers are declared as Go structs whose fields appear in on-disk
// order. They are encoded tightly packed, without alignment gaps, in little-endian
// byte order:
//
//	type header struct {
//	    Signature uint32
//	    Type      uint8
//	}
//
//	var h header
//	if err := codec.ReadRecord(r, &h); err != nil {
//	    return err
//	}
//
// # Text
//
// All names and strings use the Windows-1251 single-byte codepage. Encode and
// Decode convert between Go strings and codepage bytes.
//
// # Hashing
//
// Hash32 and Hash16 implement the additive, ASCII-case-insensitive string hash
// used to place archive entries in their hash table. FoldASCII and EqualFold
// implement the matching name comparison policy.
package codec
