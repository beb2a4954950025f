// Package errs defines the error taxonomy shared by every eikit codec.
//
// Errors fall into three classes. Each specific sentinel wraps exactly one class,
// so callers can match either the precise failure or its class:
//
//	if errors.Is(err, errs.ErrCorruptData) {
//	    // skip this file, continue the batch
//	}
//
// None of the classes is retryable: a failed operation must be discarded and
// restarted from scratch.
package errs

import (
	"errors"
	"fmt"
)

// Error classes.
var (
	// ErrCorruptData reports malformed input: bad signatures, truncated streams,
	// declared sizes exceeding the available bytes, trailing bytes or absent entries.
	ErrCorruptData = errors.New("corrupt data")
	// ErrInvalidOperation reports API misuse that the caller could have detected
	// before the call.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrUnencodable reports a value outside its bit-packable domain on save.
	ErrUnencodable = errors.New("value not encodable")
)

func corrupt(msg string) error     { return fmt.Errorf("%s: %w", msg, ErrCorruptData) }
func invalid(msg string) error     { return fmt.Errorf("%s: %w", msg, ErrInvalidOperation) }
func unencodable(msg string) error { return fmt.Errorf("%s: %w", msg, ErrUnencodable) }

// Malformed input.
var (
	ErrInvalidSignature   = corrupt("invalid signature")
	ErrTruncated          = corrupt("unexpected end of data")
	ErrSizeOverrun        = corrupt("declared size exceeds available data")
	ErrTrailingBytes      = corrupt("trailing bytes after last record")
	ErrSizeMismatch       = corrupt("declared size does not match consumed bytes")
	ErrEntryNotFound      = corrupt("required archive entry not found")
	ErrDuplicateEntry     = corrupt("duplicate archive entry")
	ErrInvalidSectionSize = corrupt("invalid section size")
	ErrInvalidDimensions  = corrupt("invalid terrain dimensions")
)

// Invalid usage.
var (
	ErrNilStream        = invalid("nil stream")
	ErrInvalidName      = invalid("invalid entry name")
	ErrNameExists       = invalid("entry name already added")
	ErrWriterClosed     = invalid("writer already finalized")
	ErrNoEntry          = invalid("no entry started")
	ErrTypeMismatch     = invalid("section type mismatch")
	ErrNotRecord        = invalid("section is not a record")
	ErrNoParent         = invalid("section has no parent")
	ErrSectionNotFound  = invalid("section not found")
	ErrForeignNode      = invalid("node belongs to another tree")
	ErrInvalidPath      = invalid("invalid path")
	ErrInvalidCodecType = invalid("invalid compression type")
)

// Encodability violations.
var (
	ErrNameTooLong      = unencodable("entry name exceeds 65535 encoded bytes")
	ErrUnmappableRune   = unencodable("character not representable in codepage")
	ErrNormalOutOfRange = unencodable("vertex normal component out of range")
	ErrTileOutOfRange   = unencodable("tile index or rotation out of range")
	ErrValueOutOfRange  = unencodable("value out of range")
)
