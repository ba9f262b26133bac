package bitmask

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds is returned when a bit index is not below the mask length.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrDeserializationFailed is returned when encoded words cannot be turned back into a mask.
	ErrDeserializationFailed = errors.New("deserialization failed")
)

// IndexError reports an access at Index on a mask of Length bits.
//
// It matches ErrIndexOutOfBounds via errors.Is.
type IndexError struct {
	Index  uint
	Length uint
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of bounds: index %d, length %d", e.Index, e.Length)
}

// Is reports whether target is ErrIndexOutOfBounds.
func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfBounds }

// DecodeError describes why a record or word could not be decoded.
//
// It matches ErrDeserializationFailed via errors.Is. The underlying error
// (if any) can be accessed via errors.Unwrap.
type DecodeError struct {
	Reason string
	cause  error
}

func (e *DecodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("deserialization failed: %s: %v", e.Reason, e.cause)
	}
	return "deserialization failed: " + e.Reason
}

// Is reports whether target is ErrDeserializationFailed.
func (e *DecodeError) Is(target error) bool { return target == ErrDeserializationFailed }

func (e *DecodeError) Unwrap() error { return e.cause }
