package wire

import (
	"errors"
	"fmt"
)

// Stop reasons recorded on a ParseResult when tokenization ends early.
var (
	ErrUnexpectedEOF   = errors.New("wire: unexpected EOF")
	ErrTruncatedBytes  = errors.New("wire: length-delimited payload exceeds buffer")
	ErrFieldNumberZero = errors.New("wire: field number 0")
	ErrGroupWireType   = errors.New("wire: deprecated group wire type")
	ErrInvalidWireType = errors.New("wire: invalid wire type")
	ErrVarintOverflow  = errors.New("wire: varint overflow")
)

// OverflowError is returned by ReadVarint when a varint runs past ten
// groups or carries more than 64 significant bits.
type OverflowError struct {
	Offset int // offset of the first byte of the varint
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("wire: varint at offset %d overflows 64 bits", e.Offset)
}

// Is lets errors.Is match OverflowError against ErrVarintOverflow.
func (e *OverflowError) Is(target error) bool {
	return target == ErrVarintOverflow
}

// StopError describes where and why a tokenizer loop stopped. It is never
// returned to callers; it is stored in ParseResult.Stop.
type StopError struct {
	Offset int         // absolute offset of the field that could not be read
	Number FieldNumber // 0 when the tag itself was unreadable
	Err    error       // underlying reason
}

// Error implements the error interface.
func (e *StopError) Error() string {
	if e.Number == 0 {
		return fmt.Sprintf("stopped at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("stopped at offset %d (field %d): %v", e.Offset, e.Number, e.Err)
}

// Unwrap returns the underlying error.
func (e *StopError) Unwrap() error {
	return e.Err
}

func stopAt(offset int, number FieldNumber, err error) error {
	return &StopError{Offset: offset, Number: number, Err: err}
}
