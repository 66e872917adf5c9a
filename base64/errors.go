package base64

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientCapacity matches every *SizeError.
	ErrInsufficientCapacity = errors.New("base64: insufficient output capacity")

	// ErrInvalidSymbol matches every InvalidSymbolError.
	ErrInvalidSymbol = errors.New("base64: invalid symbol")

	// ErrLength is returned when the Base64-encoded input, less
	// any terminator, is not a multiple of four bytes.
	ErrLength = errors.New("base64: encoded length is not a multiple of 4")

	// ErrMissingTerminator is returned when null-terminated input
	// is empty.
	ErrMissingTerminator = errors.New("base64: missing null terminator")

	// ErrNonCanonical is returned by strict Encodings when the
	// bits discarded from the final group are not zero.
	ErrNonCanonical = errors.New("base64: non-zero padding bits")
)

// SizeError is returned when the output buffer is smaller than the
// result. Nothing is written to the buffer.
type SizeError struct {
	Op       string // "encode" or "decode"
	Required int
	Capacity int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("base64: %s: output capacity must be at least %d, but is only %d",
		e.Op, e.Required, e.Capacity)
}

// Is reports whether target is ErrInsufficientCapacity.
func (e *SizeError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}

// InvalidSymbolError reports a byte outside the Base64 alphabet,
// or a '=' outside the final two positions.
//
// Offset is the position of Symbol in the decoder's input. It is
// always zero when returned by SymbolValue.
type InvalidSymbolError struct {
	Offset int
	Symbol byte
}

func (e InvalidSymbolError) Error() string {
	return fmt.Sprintf("base64: invalid symbol %q at offset %d", e.Symbol, e.Offset)
}

// Is reports whether target is ErrInvalidSymbol.
func (e InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}
