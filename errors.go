package huffcoder

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlphabet is returned by Build when the FrequencyTable has no
	// entries.  Empty input must be special-cased before building a tree.
	ErrEmptyAlphabet = errors.New("cannot build Huffman tree from empty alphabet")

	// ErrUnknownSymbol is matched by every *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("symbol not in code table")

	// ErrMalformedBitstream is matched by every *MalformedBitstreamError.
	ErrMalformedBitstream = errors.New("malformed Huffman bitstream")

	// ErrMalformedTree is returned when a serialized Tree cannot be
	// reconstructed.
	ErrMalformedTree = errors.New("malformed Huffman tree")

	// ErrInvalidBits is returned when a bit string cannot be parsed.
	ErrInvalidBits = errors.New("invalid bit string")
)

// UnknownSymbolError is returned by Encode when the input contains a Symbol
// that has no codeword, i.e. the CodeTable came from a different alphabet.
type UnknownSymbolError struct {
	Symbol   Symbol
	Position int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%v: %v at position %d", ErrUnknownSymbol, e.Symbol, e.Position)
}

// Is makes errors.Is(err, ErrUnknownSymbol) work.
func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// MalformedBitstreamError is returned by Decode when the bits cannot be split
// into whole codewords.  Offset is the bit index at which the offending
// codeword begins, and Size is the total number of bits.
type MalformedBitstreamError struct {
	Offset int
	Size   int
	Reason string
}

func (e *MalformedBitstreamError) Error() string {
	return fmt.Sprintf("%v: %s at bit %d of %d", ErrMalformedBitstream, e.Reason, e.Offset, e.Size)
}

// Is makes errors.Is(err, ErrMalformedBitstream) work.
func (e *MalformedBitstreamError) Is(target error) bool {
	return target == ErrMalformedBitstream
}

const (
	reasonTruncated  = "truncated codeword"
	reasonNoSuchCode = "no such codeword"
	reasonNoTree     = "bits without a tree"
)

var (
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*MalformedBitstreamError)(nil)
)
