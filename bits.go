package huffcoder

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Bits represents an immutable sequence of bits.  The bits are packed into
// bytes most significant bit first; unused bits in the final byte are zero.
//
// The zero value is the empty sequence.
type Bits struct {
	data []byte
	size int
}

// ParseBits constructs Bits from a string of '0' and '1' characters.
func ParseBits(str string) (Bits, error) {
	w := newBitWriter()
	for index := 0; index < len(str); index++ {
		switch str[index] {
		case '0':
			w.WriteBit(false)
		case '1':
			w.WriteBit(true)
		default:
			return Bits{}, fmt.Errorf("%w: unexpected %q at index %d", ErrInvalidBits, str[index], index)
		}
	}
	return w.Finish(), nil
}

// BitsFromBytes constructs Bits holding the first size bits of data, most
// significant bit first.  data is copied.
func BitsFromBytes(data []byte, size int) (Bits, error) {
	if size < 0 || size > 8*len(data) {
		return Bits{}, fmt.Errorf("%w: size %d out of range for %d bytes", ErrInvalidBits, size, len(data))
	}
	numBytes := (size + 7) / 8
	out := make([]byte, numBytes)
	copy(out, data[:numBytes])
	if rem := size % 8; rem != 0 {
		out[numBytes-1] &= byte(0xff << (8 - rem))
	}
	return Bits{data: out, size: size}, nil
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return b.size
}

// At returns the bit at the given index as a bool.  It panics if index is
// out of range.
func (b Bits) At(index int) bool {
	assert.Assertf(index >= 0 && index < b.size, "index %d out of range [0, %d)", index, b.size)
	return (b.data[index>>3]>>(7-uint(index&7)))&1 != 0
}

// Bytes returns a copy of the packed bits.  The final byte is padded with
// zero bits.
func (b Bits) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Equal returns true iff b and other hold the same bits.
func (b Bits) Equal(other Bits) bool {
	return b.size == other.size && bytes.Equal(b.data, other.data)
}

// HasPrefix returns true iff prefix is a prefix of b.
func (b Bits) HasPrefix(prefix Bits) bool {
	if prefix.size > b.size {
		return false
	}
	full := prefix.size >> 3
	if !bytes.Equal(b.data[:full], prefix.data[:full]) {
		return false
	}
	if rem := prefix.size & 7; rem != 0 {
		mask := byte(0xff << (8 - rem))
		return b.data[full]&mask == prefix.data[full]
	}
	return true
}

// String returns the bits as a string of '0' and '1' characters.
func (b Bits) String() string {
	var buf strings.Builder
	buf.Grow(b.size)
	for index := 0; index < b.size; index++ {
		if b.At(index) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return buf.String()
}

// GoString returns a Go expression that reconstructs these Bits.
func (b Bits) GoString() string {
	return "MustParseBits(" + strconv.Quote(b.String()) + ")"
}

// MustParseBits is like ParseBits, but panics on error.
func MustParseBits(str string) Bits {
	b, err := ParseBits(str)
	if err != nil {
		panic(err)
	}
	return b
}

var (
	_ fmt.Stringer   = Bits{}
	_ fmt.GoStringer = Bits{}
)

// type bitWriter + type bitReader {{{

// bitWriter accumulates bits into a Bits value.
type bitWriter struct {
	buf  bytes.Buffer
	w    *bitio.Writer
	size int
}

func newBitWriter() *bitWriter {
	bw := new(bitWriter)
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

func (bw *bitWriter) WriteBit(bit bool) {
	err := bw.w.WriteBool(bit)
	assert.Assertf(err == nil, "bitio.Writer.WriteBool failed: %v", err)
	bw.size++
}

func (bw *bitWriter) WriteBits(b Bits) {
	full := b.size >> 3
	for index := 0; index < full; index++ {
		err := bw.w.WriteBits(uint64(b.data[index]), 8)
		assert.Assertf(err == nil, "bitio.Writer.WriteBits failed: %v", err)
	}
	if rem := uint8(b.size & 7); rem != 0 {
		err := bw.w.WriteBits(uint64(b.data[full]>>(8-rem)), rem)
		assert.Assertf(err == nil, "bitio.Writer.WriteBits failed: %v", err)
	}
	bw.size += b.size
}

// Finish flushes any cached bits and returns the result.  The bitWriter must
// not be used afterward.
func (bw *bitWriter) Finish() Bits {
	err := bw.w.Close()
	assert.Assertf(err == nil, "bitio.Writer.Close failed: %v", err)
	return Bits{data: bw.buf.Bytes(), size: bw.size}
}

// bitReader consumes the bits of a Bits value in order.
type bitReader struct {
	r         *bitio.Reader
	remaining int
}

func newBitReader(b Bits) *bitReader {
	return &bitReader{
		r:         bitio.NewReader(bytes.NewReader(b.data)),
		remaining: b.size,
	}
}

// ReadBit returns the next bit.  ok is false once every bit has been read.
func (br *bitReader) ReadBit() (bit bool, ok bool) {
	if br.remaining == 0 {
		return false, false
	}
	bit, err := br.r.ReadBool()
	assert.Assertf(err != io.EOF, "bitio.Reader.ReadBool hit EOF with %d bits remaining", br.remaining)
	assert.Assertf(err == nil, "bitio.Reader.ReadBool failed: %v", err)
	br.remaining--
	return bit, true
}

// }}}
