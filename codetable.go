package huffcoder

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol of a Tree's alphabet to its codeword.  The
// codewords are non-empty and prefix-free.
//
// A CodeTable is immutable once constructed.
type CodeTable struct {
	codes   map[Symbol]Bits
	minSize int
	maxSize int
}

// NewCodeTable derives the CodeTable for a tree.  Descending to the left
// appends a 0 bit, descending to the right appends a 1 bit.
//
// If the tree is a single leaf, its Symbol is assigned the codeword "0".
//
func NewCodeTable(tree *Tree) CodeTable {
	assert.Assertf(tree != nil, "NewCodeTable called with nil *Tree")

	codes := make(map[Symbol]Bits, tree.leaves)
	var minSize, maxSize int
	var hasMinMax bool

	if leaf, ok := tree.root.(*Leaf); ok {
		codes[leaf.symbol] = MustParseBits("0")
		return CodeTable{codes: codes, minSize: 1, maxSize: 1}
	}

	walk(tree.root, func(node Node, path []bool) bool {
		leaf, ok := node.(*Leaf)
		if !ok {
			return true
		}

		size := len(path)
		codes[leaf.symbol] = bitsFromPath(path)
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
		return true
	})

	return CodeTable{codes: codes, minSize: minSize, maxSize: maxSize}
}

// Len returns the number of Symbols with a codeword.
func (ct CodeTable) Len() int {
	return len(ct.codes)
}

// Lookup returns the codeword for sym, if any.
func (ct CodeTable) Lookup(sym Symbol) (Bits, bool) {
	code, found := ct.codes[sym]
	return code, found
}

// Symbols returns the Symbols with a codeword, in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	return sortedSymbols(ct.codes)
}

// MinSize is the bit length of the shortest codeword.
func (ct CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest codeword.
func (ct CodeTable) MaxSize() int {
	return ct.maxSize
}

// WeightedLength returns the number of bits needed to encode a message with
// the given frequencies, i.e. the sum of count × codeword length.  Symbols
// without a codeword contribute nothing.
func (ct CodeTable) WeightedLength(freq FrequencyTable) uint64 {
	var sum uint64
	for sym, count := range freq.counts {
		if code, found := ct.codes[sym]; found {
			sum = addSaturating(sum, count*uint64(code.size))
		}
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, sym := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%v) = %s\n", sym, strconv.Quote(ct.codes[sym].String()))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the table.
func (ct CodeTable) String() string {
	return fmt.Sprintf("(Huffman code table with %d symbols, with coded lengths of %d .. %d bits)", len(ct.codes), ct.minSize, ct.maxSize)
}

var _ fmt.Stringer = CodeTable{}
