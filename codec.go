package huffcoder

import (
	"github.com/chronos-tachyon/assert"
)

// Encode concatenates the codeword of each Symbol of text, in order.
//
// If text contains a Symbol that has no codeword, Encode returns an
// *UnknownSymbolError naming the first such Symbol and its index.
//
func Encode(text []Symbol, table CodeTable) (Bits, error) {
	w := newBitWriter()
	for index, sym := range text {
		code, found := table.codes[sym]
		if !found {
			return Bits{}, &UnknownSymbolError{Symbol: sym, Position: index}
		}
		w.WriteBits(code)
	}
	return w.Finish(), nil
}

// Decode walks tree once per codeword in bits and returns the Symbols found.
//
// If bits ends partway through a codeword, Decode returns a
// *MalformedBitstreamError whose Offset is the index of that codeword's first
// bit.  For a single-leaf tree the only codeword is "0", so any 1 bit is
// also malformed.
//
func Decode(bits Bits, tree *Tree) ([]Symbol, error) {
	assert.Assertf(tree != nil, "Decode called with nil *Tree")

	r := newBitReader(bits)
	out := make([]Symbol, 0, bits.Len()/maxInt(tree.depth, 1))

	if leaf, ok := tree.root.(*Leaf); ok {
		for offset := 0; ; offset++ {
			bit, ok := r.ReadBit()
			if !ok {
				return out, nil
			}
			if bit {
				return nil, &MalformedBitstreamError{Offset: offset, Size: bits.Len(), Reason: reasonNoSuchCode}
			}
			out = append(out, leaf.symbol)
		}
	}

	node := tree.root
	start := 0
	for offset := 0; ; offset++ {
		bit, ok := r.ReadBit()
		if !ok {
			break
		}

		in, isInternal := node.(*Internal)
		assert.Assertf(isInternal, "decoder positioned at %T", node)
		if bit {
			node = in.right
		} else {
			node = in.left
		}

		switch x := node.(type) {
		case *Leaf:
			out = append(out, x.symbol)
			node = tree.root
			start = offset + 1
		case *Internal:
			// keep descending
		}
	}

	if start != bits.Len() {
		return nil, &MalformedBitstreamError{Offset: start, Size: bits.Len(), Reason: reasonTruncated}
	}
	return out, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
