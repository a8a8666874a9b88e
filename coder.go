package huffcoder

// Coder bundles the FrequencyTable, Tree and CodeTable built from one input.
type Coder struct {
	freq  FrequencyTable
	tree  *Tree
	table CodeTable
}

// NewCoder analyzes input and builds its Tree and CodeTable.  It returns
// ErrEmptyAlphabet if input is empty.
func NewCoder(input []Symbol) (*Coder, error) {
	return NewCoderFromTable(Analyze(input))
}

// NewCoderFromTable builds the Tree and CodeTable for freq.
func NewCoderFromTable(freq FrequencyTable) (*Coder, error) {
	tree, err := Build(freq)
	if err != nil {
		return nil, err
	}
	return &Coder{
		freq:  freq,
		tree:  tree,
		table: NewCodeTable(tree),
	}, nil
}

// Frequencies returns the FrequencyTable the coder was built from.
func (c *Coder) Frequencies() FrequencyTable {
	return c.freq
}

// Tree returns the coder's Huffman tree.
func (c *Coder) Tree() *Tree {
	return c.tree
}

// Table returns the coder's CodeTable.
func (c *Coder) Table() CodeTable {
	return c.table
}

// Encode is shorthand for Encode(text, c.Table()).
func (c *Coder) Encode(text []Symbol) (Bits, error) {
	return Encode(text, c.table)
}

// Decode is shorthand for Decode(bits, c.Tree()).
func (c *Coder) Decode(bits Bits) ([]Symbol, error) {
	return Decode(bits, c.tree)
}

// Message is an encoded message together with the Tree needed to decode it.
// The zero Message is the encoding of empty input.
type Message struct {
	Tree *Tree
	Bits Bits
}

// Compress encodes input with the optimal code for its own frequencies.
// Empty input yields the zero Message without building a tree.
func Compress(input []Symbol) (Message, error) {
	if len(input) == 0 {
		return Message{}, nil
	}
	c, err := NewCoder(input)
	if err != nil {
		return Message{}, err
	}
	bits, err := c.Encode(input)
	if err != nil {
		return Message{}, err
	}
	return Message{Tree: c.tree, Bits: bits}, nil
}

// Decompress returns the Symbols encoded in m.
func (m Message) Decompress() ([]Symbol, error) {
	if m.Tree == nil {
		if m.Bits.Len() == 0 {
			return nil, nil
		}
		return nil, &MalformedBitstreamError{Offset: 0, Size: m.Bits.Len(), Reason: reasonNoTree}
	}
	return Decode(m.Bits, m.Tree)
}
