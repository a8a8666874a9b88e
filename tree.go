package huffcoder

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  It is always either a *Leaf or an
// *Internal; use a type switch to tell them apart.
type Node interface {
	// Weight is the total count of every Symbol beneath this node.
	Weight() uint64

	isNode()
}

// Leaf is a Node carrying exactly one Symbol.
type Leaf struct {
	symbol Symbol
	weight uint64
}

// Symbol returns the Symbol this leaf encodes.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// Weight returns the count of this leaf's Symbol.
func (leaf *Leaf) Weight() uint64 {
	return leaf.weight
}

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children.  Its weight is the sum of its
// children's weights.
type Internal struct {
	left   Node
	right  Node
	weight uint64
}

// Left returns the child reached by a 0 bit.
func (in *Internal) Left() Node {
	return in.left
}

// Right returns the child reached by a 1 bit.
func (in *Internal) Right() Node {
	return in.right
}

// Weight returns the sum of the children's weights.
func (in *Internal) Weight() uint64 {
	return in.weight
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Tree is a Huffman tree.  It owns its entire Node graph and is not modified
// after construction.
type Tree struct {
	root   Node
	leaves int
	depth  int
}

// Build constructs the optimal Huffman tree for the given frequencies.
//
// Trees are merged lowest weight first.  Among equal weights, leaves come
// before merged trees, leaves are taken in ascending Symbol order, and merged
// trees are taken in the order they were created.  The first tree popped
// becomes the left child, the second the right child.
//
// Build returns ErrEmptyAlphabet if freq is empty.  A single-symbol
// alphabet yields a tree whose root is a *Leaf.
//
func Build(freq FrequencyTable) (*Tree, error) {
	if freq.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	// Step 1: one singleton tree per symbol, keyed in symbol order.

	symbols := freq.Symbols()
	list := make([]weightedNode, 0, len(symbols))
	for index, sym := range symbols {
		count := freq.counts[sym]
		assert.Assertf(count != 0, "symbol %v has a count of 0", sym)
		list = append(list, weightedNode{
			node:  &Leaf{symbol: sym, weight: count},
			order: uint64(index),
		})
	}

	// Step 2: build a minheap.

	h := nodeHeap{list}
	h.Init()

	// Step 3: repeatedly pop the two lightest trees and push their
	// union.  Merged trees get order keys after every leaf.

	nextOrder := uint64(len(list))
	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)

		merged := &Internal{
			left:   a.node,
			right:  b.node,
			weight: addSaturating(a.node.Weight(), b.node.Weight()),
		}
		heap.Push(&h, weightedNode{node: merged, order: nextOrder})
		nextOrder++
	}

	root := heap.Pop(&h).(weightedNode).node
	return newTree(root), nil
}

func newTree(root Node) *Tree {
	t := &Tree{root: root}
	walk(root, func(node Node, path []bool) bool {
		if _, ok := node.(*Leaf); ok {
			t.leaves++
			if len(path) > t.depth {
				t.depth = len(path)
			}
		}
		return true
	})
	return t
}

// Root returns the root Node.
func (t *Tree) Root() Node {
	return t.root
}

// Weight returns the total weight of the tree.
func (t *Tree) Weight() uint64 {
	return t.root.Weight()
}

// Len returns the number of leaves, i.e. the size of the alphabet.
func (t *Tree) Len() int {
	return t.leaves
}

// Depth returns the length of the longest root-to-leaf path.  A single-leaf
// tree has depth 0.
func (t *Tree) Depth() int {
	return t.depth
}

// Walk visits every node in preorder, left before right, along with the path
// from the root to that node.  Walk stops early if fn returns false.
func (t *Tree) Walk(fn func(node Node, path Bits) bool) {
	walk(t.root, func(node Node, path []bool) bool {
		return fn(node, bitsFromPath(path))
	})
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.leaves)
	fmt.Fprintf(&buf, "\tDepth() = %d\n", t.depth)
	t.Walk(func(node Node, path Bits) bool {
		switch x := node.(type) {
		case *Leaf:
			fmt.Fprintf(&buf, "\tNode(%s) = {leaf %v, %d}\n", strconv.Quote(path.String()), x.symbol, x.weight)
		case *Internal:
			fmt.Fprintf(&buf, "\tNode(%s) = {internal, %d}\n", strconv.Quote(path.String()), x.weight)
		}
		return true
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, weight %d, depth %d)", t.leaves, t.Weight(), t.depth)
}

var _ fmt.Stringer = (*Tree)(nil)

// walk visits every node beneath root in preorder using an explicit stack,
// so deep trees cannot exhaust the goroutine stack.  path is only valid for
// the duration of the call to visit.
//
// stackItem.x tracks where we are in the walk of each internal node:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func walk(root Node, visit func(node Node, path []bool) bool) {
	type stackItem struct {
		node *Internal
		x    byte
	}

	var stack []stackItem
	var path []bool

	processChild := func(child Node) bool {
		if !visit(child, path) {
			return false
		}
		if in, ok := child.(*Internal); ok {
			stack = append(stack, stackItem{node: in})
		}
		return true
	}

	if root == nil || !processChild(root) {
		return
	}
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			path = append(path, false)
			if !processChild(top.node.left) {
				return
			}
		case 1:
			path[len(path)-1] = true
			if !processChild(top.node.right) {
				return
			}
		case 2:
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
		}
	}
}

func bitsFromPath(path []bool) Bits {
	w := newBitWriter()
	for _, bit := range path {
		w.WriteBit(bit)
	}
	return w.Finish()
}

// type weightedNode + type nodeHeap {{{

type weightedNode struct {
	node  Node
	order uint64
}

type nodeHeap struct {
	list []weightedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.order < b.order
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = weightedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
