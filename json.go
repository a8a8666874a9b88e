package huffcoder

import (
	"fmt"

	json "github.com/json-iterator/go"
)

// jsonNode is one entry of a Tree's serialized preorder listing.  Leaves
// carry a Symbol; internal nodes do not, and are followed by the listing of
// their left subtree and then their right subtree.
type jsonNode struct {
	Symbol *Symbol `json:"symbol,omitempty"`
	Weight uint64  `json:"weight"`
}

// MarshalJSON serializes the tree as a flat preorder list of nodes, which
// preserves its exact topology.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var list []jsonNode
	if t.leaves > 0 {
		list = make([]jsonNode, 0, 2*t.leaves-1)
	}
	walk(t.root, func(node Node, _ []bool) bool {
		switch x := node.(type) {
		case *Leaf:
			sym := x.symbol
			list = append(list, jsonNode{Symbol: &sym, Weight: x.weight})
		case *Internal:
			list = append(list, jsonNode{Weight: x.weight})
		}
		return true
	})
	return json.ConfigCompatibleWithStandardLibrary.Marshal(list)
}

// UnmarshalJSON reconstructs a tree serialized by MarshalJSON.  The listing
// must describe exactly one proper binary tree whose internal weights are the
// sums of their children and whose leaves carry distinct symbols.
func (t *Tree) UnmarshalJSON(raw []byte) error {
	var list []jsonNode
	if err := json.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTree, err)
	}
	root, err := treeFromPreorder(list)
	if err != nil {
		return err
	}
	*t = *newTree(root)
	return nil
}

func treeFromPreorder(list []jsonNode) (Node, error) {
	type pending struct {
		left   Node
		weight uint64
	}

	var stack []*pending
	var root Node
	seen := make(map[Symbol]struct{}, len(list))

	for index, item := range list {
		if root != nil {
			return nil, fmt.Errorf("%w: trailing node at index %d", ErrMalformedTree, index)
		}

		if item.Symbol == nil {
			stack = append(stack, &pending{weight: item.Weight})
			continue
		}

		sym := *item.Symbol
		if item.Weight == 0 {
			return nil, fmt.Errorf("%w: leaf %v at index %d has weight 0", ErrMalformedTree, sym, index)
		}
		if _, dupe := seen[sym]; dupe {
			return nil, fmt.Errorf("%w: duplicate leaf %v at index %d", ErrMalformedTree, sym, index)
		}
		seen[sym] = struct{}{}

		// Attach the finished subtree, completing every internal node
		// that now has both children.
		var node Node = &Leaf{symbol: sym, weight: item.Weight}
		for {
			if len(stack) == 0 {
				root = node
				break
			}
			top := stack[len(stack)-1]
			if top.left == nil {
				top.left = node
				break
			}
			sum := addSaturating(top.left.Weight(), node.Weight())
			if sum != top.weight {
				return nil, fmt.Errorf("%w: internal weight %d != %d + %d", ErrMalformedTree, top.weight, top.left.Weight(), node.Weight())
			}
			node = &Internal{left: top.left, right: node, weight: top.weight}
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: incomplete listing of %d nodes", ErrMalformedTree, len(list))
	}
	return root, nil
}
