package huffcoder

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestTree_MarshalJSON(t *testing.T) {
	tree := makeTestCoder("aab").Tree()

	raw, err := json.Marshal(tree)
	if err != nil {
		t.Errorf("json.Marshal failed: %v", err)
	}
	expectJSON := `[{"weight":3},{"symbol":98,"weight":1},{"symbol":97,"weight":2}]`
	actualJSON := string(raw)
	if expectJSON != actualJSON {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectJSON, actualJSON)
	}
}

func TestTree_UnmarshalJSON(t *testing.T) {
	original := makeTestTree()
	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var tree Tree
	if err := json.Unmarshal(raw, &tree); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	var expectDump, actualDump strings.Builder
	_, _ = original.Dump(&expectDump)
	_, _ = tree.Dump(&actualDump)
	if expectDump.String() != actualDump.String() {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump.String(), actualDump.String())
	}
}

func TestTree_UnmarshalJSON_SingleLeaf(t *testing.T) {
	var tree Tree
	if err := json.Unmarshal([]byte(`[{"symbol":0,"weight":5}]`), &tree); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	leaf, ok := tree.Root().(*Leaf)
	if !ok {
		t.Fatalf("expected *Leaf root, got %T", tree.Root())
	}
	if leaf.Symbol() != 0 || leaf.Weight() != 5 {
		t.Errorf("expected leaf {0, 5}, got {%v, %d}", leaf.Symbol(), leaf.Weight())
	}
}

func TestTree_UnmarshalJSON_Malformed(t *testing.T) {
	testData := map[string]string{
		"syntax":     `[{"weight":`,
		"null":       `null`,
		"empty":      `[]`,
		"incomplete": `[{"weight":3},{"symbol":98,"weight":1}]`,
		"weights":    `[{"weight":4},{"symbol":98,"weight":1},{"symbol":97,"weight":2}]`,
		"trailing":   `[{"symbol":97,"weight":1},{"symbol":98,"weight":1}]`,
		"duplicate":  `[{"weight":2},{"symbol":97,"weight":1},{"symbol":97,"weight":1}]`,
		"zeroLeaf":   `[{"weight":1},{"symbol":97,"weight":0},{"symbol":98,"weight":1}]`,
	}
	for name, raw := range testData {
		t.Run(name, func(t *testing.T) {
			var tree Tree
			err := tree.UnmarshalJSON([]byte(raw))
			if !errors.Is(err, ErrMalformedTree) {
				t.Errorf("expected ErrMalformedTree, got %v", err)
			}
		})
	}
}
