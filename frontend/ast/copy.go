package ast

import (
	"encoding/binary"
	"hash/fnv"
)

// Clone deep-copies the subtree rooted at n. The copy has no parent.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	copied := &Node{
		Range: n.Range,
		kind:  n.kind,
		Name:  n.Name,
		Scope: n.Scope,
	}
	copied.children = make([]*Node, len(n.children))
	for i, child := range n.children {
		c := Clone(child)
		c.parent = copied
		copied.children[i] = c
	}
	return copied
}

// Equal reports whether two trees have the same shape: same kinds, names and children.
// Source positions and scope markers are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a.IsNone() && b.IsNone()
	}
	if a.kind != b.kind || a.Name != b.Name || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// Hash returns a hash value for the Node, based on its structural characteristics.
// Trees which are Equal have the same Hash.
// A nil Node hashes like an absent placeholder.
func (n *Node) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte(n.Kind().String())
	_, _ = h.Write([]byte(n.Symbol().String()))
	arr = binary.LittleEndian.AppendUint64(arr, uint64(n.Len()))

	for _, child := range n.Children() {
		arr = binary.LittleEndian.AppendUint64(arr, child.Hash())
	}

	_, _ = h.Write(arr)
	return h.Sum64()
}
