package arbor

import "iter"

// Each visits every node in in-order (ascending payload) sequence until f
// returns false. The walk is iterative; f must not mutate the tree.
func (t *Tree) Each(f func(n *Node) bool) {
	if t.IsEmpty() {
		return
	}
	stack := make([]*Node, 0, 32)
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(cur) {
			return
		}
		cur = cur.right
	}
}

// Nodes returns an iterator over all nodes in in-order sequence.
func (t *Tree) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		t.Each(func(n *Node) bool {
			return yield(n)
		})
	}
}

// Payloads returns an iterator over all payloads in ascending order.
func (t *Tree) Payloads() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		t.Each(func(n *Node) bool {
			return yield(n.payload)
		})
	}
}
