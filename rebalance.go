package arbor

// Rebalance reshapes the tree to minimal height by flattening all nodes into
// their in-order sequence and relinking them around the midpoints of the
// remaining ranges. Existing node objects are reused; no payload moves and
// nothing is compared, the in-order sequence is trusted to be sorted.
//
// The root node object is preserved: its position r within the flattened
// sequence is recorded during the traversal, the nodes before r are relinked
// into a balanced subtree hanging off root.left and the nodes after r off
// root.right. Trees with fewer than two payloads are left untouched.
//
// Cost is O(n) time and O(n) auxiliary space for the node sequence, plus
// O(log n) stack for the balanced relink.
func (t *Tree) Rebalance() error {
	if !t.initialized() {
		return ErrNotInitialized
	}
	if t.size <= 1 {
		return nil
	}

	nodes := make([]*Node, 0, t.size)
	rootAt := -1
	stack := make([]*Node, 0, 32)
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == t.root {
			rootAt = len(nodes)
		}
		nodes = append(nodes, cur)
		cur = cur.right
	}
	assert(rootAt >= 0, "arbor.Rebalance: root not seen during flatten")

	t.root.left = relinkBalanced(nodes[:rootAt])
	t.root.right = relinkBalanced(nodes[rootAt+1:])
	return nil
}

// relinkBalanced rebuilds a balanced subtree from in-order nodes, choosing
// the element nearest the midpoint as local subroot. Recursion depth is
// O(log n).
func relinkBalanced(nodes []*Node) *Node {
	if len(nodes) == 0 {
		return nil
	}
	mid := (len(nodes) - 1) / 2
	n := nodes[mid]
	n.left = relinkBalanced(nodes[:mid])
	n.right = relinkBalanced(nodes[mid+1:])
	return n
}
