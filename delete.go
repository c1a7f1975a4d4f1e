package arbor

// Delete removes the node whose payload compares equal to key and hands the
// removed payload to release exactly once (release may be nil). It reports
// whether a payload was removed; an absent key is a normal no-op, not an
// error.
//
// The root node object survives every deletion that leaves the tree
// non-empty: when the root payload is removed, payloads and children are
// moved into the root node rather than replacing it. Cost is O(h) to locate
// the node plus O(h) for the in-order successor in the two-children case.
func (t *Tree) Delete(key []byte, release ReleaseFunc) (bool, error) {
	if !t.initialized() {
		return false, ErrNotInitialized
	}
	if len(key) == 0 {
		return false, ErrEmptyKey
	}
	if t.root == nil {
		tracer().Infof("arbor.Delete on empty tree is a no-op")
		return false, nil
	}

	// locate the doomed node and its parent
	var parent *Node
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.payload)
		if c == 0 {
			break
		}
		parent = cur
		if c < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cur == nil {
		return false, nil
	}

	switch cur.childCount() {
	case 0:
		t.deleteLeaf(cur, parent, release)
	case 1:
		t.deleteWithOneChild(cur, parent, release)
	default:
		t.deleteWithTwoChildren(cur, release)
	}
	t.size--
	return true, nil
}

// deleteLeaf detaches a childless node. Removing a leaf root empties the
// tree.
func (t *Tree) deleteLeaf(n, parent *Node, release ReleaseFunc) {
	if parent != nil {
		if parent.left == n {
			parent.left = nil
		} else {
			parent.right = nil
		}
	} else {
		t.root = nil
	}
	if release != nil {
		release(n.payload)
	}
	n.payload = nil
}

// deleteWithOneChild splices the lone child into the deleted node's place.
// For the root, payload and grandchildren move into the root node object,
// which stays the root; the emptied child node is discarded instead.
func (t *Tree) deleteWithOneChild(n, parent *Node, release ReleaseFunc) {
	child := n.left
	if child == nil {
		child = n.right
	}
	if release != nil {
		release(n.payload)
	}
	if parent != nil {
		if parent.left == n {
			parent.left = child
		} else {
			parent.right = child
		}
		n.payload = nil
		n.left, n.right = nil, nil
		return
	}
	// root: move ownership of the child's payload and children into the
	// root node, no payload bytes are copied
	n.payload = child.payload
	n.left, n.right = child.left, child.right
	child.payload = nil
	child.left, child.right = nil, nil
}

// deleteWithTwoChildren swaps payload ownership with the in-order successor
// and unlinks the successor, which by construction has no left child. The
// located node keeps its position; only payload slots are exchanged.
func (t *Tree) deleteWithTwoChildren(n *Node, release ReleaseFunc) {
	succParent := n
	succ := n.right
	for succ.left != nil {
		succParent = succ
		succ = succ.left
	}
	swapPayload(n, succ)
	// succ now holds the doomed payload and at most a right child
	if succParent == n {
		succParent.right = succ.right
	} else {
		succParent.left = succ.right
	}
	if release != nil {
		release(succ.payload)
	}
	succ.payload = nil
	succ.right = nil
}
