package arbor

// Find descends from the root comparing key against node payloads and
// returns the node holding a payload equal to key, or nil if no such payload
// exists. Absence is not an error. Cost is O(h) with h the tree height.
func (t *Tree) Find(key []byte) (*Node, error) {
	if !t.initialized() {
		return nil, ErrNotInitialized
	}
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	cur := t.root
	for cur != nil {
		switch c := t.cmp(key, cur.payload); {
		case c == 0:
			return cur, nil
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil, nil
}

// Min returns the node holding the smallest payload. The tree must not be
// empty.
func (t *Tree) Min() (*Node, error) {
	if !t.initialized() {
		return nil, ErrNotInitialized
	}
	if t.root == nil {
		return nil, ErrTreeEmpty
	}
	return leftmost(t.root), nil
}

// Max returns the node holding the largest payload. The tree must not be
// empty.
func (t *Tree) Max() (*Node, error) {
	if !t.initialized() {
		return nil, ErrNotInitialized
	}
	if t.root == nil {
		return nil, ErrTreeEmpty
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}
	return cur, nil
}

func leftmost(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}
