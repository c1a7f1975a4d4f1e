package arbor

// Insert stores payload in the tree and returns the node now holding it.
//
// Ownership of the payload slice transfers to the tree on success: adopted
// reports true and the caller must neither read nor mutate the buffer again.
// If a payload comparing equal is already present, nothing is stored, the
// existing node is returned with adopted == false, and the caller keeps full
// ownership of the buffer it offered.
//
// Payload bytes are never copied. Cost is O(h).
func (t *Tree) Insert(payload []byte) (node *Node, adopted bool, err error) {
	if !t.initialized() {
		return nil, false, ErrNotInitialized
	}
	if len(payload) == 0 {
		return nil, false, ErrEmptyPayload
	}
	if t.root == nil {
		t.root = makeNode(payload)
		t.size = 1
		return t.root, true, nil
	}
	cur := t.root
	for {
		switch c := t.cmp(payload, cur.payload); {
		case c == 0:
			// duplicate: refuse adoption, caller keeps its buffer
			return cur, false, nil
		case c < 0:
			if cur.left == nil {
				cur.left = makeNode(payload)
				t.size++
				return cur.left, true, nil
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = makeNode(payload)
				t.size++
				return cur.right, true, nil
			}
			cur = cur.right
		}
	}
}
