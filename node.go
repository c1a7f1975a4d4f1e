package arbor

// Node is the unit of storage of a tree. Nodes own their payload slice and
// their children exclusively; they are allocated by Insert and reclaimed by
// Delete or Destroy. Callers receive node references from lookups but never
// construct or rewire nodes themselves.
type Node struct {
	payload     []byte
	left, right *Node
}

func makeNode(payload []byte) *Node {
	return &Node{payload: payload}
}

// Payload returns the byte buffer stored at the node. The buffer remains
// owned by the tree: callers must treat it as read-only, and its location
// may move to a different node during deletions.
func (n *Node) Payload() []byte {
	if n == nil {
		return nil
	}
	return n.payload
}

// Size returns the payload length in bytes.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return len(n.payload)
}

// swapPayload exchanges the payload slice headers of two nodes. This is the
// only way payload ownership migrates between node slots; no payload bytes
// are copied.
func swapPayload(a, b *Node) {
	a.payload, b.payload = b.payload, a.payload
}

// childCount reports how many children a node has (0, 1 or 2).
func (n *Node) childCount() int {
	cnt := 0
	if n.left != nil {
		cnt++
	}
	if n.right != nil {
		cnt++
	}
	return cnt
}
