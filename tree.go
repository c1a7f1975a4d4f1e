package arbor

/*
BSD 3-Clause License

Copyright (c) 2024–25, the arbor authors

Please refer to the License file in the repository root.

*/

import (
	"fmt"
)

// CompareFunc is the total order under which payloads are stored. It returns
// a value <0, 0 or >0 for a<b, a==b and a>b respectively, strcmp-like.
// Comparison is performed directly against stored payloads; the tree has no
// separate key type.
type CompareFunc func(a, b []byte) int

// ReleaseFunc receives a payload buffer that has left the tree. A nil
// ReleaseFunc is legal everywhere one is accepted and means the payload is
// simply dropped for the garbage collector to reclaim.
type ReleaseFunc func(payload []byte)

// Tree is a handle to a binary search tree over opaque byte payloads.
//
// A tree created by
//
//	tree, err := arbor.New(bytes.Compare)
//
// is empty. The handle itself never changes across insertion, deletion or
// rebalancing, and while the tree is non-empty the root node object is never
// replaced either; deletions targeting the root move payloads and children
// into it instead. Callers holding the handle or the root reference may rely
// on both staying valid across any sequence of operations.
//
// Tree is not safe for concurrent use.
type Tree struct {
	cmp  CompareFunc
	root *Node // nil means empty tree
	size int
}

// New creates an empty tree storing payloads under the order defined by cmp.
func New(cmp CompareFunc) (*Tree, error) {
	if cmp == nil {
		return nil, ErrNilCompare
	}
	return &Tree{cmp: cmp}, nil
}

// initialized reports whether the handle went through New.
func (t *Tree) initialized() bool {
	return t != nil && t.cmp != nil
}

// IsEmpty reports whether the tree holds no payloads.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of payloads in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path,
// 0 for an empty tree and 1 for a tree holding a single payload.
// The walk is iterative and costs O(n).
func (t *Tree) Height() int {
	if t.IsEmpty() {
		return 0
	}
	type level struct {
		node  *Node
		depth int
	}
	stack := []level{{t.root, 1}}
	height := 0
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.depth > height {
			height = top.depth
		}
		if top.node.left != nil {
			stack = append(stack, level{top.node.left, top.depth + 1})
		}
		if top.node.right != nil {
			stack = append(stack, level{top.node.right, top.depth + 1})
		}
	}
	return height
}

// Root returns the root node, or nil for an empty tree. The reference is
// stable: mutating operations reuse the root node object instead of
// replacing it. Intended for diagnostics and identity checks.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Destroy removes every payload from the tree, handing each one to release
// exactly once (release may be nil). The detached nodes are cleared so that
// stale node references cannot leak payloads. Destroy on a nil or already
// empty tree is a no-op; the handle stays usable and empty afterwards.
func (t *Tree) Destroy(release ReleaseFunc) {
	if t == nil {
		tracer().Infof("arbor.Destroy on nil tree handle is a no-op")
		return
	}
	if t.root == nil {
		return
	}
	stack := []*Node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if release != nil {
			release(n.payload)
		}
		n.payload = nil
		n.left, n.right = nil, nil
	}
	t.root = nil
	t.size = 0
}

// Check validates the structural invariants of the tree: strictly increasing
// in-order payload sequence, non-empty payloads on every reachable node, and
// agreement between the reachable node count and Len. Returns a wrapped
// ErrMalformedTree describing the first violation.
//
// The checker is strict and meant for tests and debugging sessions.
func (t *Tree) Check() error {
	if !t.initialized() {
		return ErrNotInitialized
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree reports size %d", ErrMalformedTree, t.size)
		}
		return nil
	}
	var prev *Node
	count := 0
	stack := make([]*Node, 0, 32)
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(cur.payload) == 0 {
			return fmt.Errorf("%w: reachable node with empty payload", ErrMalformedTree)
		}
		count++
		if count > t.size {
			// more nodes reachable than accounted for; a cycle would loop here
			return fmt.Errorf("%w: reachable node count exceeds size %d", ErrMalformedTree, t.size)
		}
		if prev != nil && t.cmp(prev.payload, cur.payload) >= 0 {
			return fmt.Errorf("%w: in-order sequence not strictly increasing", ErrMalformedTree)
		}
		prev = cur
		cur = cur.right
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d reachable, %d recorded)", ErrMalformedTree, count, t.size)
	}
	return nil
}
