package hashmap

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// DebugString renders the occupied buckets and their entries as an indented
// tree, for logs and debugging sessions.
func (m *Map[V]) DebugString() string {
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("hashmap (%d entries)", m.Len()))
	if m == nil {
		return tree.String()
	}
	for i := range m.buckets {
		bucket := m.buckets[i]
		if bucket == nil || bucket.IsEmpty() {
			continue
		}
		branch := tree.AddBranch(fmt.Sprintf("bucket %d (%d entries)", i, bucket.Len()))
		for el := bucket.First(); el != nil; el = el.Next() {
			branch.AddNode(fmt.Sprintf("%q = %v", el.Value.key, el.Value.value))
		}
	}
	return tree.String()
}

// Dump writes DebugString to the package tracer at debug level.
func (m *Map[V]) Dump() {
	tracer().Debugf("%s", m.DebugString())
}
