package hashmap

import (
	"bytes"
	"iter"

	"github.com/Cepeppe/arbor/keyhash"
	"github.com/Cepeppe/arbor/list"
)

// bucketCount is fixed; key hashes spread modulo this many collision chains.
const bucketCount = 500

// entry is one key/value binding inside a bucket chain. The key slice is
// owned by the map; sum caches the key's 64-bit hash so bucket walks skip
// most byte comparisons.
type entry[V any] struct {
	sum   uint64
	key   []byte
	value V
}

// Map is a hash map from byte-slice keys to values of type V. The zero
// value is an empty map ready for use. A Map is not safe for concurrent
// mutation.
type Map[V any] struct {
	buckets [bucketCount]*list.List[*entry[V]]
	length  int
}

// New creates an empty map.
func New[V any]() *Map[V] {
	return &Map[V]{}
}

// Len returns the number of stored entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.length
}

func bucketOf(sum uint64) int {
	return int(sum % bucketCount)
}

// Put stores value under key, inserting or updating as needed. The key is
// deep-copied, so the caller keeps ownership of its buffer. On update the
// previous value is returned with updated=true. Empty keys are refused and
// reported through the trace.
func (m *Map[V]) Put(key []byte, value V) (prev V, updated bool) {
	var zero V
	if len(key) == 0 {
		tracer().Errorf("refusing to store an empty key")
		return zero, false
	}
	sum := keyhash.Sum64(key)
	idx := bucketOf(sum)
	bucket := m.buckets[idx]
	if bucket == nil {
		bucket = list.New[*entry[V]]()
		m.buckets[idx] = bucket
	}
	for el := bucket.First(); el != nil; el = el.Next() {
		ent := el.Value
		if ent.sum == sum && bytes.Equal(ent.key, key) {
			prev = ent.value
			ent.value = value
			return prev, true
		}
	}
	bucket.PushBack(&entry[V]{sum: sum, key: keyhash.Clone(key), value: value})
	m.length++
	return zero, false
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key []byte) (V, bool) {
	var zero V
	if m == nil || len(key) == 0 {
		return zero, false
	}
	sum := keyhash.Sum64(key)
	bucket := m.buckets[bucketOf(sum)]
	if bucket == nil {
		return zero, false
	}
	for el := bucket.First(); el != nil; el = el.Next() {
		if ent := el.Value; ent.sum == sum && bytes.Equal(ent.key, key) {
			return ent.value, true
		}
	}
	return zero, false
}

// Remove deletes the entry stored under key and returns its value. Absent
// keys are a no-op reporting false.
func (m *Map[V]) Remove(key []byte) (V, bool) {
	var zero V
	if m == nil || len(key) == 0 {
		return zero, false
	}
	sum := keyhash.Sum64(key)
	bucket := m.buckets[bucketOf(sum)]
	if bucket == nil || bucket.IsEmpty() {
		return zero, false
	}
	head := bucket.First()
	if ent := head.Value; ent.sum == sum && bytes.Equal(ent.key, key) {
		bucket.RemoveFirst()
		m.length--
		return ent.value, true
	}
	for el := head; el.Next() != nil; el = el.Next() {
		ent := el.Next().Value
		if ent.sum == sum && bytes.Equal(ent.key, key) {
			bucket.RemoveAfter(el)
			m.length--
			return ent.value, true
		}
	}
	return zero, false
}

// Each calls f for every key/value binding. Stored keys are handed out
// without copying; treat them as read-only. Iteration stops early when f
// returns false. Binding order is an implementation detail.
func (m *Map[V]) Each(f func(key []byte, value V) bool) {
	if m == nil {
		return
	}
	for i := range m.buckets {
		bucket := m.buckets[i]
		if bucket == nil {
			continue
		}
		for el := bucket.First(); el != nil; el = el.Next() {
			if !f(el.Value.key, el.Value.value) {
				return
			}
		}
	}
}

// All returns an iterator over the key/value bindings, in the same order
// Each uses.
func (m *Map[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		if m == nil {
			return
		}
		for i := range m.buckets {
			bucket := m.buckets[i]
			if bucket == nil {
				continue
			}
			for el := bucket.First(); el != nil; el = el.Next() {
				if !yield(el.Value.key, el.Value.value) {
					return
				}
			}
		}
	}
}
