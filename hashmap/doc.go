/*
Package hashmap provides a bucketed hash map with byte-slice keys and
generic values.

Keys hash through MurmurHash3 (lower 64 bits of the x64 128-bit variant,
package keyhash) into a fixed array of 500 buckets; collisions chain into
singly linked lists (package list). Keys are always deep-copied on
insertion, so the map never retains a caller's buffer. Values travel the
other way: replacing or removing an entry hands the previous value back to
the caller, who decides what to do with it.

The zero value of Map is an empty map ready for use; bucket chains
materialize lazily on first insertion.

# BSD License

Copyright (c) 2024–25, the arbor authors

Please refer to the license text in the root package documentation.
*/
package hashmap

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'arbor.hashmap'
func tracer() tracing.Trace {
	return tracing.Select("arbor.hashmap")
}
