/*
Package arbor implements an in-memory ordered container: a binary search
tree that stores variable-length opaque byte payloads under a caller-supplied
total order.

Trees of this kind are deceptively simple. The interesting parts are not the
textbook descent loops but the ownership rules around the stored bytes:

1. Payload buffers are adopted, never copied. A successful Insert transfers
ownership of the offered slice into the tree; the caller must not read or
mutate it afterwards. If the payload turns out to be a duplicate, the tree
refuses adoption and the caller keeps its buffer.

2. Payloads migrate between nodes only by swapping slice headers. Deletion of
an inner node exchanges payload fields between two node slots; not a single
payload byte is ever copied or duplicated.

3. Every payload leaves the tree exactly once. Deletion and teardown hand
each removed payload to an optional release hook, and they do so exactly one
time per payload.

The second invariant callers rely on is root identity: the root node object
is reused across deletions and rebalancing. A caller may hold on to the node
reference returned for the smallest-ever inserted payload, delete the root
five times and rebalance twice, and the tree handle plus the root object stay
valid the whole way through.

Rebalancing is explicit. The tree never reshapes itself behind the caller's
back; a deliberately skewed insertion order yields a deliberately skewed
tree until Rebalance is invoked. Rebalance flattens the nodes in-order and
relinks them height-balanced around the original root object.

All operations are loops, not recursion, so adversarial insertion orders
cannot exhaust the goroutine stack; the single exception is the O(log n)
relink during Rebalance. The package is not safe for concurrent use.

Companion packages list, hashmap, keyhash and matrix provide the simpler
containers and numeric helpers of the library; they share the error and
tracing conventions of this package.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024–25, the arbor authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arbor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
