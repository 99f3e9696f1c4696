/*
Package segtree implements segment trees for range queries over a fixed-size
sequence of numbers.

Segment Trees

A segment tree stores an aggregate (sum or minimum) for every interval produced
by recursively bisecting the index space [0, n-1]. The tree is implicit: nodes
live in a flat slice, the root at slot 1 and the children of slot k at slots 2k
and 2k+1. Interval bounds are never stored; every operation re-derives them
from the (slot, start, end) triple it recurses with.

	tree, _ := segtree.NewSum([]int{1, 3, 5, 7, 9, 11})
	s, _ := tree.Query(1, 3)  // 15
	tree.Update(2, 10)
	s, _ = tree.Query(1, 3)   // 20

Range updates are supported by LazyTree, which defers adding a delta to a
whole interval until a later operation descends into it (lazy propagation).
Lazy propagation is available for sums only.

Neither Tree nor LazyTree does any synchronization. Clients sharing a tree
between goroutines have to serialize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the segtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvalidInput is flagged when a tree is to be constructed from an empty
// or otherwise malformed sequence.
const ErrInvalidInput = TreeError("invalid input sequence")

// ErrIndexOutOfRange is flagged whenever a point index is outside [0, n-1].
const ErrIndexOutOfRange = TreeError("index out of range")

// ErrInvalidRange is flagged whenever a range [l, r] has l > r or one of
// its bounds outside [0, n-1].
const ErrInvalidRange = TreeError("invalid range")

// ErrCorrupted is reported by Check if a stored aggregate does not match
// its children.
const ErrCorrupted = TreeError("tree storage corrupted")
