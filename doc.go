/*
Package skewheap implements a priority queue backed by a skew heap.

Skew Heaps

A skew heap is a self-adjusting binary heap. It is a binary tree in heap
order, i.e. every node holds an item which compares as less-or-equal to the
items of both of its children. Different from binary heaps, leftist heaps or
weight-balanced heaps, a skew heap does not store any balance information at
all. Instead, every merge unconditionally swaps the children of each node on
its merge path. A single operation may therefore degenerate the tree to a
linear chain, but over any sequence of operations starting from an empty heap
the cost per operation is O(log n) amortized.

From Wikipedia:
A skew heap (or self-adjusting heap) is a heap data structure implemented as a
binary tree. Skew heaps are advantageous because of their ability to merge more
quickly than binary heaps. In contrast with binary heaps, there are no structural
constraints, so there is no guarantee that the height of the tree is logarithmic.
[…]

_________________________________________________________________________

The only fundamental operation is merging two trees. Insertion merges the
existing tree with a singleton, extracting the minimum merges the two children
of the root, and merging heaps merges their roots:

	Operation     |   amortized   |  worst case
	--------------+---------------+------------
	Push          |   O(log n)    |   O(n)
	Pop           |   O(log n)    |   O(n)
	Peek          |   O(1)        |   O(1)
	Merge/Append  |   O(log n)    |   O(n)
	FromSlice     |   O(n)        |   O(n)

Heaps are ordered by a comparison function cmp(a, b), returning a negative
number if a sorts before b, zero if they are equal and a positive number
otherwise (see package cmp). Popping returns the item sorting first. Clients
wanting max-heap behaviour wrap the comparison with Reverse.

Heaps are not safe for concurrent use. Clients have to supply external
synchronisation (e.g., a mutex around the heap) if a heap is shared between
goroutines.

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
package skewheap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for generic code, where T names a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// HeapError is an error type for the skewheap module
type HeapError string

func (e HeapError) Error() string {
	return string(e)
}

// ErrHeapCompleted signals that a heap builder has already completed a heap and
// it's illegal to further add items.
const ErrHeapCompleted = HeapError("forbidden to add items; heap has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = HeapError("illegal arguments")

// ErrHeapOrder is flagged by Check if a node sorts before its parent.
const ErrHeapOrder = HeapError("heap order violated")

// ErrCountMismatch is flagged by Check if the item count of a heap does not
// match the number of nodes in its tree.
const ErrCountMismatch = HeapError("item count does not match tree")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
