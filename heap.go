package skewheap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// Heap is a priority queue organized as a skew heap.
//
// Heaps are ordered by a comparison function. The item comparing as smallest is
// the one returned by Peek and Pop. Items comparing as equal are returned in
// no particular order.
//
// A heap has to be created with New, NewOrdered, FromSeq or FromSlice; the zero
// value has no comparison function and is not usable. Heaps are not safe for
// concurrent use.
type Heap[T any] struct {
	root  *node[T]
	count int
	cmp   func(T, T) int
}

// New creates an empty heap, ordered by cmp. cmp must not be nil.
func New[T any](cmp func(T, T) int) *Heap[T] {
	assert(cmp != nil, "skewheap.New: comparison function is nil")
	return &Heap[T]{cmp: cmp}
}

// NewOrdered creates an empty min-heap for an ordered type.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return New(cmp.Compare[T])
}

// Reverse returns a comparison with the order of cmp inverted. A heap ordered
// by Reverse(cmp.Compare[T]) is a max-heap.
func Reverse[T any](cmp func(T, T) int) func(T, T) int {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// FromSeq creates a heap from all items of a sequence by pushing them one
// after the other.
func FromSeq[T any](cmp func(T, T) int, seq iter.Seq[T]) *Heap[T] {
	h := New(cmp)
	h.Extend(seq)
	return h
}

// FromSlice creates a heap from a slice of items. It merges singletons
// pairwise and is therefore faster than pushing items one by one.
func FromSlice[T any](cmp func(T, T) int, items []T) *Heap[T] {
	b := NewBuilder(cmp)
	for _, item := range items {
		_ = b.Add(item) // cannot fail for a fresh builder
	}
	return b.Heap()
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int {
	if h == nil {
		return 0
	}
	return h.count
}

// IsEmpty reports whether the heap contains no items.
func (h *Heap[T]) IsEmpty() bool {
	return h == nil || h.root == nil
}

// Peek returns the heap's smallest item without removing it.
// If the heap is empty, Peek returns the zero value and false.
func (h *Heap[T]) Peek() (T, bool) {
	if h.IsEmpty() {
		var zero T
		return zero, false
	}
	return h.root.item, true
}

// Push inserts an item into the heap.
func (h *Heap[T]) Push(item T) {
	h.pushNode(leaf(item))
}

// Pop removes the heap's smallest item and returns it.
// If the heap is empty, Pop returns the zero value and false and leaves the
// heap untouched.
func (h *Heap[T]) Pop() (T, bool) {
	n := h.popNode()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.item, true
}

// Extend pushes all items of a sequence.
func (h *Heap[T]) Extend(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	for item := range seq {
		h.Push(item)
	}
}

// PushPop inserts an item and then removes the smallest item and returns it.
// This is faster than a Push followed by a Pop. If item sorts before (or with)
// the heap's smallest item, the heap is left untouched and item is returned.
func (h *Heap[T]) PushPop(item T) T {
	if h.root == nil || h.cmp(item, h.root.item) <= 0 {
		return item
	}
	n := h.popNode()
	n.item, item = item, n.item
	h.pushNode(n)
	return item
}

// Replace removes the smallest item and then inserts item. It returns the
// removed item, or false if the heap has been empty before the insert.
func (h *Heap[T]) Replace(item T) (T, bool) {
	if h.root != nil && h.cmp(item, h.root.item) <= 0 {
		old := h.root.item
		h.root.item = item
		return old, true
	}
	n := h.popNode()
	if n == nil {
		h.Push(item)
		var zero T
		return zero, false
	}
	n.item, item = item, n.item
	h.pushNode(n)
	return item, true
}

// Merge combines two heaps into a new one, consuming both of them: after the
// call h and other are empty, and the returned heap holds all of their items.
// The returned heap is ordered by h's comparison function.
//
// Merge is the operation to use for combining several heaps into one:
//
//	all := h1.Merge(h2).Merge(h3)
func (h *Heap[T]) Merge(other *Heap[T]) *Heap[T] {
	merged := New(h.cmp)
	merged.Append(h)
	merged.Append(other)
	return merged
}

// Append moves all items from other into h. other is left empty.
// Appending a heap to itself is a no-op.
func (h *Heap[T]) Append(other *Heap[T]) {
	if other == nil || other == h || other.root == nil {
		return
	}
	h.count += other.count
	h.root = merge(h.root, other.root, h.cmp)
	other.root, other.count = nil, 0
}

// Clear removes all items from the heap. The nodes are left to the garbage
// collector, regardless of the depth of the tree.
func (h *Heap[T]) Clear() {
	h.root, h.count = nil, 0
}

// Clone creates a copy of the heap with the same order and shape. Items are
// copied by assignment.
func (h *Heap[T]) Clone() *Heap[T] {
	c := New(h.cmp)
	if h.root == nil {
		return c
	}
	c.count = h.count
	c.root = &node[T]{item: h.root.item}
	type pair struct{ src, dst *node[T] }
	stack := []pair{{h.root, c.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.src.left != nil {
			p.dst.left = &node[T]{item: p.src.left.item}
			stack = append(stack, pair{p.src.left, p.dst.left})
		}
		if p.src.right != nil {
			p.dst.right = &node[T]{item: p.src.right.item}
			stack = append(stack, pair{p.src.right, p.dst.right})
		}
	}
	return c
}

// String returns the items of the heap in arbitrary order, formatted like a
// slice.
func (h *Heap[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for item := range h.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, item)
	}
	b.WriteByte(']')
	return b.String()
}

// --- Node level operations -------------------------------------------------

func (h *Heap[T]) pushNode(n *node[T]) {
	assert(h.cmp != nil, "skewheap: heap has no comparison function; create heaps with New")
	assert(n.isLeaf(), "skewheap: can only push singleton nodes")
	h.count++
	h.root = merge(h.root, n, h.cmp)
}

// popNode detaches the root and re-merges its children.
func (h *Heap[T]) popNode() *node[T] {
	if h.root == nil {
		return nil
	}
	n := h.root
	h.root = merge(n.left, n.right, h.cmp)
	h.count--
	n.left, n.right = nil, nil
	return n
}
