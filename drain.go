package skewheap

import "iter"

// Drain is a consuming iteration over the items of a heap, smallest item
// first. It is created by Heap.Drain and owns the heap's tree from then on;
// the heap itself is empty and may be re-used independently.
//
// A Drain cannot be restarted. It is not safe for concurrent use.
type Drain[T any] struct {
	heap Heap[T]
}

// Drain moves all items of h into a Drain. h is left empty.
func (h *Heap[T]) Drain() *Drain[T] {
	d := &Drain[T]{heap: Heap[T]{root: h.root, count: h.count, cmp: h.cmp}}
	h.root, h.count = nil, 0
	return d
}

// Next removes the smallest remaining item and returns it. When all items
// have been returned, Next returns the zero value and false.
func (d *Drain[T]) Next() (T, bool) {
	return d.heap.Pop()
}

// Len returns the number of items not yet returned by Next.
func (d *Drain[T]) Len() int {
	return d.heap.count
}

// Seq adapts the drain to range-over-func.
//
// Breaking out of a range loop leaves the rest of the items in d.
func (d *Drain[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := d.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Sorted drains the heap, yielding its items smallest first.
// h is empty after the call, even if iteration has not started yet.
//
//	for item := range h.Sorted() {
//	    …
//	}
func (h *Heap[T]) Sorted() iter.Seq[T] {
	return h.Drain().Seq()
}

// IntoUnordered drains the heap in arbitrary order. No comparisons are
// performed, which makes this cheaper than Sorted if order does not matter.
// h is empty after the call.
func (h *Heap[T]) IntoUnordered() iter.Seq[T] {
	root := h.root
	h.root, h.count = nil, 0
	return func(yield func(T) bool) {
		// rotate right until the current node has no left child, then emit it
		// and continue with its right subtree
		for root != nil {
			if l := root.left; l != nil {
				root.left = l.right
				l.right = root
				root = l
				continue
			}
			n := root
			root = n.right
			n.right = nil
			if !yield(n.item) {
				return
			}
		}
	}
}
