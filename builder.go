package skewheap

import "iter"

// Builder collects items and finalizes them into a Heap.
//
// Builder stages items as a forest of singleton trees and melds them pairwise
// only when Heap() is called: the two front trees of a queue of trees are
// merged and the result is enqueued at the back, until a single tree is left.
// This builds a heap of n items in O(n), compared to O(n log n) for n pushes.
//
// Builders have to be created with NewBuilder.
type Builder[T any] struct {
	forest []*node[T]
	cmp    func(T, T) int
	done   bool
	heap   *Heap[T]
}

// NewBuilder creates a new and empty heap builder, ordering items by cmp.
func NewBuilder[T any](cmp func(T, T) int) *Builder[T] {
	assert(cmp != nil, "skewheap.NewBuilder: comparison function is nil")
	return &Builder[T]{cmp: cmp}
}

// Add stages an item.
func (b *Builder[T]) Add(item T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrHeapCompleted
	}
	b.forest = append(b.forest, leaf(item))
	return nil
}

// AddAll stages all items of a sequence.
func (b *Builder[T]) AddAll(seq iter.Seq[T]) error {
	if b == nil || seq == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrHeapCompleted
	}
	for item := range seq {
		b.forest = append(b.forest, leaf(item))
	}
	return nil
}

// Len returns the number of staged items.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	if b.heap != nil {
		return b.heap.Len()
	}
	return len(b.forest)
}

// Heap returns the heap built from all staged items.
//
// It is illegal to continue adding items after Heap has been called. Heap may
// be called multiple times and will return the same heap every time.
func (b *Builder[T]) Heap() *Heap[T] {
	if b == nil {
		return nil
	}
	if b.heap == nil {
		b.heap = b.build()
		if b.heap.IsEmpty() {
			tracer().Debugf("heap builder: heap is empty")
		}
	}
	b.done = true
	return b.heap
}

// Reset drops the staged items and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.forest = nil
	b.done = false
	b.heap = nil
}

func (b *Builder[T]) build() *Heap[T] {
	h := New(b.cmp)
	h.count = len(b.forest)
	queue := b.forest
	b.forest = nil
	// merge front pairs, append result to the back
	for head := 0; len(queue)-head > 1; head += 2 {
		queue = append(queue, merge(queue[head], queue[head+1], b.cmp))
		queue[head], queue[head+1] = nil, nil
	}
	if len(queue) > 0 {
		h.root = queue[len(queue)-1]
	}
	return h
}
