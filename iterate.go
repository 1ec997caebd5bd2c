package skewheap

import "iter"

// All returns an iterator over the heap's items in arbitrary order.
// The heap must not be modified during iteration.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		h.Walk(func(item T, _ int, _ Position) bool {
			return yield(item)
		})
	}
}

// Position tells where a node sits relative to its parent.
type Position int8

const (
	AtRoot     Position = iota // node is the root of the tree
	LeftChild                  // node is the left child of its parent
	RightChild                 // node is the right child of its parent
)

func (pos Position) String() string {
	switch pos {
	case LeftChild:
		return "left"
	case RightChild:
		return "right"
	}
	return "root"
}

// Walk traverses the heap's tree in pre-order, left before right. For every
// node fn is called with the node's item, its depth (root = 0) and its position
// relative to its parent. Iteration stops early if fn returns false.
//
// Walk exposes the shape of the tree, which is useful for debugging and for
// rendering heaps (see sub-packages formatter and html).
func (h *Heap[T]) Walk(fn func(item T, depth int, pos Position) bool) {
	if h.IsEmpty() || fn == nil {
		return
	}
	type entry struct {
		n     *node[T]
		depth int
		pos   Position
	}
	stack := []entry{{h.root, 0, AtRoot}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(e.n.item, e.depth, e.pos) {
			return
		}
		if e.n.right != nil {
			stack = append(stack, entry{e.n.right, e.depth + 1, RightChild})
		}
		if e.n.left != nil {
			stack = append(stack, entry{e.n.left, e.depth + 1, LeftChild})
		}
	}
}
