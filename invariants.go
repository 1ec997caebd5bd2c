package skewheap

import "fmt"

// Check validates the structural invariants of a heap: every node compares as
// less-or-equal to its children, and the item count matches the number of
// nodes in the tree.
//
// Check visits every node and should be used in tests and for debugging only.
func (h *Heap[T]) Check() error {
	if h == nil {
		return fmt.Errorf("%w: nil heap", ErrIllegalArguments)
	}
	if h.root == nil {
		if h.count != 0 {
			return fmt.Errorf("%w: empty tree must have count=0, has %d", ErrCountMismatch, h.count)
		}
		return nil
	}
	if h.cmp == nil {
		return fmt.Errorf("%w: heap has no comparison function", ErrIllegalArguments)
	}
	nodes := 0
	stack := []*node[T]{h.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++
		for _, child := range [2]*node[T]{n.left, n.right} {
			if child == nil {
				continue
			}
			if h.cmp(child.item, n.item) < 0 {
				return fmt.Errorf("%w: child %v sorts before parent %v", ErrHeapOrder, child.item, n.item)
			}
			stack = append(stack, child)
		}
	}
	if nodes != h.count {
		return fmt.Errorf("%w: count=%d, nodes=%d", ErrCountMismatch, h.count, nodes)
	}
	return nil
}

// Depth returns the height of the heap's tree, i.e. the number of nodes on the
// longest path from the root to a leaf. The empty heap has depth 0.
func (h *Heap[T]) Depth() int {
	depth := 0
	h.Walk(func(_ T, d int, _ Position) bool {
		depth = max(depth, d+1)
		return true
	})
	return depth
}
