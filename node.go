package skewheap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// node is a subtree of a skew heap. Every node exclusively owns its children;
// there is no parent link and no balance information.
//
// For every node n and each of its children c, cmp(n.item, c.item) <= 0 holds.
type node[T any] struct {
	left  *node[T]
	right *node[T]
	item  T
}

func leaf[T any](item T) *node[T] {
	return &node[T]{item: item}
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// merge melds two possibly empty trees into a single tree and returns its root.
// Both input trees are consumed.
//
// The node sorting first wins, with ties favouring a. The winner's right child
// is merged with the loser and the winner's children are swapped. This is done
// for every node on the merge path, which means that merge walks down the
// right spines of both trees only. We do this iteratively by keeping a link to
// the slot where the next winner has to go; deep degenerate trees will
// therefore not grow the call stack.
func merge[T any](a, b *node[T], cmp func(T, T) int) *node[T] {
	var root *node[T]
	link := &root
	for {
		if a == nil {
			*link = b
			return root
		}
		if b == nil {
			*link = a
			return root
		}
		if cmp(b.item, a.item) < 0 {
			a, b = b, a
		}
		*link = a
		// swap the children; the old right child goes left and absorbs the loser
		a.left, a.right = a.right, a.left
		link = &a.left
		a = a.left
	}
}
