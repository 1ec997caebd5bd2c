package skewheap

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Heap2Dot outputs the internal structure of a Heap in Graphviz DOT format
// (for debugging purposes).
//
// Missing children of inner nodes are drawn as small empty circles, so the
// left/right position of a single child is visible.
func Heap2Dot[T any](h *Heap[T], w io.Writer) error {
	ew := &errWriter{w: w}
	io.WriteString(ew, "strict digraph {\n")
	io.WriteString(ew, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	var stack []*node[T]
	if h != nil && h.root != nil {
		stack = append(stack, h.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v", n.item)
		nodelist += fmt.Sprintf("\"%d\" [label=%q %s];\n", ID, label, nodeDotStyles(n.isLeaf()))
		if n.isLeaf() {
			continue
		}
		for _, child := range [2]*node[T]{n.left, n.right} {
			if child == nil {
				nodelist += fmt.Sprintf("\"nil%d\" %s;\n", ID, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"nil%d\";\n", ID, ID)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			stack = append(stack, child)
		}
	}
	io.WriteString(ew, nodelist)
	io.WriteString(ew, edgelist)
	io.WriteString(ew, "}\n")
	if ew.err != nil {
		tracer().Errorf("heap DOT: %s", ew.err.Error())
	}
	return ew.err
}

// errWriter keeps the first write error and drops all output after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",fillcolor=\"#a3d7e4\""
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
