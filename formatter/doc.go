/*
Package formatter prints the tree structure of skew heaps to a console.

Skew heaps are notoriously unbalanced, and looking at the shape of a heap
after a series of operations is often the quickest way to understand what is
going on. Print outputs one line per node, indented by depth and colored by
depth, with a marker telling whether a node is the left (l) or right (r) child
of its parent:

	1
	├l 3
	│  └l 7
	└r 2

Item labels are measured in fixed-width cells (East Asian wide characters take
two cells) and truncated to fit the line width of the terminal.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for generic code, where T names a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
