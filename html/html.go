/*
Package html renders skew heaps as HTML and reads heap items from HTML lists.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package html

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/skewheap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Render writes the tree structure of a heap as nested unordered lists.
// Every list item carries a class attribute telling its position relative to
// its parent ("root", "left" or "right"):
//
//	<ul class="skewheap"><li class="root">1<ul><li class="left">2</li></ul></li></ul>
//
// The heap is not modified.
func Render[T any](h *skewheap.Heap[T], w io.Writer) error {
	if h == nil {
		return skewheap.ErrIllegalArguments
	}
	root := element(atom.Ul, "skewheap")
	var path []*html.Node // path[d] is the most recent <li> at depth d
	h.Walk(func(item T, depth int, pos skewheap.Position) bool {
		li := element(atom.Li, pos.String())
		li.AppendChild(text(fmt.Sprint(item)))
		parent := root
		if depth > 0 {
			parent = sublist(path[depth-1])
		}
		parent.AppendChild(li)
		path = append(path[:depth], li)
		return true
	})
	return html.Render(w, root)
}

// RenderSorted writes the items of a heap as an ordered list, smallest item
// first. The heap is not modified; a copy of it is drained.
func RenderSorted[T any](h *skewheap.Heap[T], w io.Writer) error {
	if h == nil {
		return skewheap.ErrIllegalArguments
	}
	ol := element(atom.Ol, "skewheap")
	for item := range h.Clone().Sorted() {
		li := element(atom.Li, "")
		li.AppendChild(text(fmt.Sprint(item)))
		ol.AppendChild(li)
	}
	return html.Render(w, ol)
}

// FromHTML creates a heap of strings from the textual content of all list items
// (<li>) of an HTML fragment. Nested list items are collected separately, with
// the text of their parents excluding them. Leading and trailing white space
// is trimmed, empty items are skipped.
func FromHTML(input io.Reader, cmp func(string, string) int) (*skewheap.Heap[string], error) {
	if input == nil || cmp == nil {
		return nil, skewheap.ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}
	b := skewheap.NewBuilder(cmp)
	for _, n := range nodes {
		collectItems(n, b)
	}
	h := b.Heap()
	T().Debugf("html: collected %d list items", h.Len())
	return h, nil
}

func collectItems(n *html.Node, b *skewheap.Builder[string]) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Li {
		var sb strings.Builder
		innerText(n, &sb)
		if s := strings.TrimSpace(sb.String()); s != "" {
			_ = b.Add(s)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectItems(c, b)
	}
}

// innerText collects the text of n and its descendents, except for nested
// list items.
func innerText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && slices.Contains(listAtoms, c.DataAtom) {
			continue
		}
		innerText(c, sb)
	}
}

var listAtoms = []atom.Atom{atom.Li, atom.Ul, atom.Ol}

// --- Node construction -----------------------------------------------------

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// sublist returns the trailing <ul> of a list item, creating it if necessary.
func sublist(li *html.Node) *html.Node {
	if last := li.LastChild; last != nil && last.Type == html.ElementNode && last.DataAtom == atom.Ul {
		return last
	}
	ul := element(atom.Ul, "")
	li.AppendChild(ul)
	return ul
}
