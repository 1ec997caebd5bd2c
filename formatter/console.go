package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/skewheap"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds parameters for printing a heap.
type Config struct {
	Width   int            // line width in fixed-width cells; lines are truncated to it
	Context *uax11.Context // context for measuring the width of item labels
}

// Console is a type for outputting heaps to a console with a fixed width font.
type Console struct {
	colors []*color.Color // colors by depth, re-used cyclically
}

// NewConsole creates a new console printer. palette is a list of colors used to
// display nodes, one per depth level of the tree. If the tree is deeper than
// the palette is long, colors are re-used cyclically. If palette is empty, a
// default palette is used.
func NewConsole(palette []*color.Color) *Console {
	if len(palette) == 0 {
		return &Console{colors: makeDefaultPalette()}
	}
	return &Console{colors: palette}
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgRed, color.Bold),
		color.New(color.FgBlue),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
	}
}

var setupGraphemes sync.Once

// Print outputs the tree structure of h to w.
//
// If parameter config is nil, a heuristic will create a config from the current
// terminal's properties. A config without a Context will measure labels using
// uax11.LatinContext.
func Print[T any](c *Console, h *skewheap.Heap[T], w io.Writer, config *Config) error {
	if c == nil || h == nil || w == nil {
		return skewheap.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	colors := c.colors
	if len(colors) == 0 {
		colors = makeDefaultPalette()
	}
	lines := layout(h)
	ew := &errWriter{w: w}
	for _, l := range lines {
		prefix := l.prefix()
		avail := config.Width - cellWidth(prefix, context)
		label := truncate(l.label, avail, context)
		io.WriteString(ew, prefix)
		col := colors[l.depth%len(colors)]
		col.Fprint(ew, label)
		io.WriteString(ew, "\n")
	}
	if ew.err != nil {
		tracer().Errorf("console: cannot print heap: %v", ew.err)
	}
	return ew.err
}

// line is a single node of a heap, prepared for output.
type line struct {
	label    string
	depth    int
	pos      skewheap.Position
	last     bool   // node is its parent's last child
	ancestry []bool // for every ancestor level (excluding the root): is the ancestor a last child?
}

func (l line) prefix() string {
	if l.depth == 0 {
		return ""
	}
	var b strings.Builder
	for _, last := range l.ancestry {
		if last {
			b.WriteString("   ")
		} else {
			b.WriteString("│  ")
		}
	}
	if l.last {
		b.WriteString("└")
	} else {
		b.WriteString("├")
	}
	if l.pos == skewheap.LeftChild {
		b.WriteString("l ")
	} else {
		b.WriteString("r ")
	}
	return b.String()
}

// layout flattens the heap's tree into pre-order lines and determines for every
// line which tree connectors have to be drawn.
func layout[T any](h *skewheap.Heap[T]) []line {
	var lines []line
	h.Walk(func(item T, depth int, pos skewheap.Position) bool {
		lines = append(lines, line{label: fmt.Sprint(item), depth: depth, pos: pos})
		return true
	})
	// scanning backwards, a node is a last child if no sibling follows it
	open := make([]bool, h.Depth()+1)
	for i := len(lines) - 1; i >= 0; i-- {
		d := lines[i].depth
		lines[i].last = !open[d]
		open[d] = true
		for k := d + 1; k < len(open); k++ {
			open[k] = false
		}
	}
	// scanning forwards, collect the last-child flags of the ancestors
	ancestors := make([]bool, len(open))
	for i := range lines {
		d := lines[i].depth
		ancestors[d] = lines[i].last
		if d > 1 {
			lines[i].ancestry = append([]bool(nil), ancestors[1:d]...)
		}
	}
	return lines
}

func cellWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate cuts s to at most width cells, marking a cut with an ellipsis.
// Grapheme clusters are never split.
func truncate(s string, width int, context *uax11.Context) string {
	if cellWidth(s, context) <= width {
		return s
	}
	const ellipsis = "…"
	avail := width - cellWidth(ellipsis, context)
	gstr := grapheme.StringFromString(s)
	var b strings.Builder
	used := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := cellWidth(g, context)
		if used+gw > avail {
			break
		}
		used += gw
		b.WriteString(g)
	}
	b.WriteString(ellipsis)
	return b.String()
}

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

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.Width parameter accordingly. Config.Context will be
// created based on heuristics from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err != nil || w < 10 {
			config.Width = 65
		} else {
			config.Width = w - 1
		}
	} else {
		config.Width = 65
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("format", "console").Infof("setting line width to %d cells", config.Width)
	return config
}
