package textfile

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/skewheap"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Line is a line of text loaded from a file.
type Line struct {
	No    int    // line number, starting at 1
	Text  string // text of the line, without line terminator
	Width int    // display width of the text in fixed-width cells
}

// ByWidth orders lines by display width. Lines of equal width are ordered by
// line number.
func ByWidth(a, b Line) int {
	if c := cmp.Compare(a.Width, b.Width); c != 0 {
		return c
	}
	return cmp.Compare(a.No, b.No)
}

// Loader loads the lines of a text file into a heap.
//
// Loading happens in a goroutine of its own, which is the only one to touch
// the heap until loading has finished. Clients get hold of the heap by calling
// Wait.
type Loader struct {
	// Context is used to measure the display width of lines. It may be set
	// before loading starts and defaults to uax11.LatinContext.
	Context *uax11.Context

	path      string
	file      *os.File
	cast      *caster.Caster // broadcaster for loaded lines
	heap      *skewheap.Heap[Line]
	start     sync.Once
	done      chan struct{}
	lastError error // remember last I/O error
}

var setupGraphemes sync.Once

// Load opens a file, which must be a regular text file, and prepares to load its
// lines into a heap ordered by cmp. If cmp is nil, lines are ordered by ByWidth.
//
// Opening of the file is done synchronously, errors are reported immediately.
// Loading starts with Start or Wait; the loader closes the file when loading is
// done. Clients which decide not to load after all have to call Close.
func Load(name string, cmp func(Line, Line) int) (*Loader, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	if cmp == nil {
		cmp = ByWidth
	}
	return &Loader{
		Context: uax11.LatinContext,
		path:    name,
		file:    file,
		cast:    caster.New(nil), // we will broadcast messages when lines are loaded
		heap:    skewheap.New(cmp),
		done:    make(chan struct{}),
	}, nil
}

// openFile opens an OS file, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	return os.Open(name) // just open for read access
}

// Subscribe returns a channel which receives every Line as soon as it has been
// loaded. The channel is closed when loading is finished or ctx is done.
// Subscribers have to keep receiving from the channel, otherwise loading
// will stall as soon as capacity messages are pending.
//
// Subscriptions made after Start may miss lines.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return l.cast.Sub(ctx, capacity)
}

// Start starts loading in the background. Calling Start more than once has no
// effect.
func (l *Loader) Start() {
	l.start.Do(func() {
		setupGraphemes.Do(grapheme.SetupGraphemeClasses)
		if l.Context == nil {
			l.Context = uax11.LatinContext
		}
		go l.loadLines()
	})
}

// Close releases the file of a loader which has not started loading. Starting
// or waiting for the loader afterwards yields an empty heap and an error. Once
// loading has started, Close has no effect.
func (l *Loader) Close() error {
	var err error
	l.start.Do(func() {
		err = l.file.Close()
		l.cast.Close()
		l.lastError = fmt.Errorf("textfile: loader for %s has been closed", l.path)
		close(l.done)
	})
	return err
}

// Wait starts loading, if not already started, and waits for it to finish. It
// returns the heap of all lines loaded and the first error encountered, if any.
func (l *Loader) Wait() (*skewheap.Heap[Line], error) {
	l.Start()
	<-l.done
	return l.heap, l.lastError
}

func (l *Loader) loadLines() {
	defer close(l.done)
	defer l.cast.Close()
	defer l.file.Close()
	// lines may be of any length, so we do not use a bufio.Scanner
	reader := bufio.NewReader(l.file)
	no := 0
	for {
		text, err := reader.ReadString('\n')
		if text != "" {
			no++
			text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			line := Line{No: no, Text: text}
			if text != "" {
				line.Width = uax11.StringWidth(grapheme.StringFromString(text), l.Context)
			}
			l.heap.Push(line)
			l.cast.Pub(line)
		}
		if err == io.EOF {
			break
		} else if err != nil {
			l.lastError = fmt.Errorf("textfile: error loading %s: %w", l.path, err)
			tracer().Errorf("%v", l.lastError)
			break
		}
	}
	tracer().Debugf("textfile: loaded %d lines from %s", no, l.path)
}
