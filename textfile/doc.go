/*
Package textfile provides API helpers to load the lines of UTF-8 text files into
skew heaps.

Loading is done asynchronously. Clients may subscribe to be notified about every
line as soon as it has been loaded, and will receive the finished heap from
Loader.Wait.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
