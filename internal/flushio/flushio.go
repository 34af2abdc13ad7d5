// Package flushio provides writers that buffer until flushed, so that the
// output of a whole line of evaluation can be delivered at once.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is an io.Writer that may hold written bytes until Flush.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discardWriteFlusher WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher adapts w into a WriteFlusher. Writers that already flush are
// returned as is, in memory buffers get a no-op Flush, and anything else is
// wrapped in a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == io.Discard {
		return discardWriteFlusher
	}
	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// as implemented by bytes.Buffer and strings.Builder
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// WriteFlushers tees writes into every non-nil WriteFlusher given, flushing
// all of them together. Returns nil if there are none.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	switch all := appendWriteFlusher(nil, wfs...); len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type writeFlushers []WriteFlusher

func (wfs writeFlushers) Write(p []byte) (int, error) {
	for _, wf := range wfs {
		n, err := wf.Write(p)
		if err == nil && n != len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return n, err
		}
	}
	return len(p), nil
}

// Flush flushes every writer, returning the first error.
func (wfs writeFlushers) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func appendWriteFlusher(all writeFlushers, some ...WriteFlusher) writeFlushers {
	for _, one := range some {
		switch impl := one.(type) {
		case nil:
		case writeFlushers:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	return all
}
