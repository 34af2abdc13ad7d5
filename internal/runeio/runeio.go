// Package runeio reads source text a rune at a time, and writes output text
// safely to a terminal.
package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns r if it can already read runes, otherwise it buffers r.
// The returned Reader keeps any Name() string method that r has, so that
// input locations can be reported by file name.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	br := bufio.NewReader(r)
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedReader{br, impl.Name()}
	}
	return br
}

type namedReader struct {
	*bufio.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

// WriteANSIString writes s so that it cannot be mistaken for terminal control
// sequences by a 7-bit terminal: C1 controls are written in their two byte
// ESC form, and NEL as "\r\n". Everything else is written as utf8.
func WriteANSIString(w io.Writer, s string) (n int, err error) {
	var buf []byte
	for _, r := range s {
		switch {
		case r == 0x85:
			buf = append(buf, '\r', '\n')
		case 0x80 <= r && r <= 0x9f:
			buf = append(buf, 0x1b, byte(r^0xc0))
		default:
			buf = append(buf, string(r)...)
		}
	}
	return w.Write(buf)
}
