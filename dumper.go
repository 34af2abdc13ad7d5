package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jcorbin/goemoj/internal/runeio"
)

type fmtBuf interface {
	Len() int
	Write(p []byte) (n int, err error)
	WriteByte(c byte) error
	WriteRune(r rune) (n int, err error)
	WriteString(s string) (n int, err error)
}

type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  mode: %v\n", dump.vm.mode)
	fmt.Fprintf(dump.out, "  frames: %v\n", len(dump.vm.frames))
	dump.dumpStack()
	dump.dumpDefs()
}

func (dump vmDumper) dumpStack() {
	var buf strings.Builder
	buf.WriteString("  stack: ")
	formatStack(&buf, dump.vm.stack)
	buf.WriteByte('\n')
	io.WriteString(dump.out, buf.String())
}

func (dump vmDumper) dumpDefs() {
	names := make([]Atom, 0, len(dump.vm.defs))
	for name := range dump.vm.defs {
		names = append(names, name)
	}
	if len(names) == 0 {
		return
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	fmt.Fprintf(dump.out, "# Definitions\n")
	var buf strings.Builder
	for _, name := range names {
		buf.Reset()
		buf.WriteString("  : ")
		formatAtom(&buf, name)
		if _, isBuiltin := builtins[name]; isBuiltin {
			buf.WriteString(" shadowed")
		}
		if proc, ok := dump.vm.defs[name].(Procedure); ok {
			for _, val := range proc.Code {
				buf.WriteByte(' ')
				formatValue(&buf, val)
			}
		}
		buf.WriteByte('\n')
		io.WriteString(dump.out, buf.String())
	}
}

// stackString formats the stack on one line, bottom first: numbers in decimal,
// atoms quoted, and quotations bracketed.
func stackString(stack []Value) string {
	var buf strings.Builder
	formatStack(&buf, stack)
	return buf.String()
}

func formatStack(buf fmtBuf, stack []Value) {
	buf.WriteByte('[')
	for i, val := range stack {
		if i > 0 {
			buf.WriteByte(' ')
		}
		switch v := val.(type) {
		case Atom:
			buf.WriteByte('\'')
			formatAtom(buf, v)
			buf.WriteByte('\'')
		default:
			formatValue(buf, v)
		}
	}
	buf.WriteByte(']')
}

func formatValue(buf fmtBuf, val Value) {
	switch v := val.(type) {
	case Atom:
		formatAtom(buf, v)
	case *Quotation:
		buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				buf.WriteString(", ")
			}
			formatValue(buf, item)
		}
		buf.WriteByte(']')
	case nil:
		buf.WriteRune('ø')
	default:
		buf.WriteString(v.String())
	}
}

func formatAtom(buf fmtBuf, a Atom) {
	if name := runeio.Mnemonic(rune(a)); name != "" {
		buf.WriteString(name)
	} else {
		buf.WriteRune(rune(a))
	}
}
