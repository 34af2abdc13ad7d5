package main

import (
	"math/big"
	"strings"
)

//// Values

// Value is the only thing that lives on the stack: an Atom, a Number, or a
// *Quotation. Instructions are never pushed.
type Value interface {
	String() string
	value()
}

// Atom is a single code point. Unresolved source characters are pushed as
// atoms; atoms are also the names that instructions are bound to.
type Atom rune

// Number is an arbitrary precision signed integer.
type Number struct{ *big.Int }

// Quotation is a sequence of values collected in data mode. Quotations are
// always handled by pointer, and compare by identity.
type Quotation struct {
	Items []Value
}

func (Atom) value()       {}
func (Number) value()     {}
func (*Quotation) value() {}

func (a Atom) String() string { return string(a) }

func (n Number) String() string {
	if n.Int == nil {
		return "0"
	}
	return n.Int.String()
}

func (q *Quotation) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range q.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// NewNumber returns a Number holding n.
func NewNumber(n int64) Number { return Number{big.NewInt(n)} }

// Sentinel atoms pushed by the equality instruction, and tested by the
// conditional and loop instructions.
const (
	OK    Atom = '🙆'
	NotOK Atom = '🙅'
)

func truth(b bool) Atom {
	if b {
		return OK
	}
	return NotOK
}

// Equal compares atoms by code point, numbers by value, and quotations by
// identity; values of different kinds are never equal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Atom:
		y, ok := b.(Atom)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x.Int != nil && y.Int != nil && x.Cmp(y.Int) == 0
	case *Quotation:
		y, ok := b.(*Quotation)
		return ok && x == y
	}
	return false
}

func isDigit(v Value) bool {
	a, ok := v.(Atom)
	return ok && '0' <= a && a <= '9'
}

func atoms(s string) []Value {
	code := make([]Value, 0, len(s))
	for _, r := range s {
		code = append(code, Atom(r))
	}
	return code
}

func valueKind(v Value) string {
	switch v.(type) {
	case Atom:
		return "atom"
	case Number:
		return "number"
	case *Quotation:
		return "quotation"
	case nil:
		return "nothing"
	}
	return "unknown"
}
