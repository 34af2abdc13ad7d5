package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackString(t *testing.T) {
	for _, tc := range []struct {
		name  string
		stack []Value
		want  string
	}{
		{"empty", nil, "[]"},
		{"numbers", []Value{num(3), num(-21)}, "[3 -21]"},
		{"atoms", []Value{Atom('a'), OK}, "['a' '🙆']"},
		{"controls", []Value{Atom(' '), Atom('\n')}, "['<SP>' '<NL>']"},
		{"quotations", []Value{quote("ab"), quote("")}, "[[a, b] []]"},
		{"mixed", []Value{num(1), quote("⏫"), Atom('x')}, "[1 [⏫] 'x']"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stackString(tc.stack))
		})
	}
}

func TestVMDumper(t *testing.T) {
	vm := New()
	vm.push(num(5), quote("a b"))
	vm.bind('🤘', atoms("⏫ ➕"))

	var out strings.Builder
	vmDumper{vm: vm, out: &out}.dump()
	assert.Equal(t, lines(
		"# VM Dump",
		"  mode: code",
		"  frames: 0",
		"  stack: [5 [a, <SP>, b]]",
		"# Definitions",
		"  : 🤘 ⏫ <SP> ➕",
	), out.String())
}
