package main

import (
	"math/big"
	"unicode/utf8"
)

//// Built-in primitives

// The built-in table is created once and shared, read-only, by every VM;
// definitions made with 👌 go into each VM's own overlay instead.

//// Numbers

// Symbol   Name   Function
//   ✅     fold   pop a run of digit atoms off the top of the stack, and push
//                 the number they spell in pop order; the first digit popped
//                 is the most significant
func (vm *VM) fold() {
	first := vm.pop()
	if !isDigit(first) {
		vm.halt(literalError{first})
	}
	digits := []rune{rune(first.(Atom))}
	for isDigit(vm.peek()) {
		digits = append(digits, rune(vm.pop().(Atom)))
	}
	n, ok := new(big.Int).SetString(string(digits), 10)
	if !ok {
		vm.halt(literalError{first})
	}
	vm.push(Number{n})
}

// Symbol   Name   Function
//   ✖      mul    pop a, pop b, push a·b
func (vm *VM) mul() { a, b := vm.popNumber(), vm.popNumber(); vm.push(Number{new(big.Int).Mul(a.Int, b.Int)}) }

// Symbol   Name   Function
//   ➕     add    pop a, pop b, push a+b
func (vm *VM) add() { a, b := vm.popNumber(), vm.popNumber(); vm.push(Number{new(big.Int).Add(a.Int, b.Int)}) }

// Symbol   Name   Function
//   ➖     sub    pop a, pop b, push b−a
func (vm *VM) sub() { a, b := vm.popNumber(), vm.popNumber(); vm.push(Number{new(big.Int).Sub(b.Int, a.Int)}) }

// Symbol   Name   Function
//   ➗     div    pop a, pop b, push b÷a truncated toward zero
func (vm *VM) div() {
	a, b := vm.popNumber(), vm.popNumber()
	if a.Sign() == 0 {
		vm.halt(ErrDivisionByZero)
	}
	vm.push(Number{new(big.Int).Quo(b.Int, a.Int)})
}

// Symbol   Name     Function
//   👐     equals   pop two values, push 🙆 if they are equal, 🙅 otherwise
func (vm *VM) equals() { a, b := vm.pop(), vm.pop(); vm.push(truth(Equal(a, b))) }

//// Output

// Symbol   Name   Function
//   🔤     char   pop a number and write the character with that code; an
//                 atom is written as itself
func (vm *VM) char() {
	switch v := vm.pop().(type) {
	case Atom:
		vm.show(string(v))
	case Number:
		c := v.Int64()
		if !v.IsInt64() || c > utf8.MaxRune || !utf8.ValidRune(rune(c)) {
			vm.halt(charError{v})
		}
		vm.show(string(rune(c)))
	default:
		vm.halt(typeError{"number", v})
	}
}

// Symbol   Name   Function
//   🔢     show   pop a value and write it: numbers in decimal, anything
//                 else as its display text
func (vm *VM) number() { vm.show(vm.pop().String()) }

//// Stack Operations

// Symbol   Name   Function
//   🔀     swap   exchange the top two values
func (vm *VM) swap() { a, b := vm.pop(), vm.pop(); vm.push(a, b) }

// Symbol   Name   Function
//   ⏫     dup    duplicate the top value
func (vm *VM) dup() { a := vm.pop(); vm.push(a, a) }

// Symbol   Name   Function
//   ⤵      drop   discard the top value
func (vm *VM) drop() { vm.pop() }

//// Modes

// Symbol   Name     Function
//   ❕     toggle   enter data mode, pushing a new empty quotation; in data
//                   mode the same atom closes the quotation instead, so
//                   quotations never nest
func (vm *VM) toggle() { vm.switchMode() }

//// Control

// Symbol   Name   Function
//   🙏     run    pop a quotation and run it
func (vm *VM) run() { vm.nest(vm.codeOf(vm.pop())) }

// Symbol   Name     Function
//   👌     define   pop code, pop a name, and bind the name to the code in
//                   this VM; the name is an atom, or a quotation of one atom
//                   so that built-ins can be named without running them
func (vm *VM) define() {
	code := vm.codeOf(vm.pop())
	vm.bind(vm.nameOf(vm.pop()), code)
}

func (vm *VM) nameOf(val Value) Atom {
	switch v := val.(type) {
	case Atom:
		return v
	case *Quotation:
		if len(v.Items) == 1 {
			if name, ok := v.Items[0].(Atom); ok {
				return name
			}
		}
	}
	vm.halt(typeError{"atom", val})
	return 0
}

// Symbol   Name     Function
//   ⁉      branch   pop a condition, an else quotation, and a then quotation;
//                   run then if the condition is 🙆, else otherwise
func (vm *VM) branch() {
	cond := vm.pop()
	alt := vm.pop()
	cons := vm.pop()
	if Equal(cond, OK) {
		vm.nest(vm.codeOf(cons))
	} else {
		vm.nest(vm.codeOf(alt))
	}
}

// Symbol   Name    Function
//   🔁     until   pop a condition and a quotation; unless the condition is
//                  🙅, run the quotation, then pop a new condition and go
//                  again until one is 🙅
//
// Each pass runs to completion through the exec loop before the next
// condition is popped; see VM.resume.
func (vm *VM) until() {
	cond := vm.pop()
	body := vm.codeOf(vm.pop())
	if Equal(cond, NotOK) {
		return
	}
	vm.repeat(body)
}

var builtinOrder = []Atom{
	'✅', '🔤', '🔢', ModeControl, '🔀', '⏫', '⤵', '🙏',
	'👌', '✖', '➕', '➖', '➗', '🔁', '👐', '⁉',
}

var builtins map[Atom]Primitive

func init() {
	prims := []Primitive{
		{'✅', (*VM).fold, "[s | d…] -> [s | n]"},
		{'🔤', (*VM).char, "[s | n] -> [s]"},
		{'🔢', (*VM).number, "[s | a] -> [s]"},
		{ModeControl, (*VM).toggle, "[s] -> [s | []]"},
		{'🔀', (*VM).swap, "[s | a b] -> [s | b a]"},
		{'⏫', (*VM).dup, "[s | a] -> [s | a a]"},
		{'⤵', (*VM).drop, "[s | a] -> [s]"},
		{'🙏', (*VM).run, "[s | q] -> [s | …]"},
		{'👌', (*VM).define, "[s | a q] -> [s]"},
		{'✖', (*VM).mul, "[s | b a] -> [s | a·b]"},
		{'➕', (*VM).add, "[s | b a] -> [s | a+b]"},
		{'➖', (*VM).sub, "[s | b a] -> [s | b−a]"},
		{'➗', (*VM).div, "[s | b a] -> [s | b÷a]"},
		{'🔁', (*VM).until, "[s | q c] -> [s | …]"},
		{'👐', (*VM).equals, "[s | a b] -> [s | 🙆/🙅]"},
		{'⁉', (*VM).branch, "[s | t e c] -> [s | …]"},
	}
	builtins = make(map[Atom]Primitive, len(prims))
	for _, prim := range prims {
		builtins[prim.name] = prim
	}
}
