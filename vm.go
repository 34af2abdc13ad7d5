package main

import (
	"context"
	"strings"
)

//// Environment

// VM implements the Emoj virtual machine. There is no parser: source text is
// turned into a sequence of atoms and consumed one atom at a time as it runs.
type VM struct {
	logging
	ioCore

	// The stack is shared by every level of nested execution: quotations,
	// branches, loop bodies and procedures all push and pop the very same
	// values as their caller.
	stack []Value

	// User definitions live in a private overlay, consulted before the shared
	// table of built-in primitives.
	defs map[Atom]Instruction

	// The current frame names the code being run, how far into it we are, and
	// whether atoms are being executed or collected into a quotation.
	frame

	// Enclosing frames, resumed as each nested code sequence runs out.
	frames []frame

	output strings.Builder

	op        Atom // instruction being executed, for error attribution
	steps     uint
	stepLimit uint
}

// Mode determines how the next atom is interpreted.
type Mode uint8

const (
	// CodeMode resolves each atom as an instruction, pushing it when unbound.
	CodeMode Mode = iota

	// DataMode appends each atom to the quotation on top of the stack.
	DataMode
)

func (m Mode) String() string {
	switch m {
	case CodeMode:
		return "code"
	case DataMode:
		return "data"
	}
	return "invalid"
}

// ModeControl switches between code and data mode. In data mode it is
// recognized directly, never looked up, so it cannot be redefined.
const ModeControl Atom = '❕'

type frame struct {
	ip   int
	code []Value
	mode Mode

	// loop frames re-run their code until the value popped after each pass
	// is NotOK.
	loop bool
}

func (vm *VM) push(vals ...Value) {
	vm.stack = append(vm.stack, vals...)
}

func (vm *VM) pop() (val Value) {
	i := len(vm.stack) - 1
	if i < 0 {
		vm.halt(ErrStackUnderflow)
	}
	val, vm.stack = vm.stack[i], vm.stack[:i]
	return val
}

func (vm *VM) peek() Value {
	if i := len(vm.stack) - 1; i >= 0 {
		return vm.stack[i]
	}
	return nil
}

func (vm *VM) popNumber() Number {
	val := vm.pop()
	n, ok := val.(Number)
	if !ok || n.Int == nil {
		vm.halt(typeError{"number", val})
	}
	return n
}

// codeOf returns the program that running val means: a quotation runs its
// items, and a lone atom runs as a one atom program.
func (vm *VM) codeOf(val Value) []Value {
	switch v := val.(type) {
	case *Quotation:
		return v.Items
	case Atom:
		return []Value{v}
	}
	vm.halt(typeError{"quotation", val})
	return nil
}

func (vm *VM) halt(err error) {
	if vm.op != 0 {
		err = opError{vm.op, err}
	}
	vm.logf("#", "halt error: %v", err)
	panic(haltError{err})
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

func (vm *VM) show(s string) { vm.output.WriteString(s) }

//// Execution

// step executes the next atom of the current frame, returning true if the
// frame has no more code.
func (vm *VM) step() (done bool) {
	if vm.ip >= len(vm.code) {
		return true
	}
	val := vm.code[vm.ip]
	vm.ip++

	switch vm.mode {
	case CodeMode:
		name, isAtom := val.(Atom)
		if !isAtom {
			vm.push(val)
			break
		}
		instr := vm.lookup(name)
		if instr == nil {
			vm.logf("push", "%v -- s:%v", name, vm.stack)
			vm.push(name)
			break
		}
		vm.logf("exec", "%v -- f:%v s:%v", name, len(vm.frames), vm.stack)
		vm.op = name
		vm.invoke(instr)
		vm.op = 0

	case DataMode:
		if val == ModeControl {
			vm.switchMode()
			break
		}
		top := vm.pop()
		quote, ok := top.(*Quotation)
		if !ok {
			vm.halt(typeError{"quotation", top})
		}
		quote.Items = append(quote.Items, val)
		vm.push(quote)
	}
	return false
}

func (vm *VM) invoke(instr Instruction) {
	switch in := instr.(type) {
	case Primitive:
		in.fn(vm)
	case Procedure:
		vm.nest(in.Code)
	}
}

// nest saves the current frame and switches to running code in code mode.
// Nothing runs until the exec loop takes its next step.
func (vm *VM) nest(code []Value) {
	if vm.logfn != nil {
		vm.logf(">", "nest %v -- f:%v", quoteString(code), len(vm.frames))
	}
	vm.frames = append(vm.frames, vm.frame)
	vm.frame = frame{code: code}
}

// repeat runs body, followed by another pass each time the value left on top
// of the stack after a pass is not NotOK.
func (vm *VM) repeat(body []Value) {
	if vm.logfn != nil {
		vm.logf(">", "loop %v -- f:%v", quoteString(body), len(vm.frames))
	}
	vm.frames = append(vm.frames, vm.frame, frame{code: body, loop: true})
	vm.frame = frame{code: body}
}

// resume pops frames until one has code left to run, returning false once
// there are no more frames.
func (vm *VM) resume() bool {
	for len(vm.frames) > 0 {
		i := len(vm.frames) - 1
		f := vm.frames[i]
		vm.frames = vm.frames[:i]
		if !f.loop {
			vm.logf("<", "resume @%v -- f:%v", f.ip, len(vm.frames))
			vm.frame = f
			return true
		}
		vm.op = '🔁'
		cond := vm.pop()
		vm.op = 0
		if Equal(cond, NotOK) {
			vm.logf("<", "loop done -- f:%v", len(vm.frames))
			continue
		}
		vm.logf("<", "loop again on %v -- f:%v", cond, len(vm.frames))
		vm.frames = append(vm.frames, f)
		vm.frame = frame{code: f.code}
		return true
	}
	return false
}

func (vm *VM) switchMode() {
	if vm.mode == CodeMode {
		vm.mode = DataMode
		vm.push(&Quotation{})
	} else {
		vm.mode = CodeMode
	}
}

func (vm *VM) exec(ctx context.Context) {
	if vm.logfn != nil {
		defer vm.withLogPrefix("	")()
	}

	for {
		if done := vm.step(); done && !vm.resume() {
			return
		}
		vm.steps++
		if limit := vm.stepLimit; limit != 0 && vm.steps > limit {
			vm.halt(ErrStepLimit)
		}
		vm.haltif(ctx.Err())
	}
}

// reset prepares a new top level run of line; the stack and definitions are
// left as they are.
func (vm *VM) reset(line string) {
	vm.frame = frame{code: atoms(line)}
	vm.frames = vm.frames[:0]
	vm.output.Reset()
	vm.op = 0
	vm.steps = 0
}

func quoteString(code []Value) string {
	return (&Quotation{Items: code}).String()
}
