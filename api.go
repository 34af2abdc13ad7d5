package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/goemoj/internal/panicerr"
)

// New creates a VM with an empty stack and no user definitions.
func New(opts ...VMOption) *VM {
	var vm VM
	VMOptions(opts...).apply(&vm)
	return &vm
}

// RunLine runs one line of source to completion, returning the text written
// by output instructions along the way.
//
// The stack and any definitions persist from one call to the next. If the run
// fails, its output is discarded and the error returned; any changes made to
// the stack or definitions before the failure remain.
func (vm *VM) RunLine(ctx context.Context, line string) (string, error) {
	vm.reset(line)
	if err := vm.isolate(func() { vm.exec(ctx) }); err != nil {
		vm.output.Reset()
		return "", err
	}
	out := vm.output.String()
	if err := vm.flushOutput(out); err != nil {
		return out, err
	}
	return out, nil
}

// isolate runs f, returning the error that halted the VM if it does.
func (vm *VM) isolate(f func()) error {
	err := panicerr.Recover("VM", func() error {
		f()
		return nil
	})
	var halt haltError
	if errors.As(err, &halt) {
		err = halt.error
	}
	return err
}

// Stack returns a copy of the VM's stack, bottom first.
func (vm *VM) Stack() []Value {
	return append([]Value(nil), vm.stack...)
}

// Mode returns the mode the last run ended in.
func (vm *VM) Mode() Mode { return vm.mode }

// Defined returns the instruction bound to name, if any.
func (vm *VM) Defined(name Atom) Instruction { return vm.lookup(name) }

func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption    { return withTee(w) }
func WithStepLimit(n uint) VMOption   { return stepLimitOption(n) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
