package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/goemoj/internal/logio"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	{
		var exclusive []vmTestCase
		for _, vmt := range vmts {
			if vmt.exclusive {
				exclusive = append(exclusive, vmt)
			}
		}
		if len(exclusive) > 0 {
			vmts = exclusive
		}
	}
	for _, vmt := range vmts {
		t.Run(vmt.name, vmt.run)
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type optFunc func(vm *VM)

func (f optFunc) apply(vm *VM) { f(vm) }

type vmTestCase struct {
	name    string
	opts    []interface{}
	lines   []string
	ops     []func(vm *VM)
	expect  []func(t *testing.T, vm *VM, out string)
	timeout time.Duration
	wantErr error

	exclusive bool
}

func (vmt vmTestCase) apply(wraps ...func(vmTestCase) vmTestCase) vmTestCase {
	for _, wrap := range wraps {
		vmt = wrap(vmt)
	}
	return vmt
}

func (vmt vmTestCase) exclusiveTest() vmTestCase {
	vmt.exclusive = true
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	for _, opt := range opts {
		vmt.opts = append(vmt.opts, opt)
	}
	return vmt
}

func (vmt vmTestCase) withStack(values ...Value) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.stack = append(vm.stack, values...)
	}))
	return vmt
}

func (vmt vmTestCase) withDef(name Atom, code string) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.bind(name, atoms(code))
	}))
	return vmt
}

func (vmt vmTestCase) withStepLimit(limit uint) vmTestCase {
	vmt.opts = append(vmt.opts, WithStepLimit(limit))
	return vmt
}

func (vmt vmTestCase) withTestOutput() vmTestCase {
	vmt.opts = append(vmt.opts, func(t *testing.T) VMOption {
		return WithTee(&logio.Writer{Logf: func(mess string, args ...interface{}) {
			t.Logf("out: "+mess, args...)
		}})
	})
	return vmt
}

func (vmt vmTestCase) withLines(lines ...string) vmTestCase {
	vmt.lines = append(vmt.lines, lines...)
	return vmt
}

func (vmt vmTestCase) do(ops ...func(vm *VM)) vmTestCase {
	vmt.ops = append(vmt.ops, ops...)
	return vmt
}

func (vmt vmTestCase) withTimeout(timeout time.Duration) vmTestCase {
	vmt.timeout = timeout
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) expectStack(values ...Value) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, _ string) {
		assert.Equal(t, stackString(values), stackString(vm.stack), "expected stack values")
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, _ *VM, out string) {
		assert.Equal(t, output, out, "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectMode(mode Mode) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, _ string) {
		assert.Equal(t, mode, vm.mode, "expected mode")
	})
	return vmt
}

func (vmt vmTestCase) expectFrames(depth int) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, _ string) {
		assert.Equal(t, depth, len(vm.frames), "expected frame depth")
	})
	return vmt
}

func (vmt vmTestCase) expectDefined(name Atom, code string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, _ string) {
		proc, ok := vm.defs[name].(Procedure)
		if assert.True(t, ok, "expected %v to be a defined procedure", name) {
			assert.Equal(t, quoteString(atoms(code)), quoteString(proc.Code), "expected %v code", name)
		}
	})
	return vmt
}

func (vmt vmTestCase) expectDump(dump string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM, _ string) {
		var out strings.Builder
		vmDumper{
			vm:  vm,
			out: &out,
		}.dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	var trace []string
	vm := vmt.buildVM(t)
	WithLogf(func(mess string, args ...interface{}) {
		trace = append(trace, fmt.Sprintf(mess, args...))
	}).apply(vm)

	defer func() {
		if t.Failed() {
			for _, line := range trace {
				t.Log(line)
			}
			vmt.dumpToTest(t, vm)
		}
	}()

	timeout := vmt.timeout
	if timeout == 0 {
		timeout = time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := vmt.runVM(ctx, vm)
	if vmt.wantErr != nil {
		assert.True(t, errors.Is(err, vmt.wantErr), "expected error: %v\ngot: %+v", vmt.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected VM run error")
	}

	for _, expect := range vmt.expect {
		expect(t, vm, out)
	}
	assert.NoError(t, vm.Close(), "unexpected VM close error")
}

func (vmt vmTestCase) runVM(ctx context.Context, vm *VM) (string, error) {
	if len(vmt.ops) > 0 {
		return "", vm.isolate(func() {
			for _, op := range vmt.ops {
				op(vm)
				vm.haltif(ctx.Err())
			}
		})
	}

	var out strings.Builder
	for _, line := range vmt.lines {
		lineOut, err := vm.RunLine(ctx, line)
		if err != nil {
			return out.String(), err
		}
		out.WriteString(lineOut)
	}
	return out.String(), nil
}

func (vmt vmTestCase) buildVM(t *testing.T) *VM {
	var vm VM
	for _, o := range vmt.opts {
		switch impl := o.(type) {
		case func(t *testing.T) VMOption:
			impl(t).apply(&vm)
		case VMOption:
			impl.apply(&vm)
		default:
			t.Fatalf("unsupported vmTestCase opt type %T", o)
		}
	}
	return &vm
}

func (vmt vmTestCase) dumpToTest(t *testing.T, vm *VM) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	vmDumper{vm: vm, out: &lw}.dump()
}

//// utilities

func num(n int64) Number { return NewNumber(n) }

func bignum(s string) Number {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("invalid test number %q", s))
	}
	return Number{n}
}

func quote(s string) *Quotation { return &Quotation{Items: atoms(s)} }

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
