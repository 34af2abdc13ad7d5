package main

// Instruction is a behavior bound to an atom: either a built-in Primitive, or
// a user defined Procedure.
type Instruction interface {
	Name() Atom
	instruction()
}

// Primitive is a built-in instruction implemented in Go.
type Primitive struct {
	name Atom
	fn   func(vm *VM)
	doc  string
}

// Procedure is a user defined instruction; invoking it runs its code exactly
// as if it were a quotation run with 🙏.
type Procedure struct {
	name Atom
	Code []Value
}

func (p Primitive) Name() Atom { return p.name }
func (p Procedure) Name() Atom { return p.name }

func (Primitive) instruction() {}
func (Procedure) instruction() {}

// Doc returns a short stack effect description of the primitive.
func (p Primitive) Doc() string { return p.doc }

// lookup resolves name in the instance's definitions first, then in the
// built-in table.
func (vm *VM) lookup(name Atom) Instruction {
	if instr, defined := vm.defs[name]; defined {
		return instr
	}
	if prim, defined := builtins[name]; defined {
		return prim
	}
	return nil
}

// bind installs a procedure into the instance's definitions, replacing any
// earlier definition and shadowing any built-in of the same name.
func (vm *VM) bind(name Atom, code []Value) {
	if vm.defs == nil {
		vm.defs = make(map[Atom]Instruction)
	}
	vm.logf("def", "%v -> %v", name, quoteString(code))
	vm.defs[name] = Procedure{name, code}
}

// Builtins returns the built-in primitives in their canonical order.
func Builtins() []Primitive {
	prims := make([]Primitive, len(builtinOrder))
	for i, name := range builtinOrder {
		prims[i] = builtins[name]
	}
	return prims
}
