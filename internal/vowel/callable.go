package vowel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// callable is implemented by Vowel's values that can be called.
type callable interface {
	Value
	arity() int
	call(in *Interpreter, args []Value) (Value, error)
}

// Function represents a vowel function that can be called
type Function struct {
	decl    *FunctionStmt
	closure *environment
	// locals is the distance table of the program the function was declared
	// in, the body's variables are addressed through it.
	locals Locals
}

func newFunction(decl *FunctionStmt, closure *environment, locals Locals) *Function {
	fn := new(Function)
	fn.decl = decl
	fn.closure = closure
	fn.locals = locals
	return fn
}

func (fn *Function) isValue() {}

func (fn *Function) arity() int {
	return len(fn.decl.Params)
}

func (fn *Function) call(in *Interpreter, args []Value) (Value, error) {
	// Each call gets its own frame whose parent is the frame the function was
	// declared in, not the frame of the call site.
	env := newEnvironment(fn.closure)
	for i, param := range fn.decl.Params {
		env.define(param.Lexeme, args[i])
	}

	enclosingLocals := in.locals
	in.locals = fn.locals
	defer func() {
		in.locals = enclosingLocals
	}()

	result, err := in.execBlock(fn.decl.Body, env)
	if err != nil {
		return nil, err
	}
	if result.kind == completionReturn {
		return result.value, nil
	}
	return Nil{}, nil
}

func (fn *Function) String() string {
	return fmt.Sprintf("<fn %s/%d>", fn.decl.Name.Lexeme, fn.arity())
}

// Overloads is the set of functions sharing a name in one frame, call sites
// pick one of them by the number of arguments.
type Overloads struct {
	name    string
	byArity map[int]*Function
}

func newOverloads(name string, fns ...*Function) *Overloads {
	ov := &Overloads{name, make(map[int]*Function)}
	for _, fn := range fns {
		ov.add(fn)
	}
	return ov
}

func (ov *Overloads) isValue() {}

// add inserts fn, replacing a previous declaration with the same arity
func (ov *Overloads) add(fn *Function) {
	ov.byArity[fn.arity()] = fn
}

// resolve selects the declaration that takes argc arguments
func (ov *Overloads) resolve(argc int) (*Function, bool) {
	fn, ok := ov.byArity[argc]
	return fn, ok
}

func (ov *Overloads) arities() []int {
	arities := make([]int, 0, len(ov.byArity))
	for arity := range ov.byArity {
		arities = append(arities, arity)
	}
	sort.Ints(arities)
	return arities
}

func (ov *Overloads) String() string {
	arities := ov.arities()
	parts := make([]string, len(arities))
	for i, arity := range arities {
		parts[i] = strconv.Itoa(arity)
	}
	return fmt.Sprintf("<fn %s/{%s}>", ov.name, strings.Join(parts, ","))
}

// declareFunction binds fn in env. A function already bound under the same
// name with a different arity is kept next to fn as an overload.
func declareFunction(env *environment, fn *Function) {
	name := fn.decl.Name.Lexeme
	prev, _ := env.lookup(name)
	switch prev := prev.(type) {
	case *Function:
		if prev.arity() != fn.arity() {
			env.define(name, newOverloads(name, prev, fn))
			return
		}
	case *Overloads:
		ov := newOverloads(name)
		for _, arity := range prev.arities() {
			ov.add(prev.byArity[arity])
		}
		ov.add(fn)
		env.define(name, ov)
		return
	}
	env.define(name, fn)
}

// Class is the value produced by a class declaration. Calling it constructs
// a new instance. Methods are not bound to instances, so a class only carries
// its name.
type Class struct {
	name string
}

func newClass(decl *ClassStmt) *Class {
	return &Class{decl.Name.Lexeme}
}

func (class *Class) isValue() {}

func (class *Class) arity() int {
	return 0
}

func (class *Class) call(in *Interpreter, args []Value) (Value, error) {
	return newInstance(class), nil
}

func (class *Class) String() string {
	return class.name
}

// Instance is an object created by calling a class. Fields are created the
// first time they are assigned.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func newInstance(class *Class) *Instance {
	return &Instance{class, make(map[string]Value)}
}

func (inst *Instance) isValue() {}

func (inst *Instance) get(name *Token) (Value, error) {
	if value, ok := inst.fields[name.Lexeme]; ok {
		return value, nil
	}
	msg := fmt.Sprintf("Undefined property '%s'.", name.Lexeme)
	return nil, newRuntimeError(name, msg)
}

func (inst *Instance) set(name *Token, value Value) {
	inst.fields[name.Lexeme] = value
}

func (inst *Instance) String() string {
	return fmt.Sprintf("%s instance", inst.class.name)
}
