// Package environment implements the interpreter's lexical scope chain: an
// ordered stack of frames realized as a parent-linked list, the shape
// spec §3.5 describes and closures (spec §3.6) capture by reference.
package environment

import "github.com/akashmaji946/tully/value"

// Environment is one scope frame. Variables holds bindings made directly
// in this frame; Parent points to the next frame outward, or nil for the
// global scope.
type Environment struct {
	Variables map[string]value.Value
	Parent    *Environment
}

// New creates a fresh frame enclosed by parent. Passing a nil parent
// creates the global scope.
func New(parent *Environment) *Environment {
	return &Environment{
		Variables: make(map[string]value.Value),
		Parent:    parent,
	}
}

// Define binds name in this frame, replacing any existing binding of the
// same name in this frame only (spec §4.3.2: a second `var` with the same
// name in the same scope replaces the prior binding, no redeclaration
// error).
func (e *Environment) Define(name string, v value.Value) {
	e.Variables[name] = v
}

// Get resolves name by walking from this frame outward, stopping at the
// first frame that defines it.
func (e *Environment) Get(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.Variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign updates the nearest existing binding of name in the scope chain,
// in place, and reports whether one was found. It never creates a new
// binding — an unbound target is the caller's responsibility to reject.
func (e *Environment) Assign(name string, v value.Value) bool {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.Variables[name]; ok {
			env.Variables[name] = v
			return true
		}
	}
	return false
}
