// Package builtin implements the native function registry the evaluator
// installs into the global scope at construction time (spec §4.4).
// Grounded on objects/builtins.go's Builtin{Name, Callback} registration
// shape, narrowed to a single entry — the teacher's own extensive
// std/ library goes well beyond spec's "no standard library beyond
// clock" Non-goal.
package builtin

import "github.com/akashmaji946/tully/value"

// Func is the shape every native callable implements: it receives its
// already-evaluated arguments and returns a value or an error.
type Func func(args []value.Value) (value.Value, error)

// Spec describes one native function to register: its declared name,
// fixed arity, and implementation.
type Spec struct {
	Name  string
	Arity int
	Fn    Func
}

// All returns the complete native function registry. Spec's Non-goals
// exclude a standard library beyond clock, so this list has exactly one
// entry, but it is kept as a slice — not a single function — matching
// the teacher's registry pattern so a second builtin would only need a
// new Spec appended here.
func All() []Spec {
	return []Spec{
		{Name: "clock", Arity: 0, Fn: clock},
	}
}
