/*
File    : pakhi-bhasha/env/env.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Package env implements Pakhi's lexical scope chain. Grounded on
// akashmaji946-go-mix/scope/scope.go's Scope type (Variables map, Parent
// pointer, LookUp/Bind/Assign method shapes), trimmed of the teacher's
// const/let tracking — Pakhi has neither keyword — and of Scope.Copy():
// spec.md §3 requires a closure to capture its defining environment *by
// reference*, so later mutations to a captured variable stay visible to the
// closure. A snapshot copy would sever that link.
package env

import "github.com/Shafin098/pakhi-bhasha/value"

// Environment is one scope frame in Pakhi's lexical scope chain: a function
// body, a loop body, a যদি/অথবা branch, or the module-level scope.
//
// The chain is traversed outward (from the innermost frame toward the
// module root) whenever a name is looked up, implementing ordinary lexical
// scoping: an inner frame may read and shadow names bound in an enclosing
// frame, but an enclosing frame never sees names bound only in a nested
// one. Nil Parent marks the root scope of a module — lookup and assignment
// both stop there instead of panicking on a nil dereference.
//
// Environment values are never copied. A Closure captures the *Environment
// active at its own declaration and keeps that pointer for its entire
// lifetime, so a variable mutated after the closure was created is still
// visible the next time the closure runs — this is what spec.md §3 means
// by "capture by reference" and is the reason this type has no Copy method
// the way the teacher's Scope does.
type Environment struct {
	vars   map[string]value.Value
	Parent *Environment
}

// New creates a scope frame chained to parent.
//
// Parameters:
//   - parent: the enclosing frame, or nil to create a module's root scope.
//
// Returns:
//   - *Environment: an empty frame ready to receive Declare calls.
//
// Example usage:
//
//	root := env.New(nil)               // a module's top-level scope
//	body := env.New(root)              // a function body's scope, parented at root
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), Parent: parent}
}

// LookUp resolves name by walking outward from e, frame by frame, until
// some frame in the chain binds it or the chain is exhausted at the module
// root. This is the only way a নাম reference or a call-expression callee is
// resolved; it never mutates anything.
//
// Parameters:
//   - name: the identifier to resolve.
//
// Returns:
//   - value.Value: the bound value, when found.
//   - bool: false if no frame in the chain binds name — the caller (the
//     evaluator) turns that into a NameError, since env itself carries no
//     notion of source position to report.
func (e *Environment) LookUp(name string) (value.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.LookUp(name)
	}
	return nil, false
}

// Declare introduces name in e's own frame only — it never walks outward,
// so a নাম statement always binds in the scope it textually appears in,
// never in some enclosing one.
//
// Parameters:
//   - name: the identifier being declared.
//   - v: its initial value.
//
// Returns:
//   - redeclared: true if name already had a binding in this exact frame.
//     The evaluator treats that as a NameError; Declare itself just reports
//     the fact and overwrites the binding, leaving the policy decision to
//     its caller.
func (e *Environment) Declare(name string, v value.Value) (redeclared bool) {
	_, redeclared = e.vars[name]
	e.vars[name] = v
	return redeclared
}

// Assign walks outward from e looking for the frame that already binds
// name and updates the binding there, leaving every other frame untouched.
// Nothing is ever created by Assign — writing to an unbound name is a
// NameError the evaluator raises itself once Assign reports failure.
//
// Parameters:
//   - name: the identifier being written to.
//   - v: the new value.
//
// Returns:
//   - bool: true if some frame in the chain held name and was updated.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, v)
	}
	return false
}
