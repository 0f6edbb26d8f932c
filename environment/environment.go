// Package environment implements Weave's lexically nested name→value
// scope chain.
//
// A Function value captures its defining *Environment by pointer rather
// than by snapshot, so mutations made after closure creation stay visible
// to later calls through that closure.
package environment

import "github.com/ashgrove/weave/value"

// Environment is one scope in the lexical chain.
type Environment struct {
	vars  map[string]value.Value
	outer *Environment
}

// NewRoot creates an empty root scope with no outer. The host populates it
// with builtin functions before evaluation starts.
func NewRoot() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// NewChild creates an empty scope whose outer is the given environment.
func NewChild(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), outer: outer}
}

// Get searches this scope then the outer chain.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Set writes into this scope only, never walking the outer chain:
// assignment inserts into the innermost scope.
func (e *Environment) Set(name string, v value.Value) {
	e.vars[name] = v
}

// Drop removes name from this scope only. Absence is reported via ok=false
// so the caller can raise VariableNotInitialized.
func (e *Environment) Drop(name string) bool {
	if _, ok := e.vars[name]; !ok {
		return false
	}
	delete(e.vars, name)
	return true
}
