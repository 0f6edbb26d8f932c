// Package function holds the Function value variant. It is its own package,
// separate from value, because Function.Env is a *environment.Environment
// and environment.Environment stores value.Value — folding Function into
// value would make value and environment import each other.
package function

import (
	"github.com/ashgrove/weave/environment"
	"github.com/ashgrove/weave/parser"
	"github.com/ashgrove/weave/value"
)

// Function is a user-defined closure: the parameter list, body, and the
// environment captured by reference at definition time.
type Function struct {
	PositionalParams []string
	DefaultParams    []parser.Param
	Body             parser.Node
	Env              *environment.Environment
	DefPos           parser.Position
}

func (f *Function) Kind() value.Kind { return value.FunctionKind }

func (f *Function) Display() string { return "<function>" }

func (f *Function) Truthy() bool { return true }
