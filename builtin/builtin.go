// Package builtin is Weave's host-function registry: casts, math,
// constants, and I/O, registered into the root environment at startup.
//
// Each builtin is a package-level *Builtin appended to a registry slice
// via init(), keyed by name and bound into the root environment as a
// value.HostFunction at startup.
package builtin

import (
	"bufio"
	"io"

	"github.com/ashgrove/weave/environment"
	"github.com/ashgrove/weave/ierr"
	"github.com/ashgrove/weave/value"
)

// Runtime is how a builtin reaches back into the evaluator: the I/O
// streams for print/input, and CallFunction for any future builtin that
// takes a Weave function as an argument (e.g. a sort/map/filter builtin).
type Runtime interface {
	CallFunction(fn value.Value, args []value.Value, pos ierr.Position) (value.Value, *ierr.Error)
	GetInputReader() *bufio.Reader
	GetOutputWriter() io.Writer
}

// Func is the signature every registered builtin implements, given access
// to Runtime for the handful that need it.
type Func func(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error)

// Builtin pairs a registry name with its implementation.
type Builtin struct {
	Name string
	Fn   Func
}

// registry accumulates every *Builtin registered by this package's
// init() functions.
var registry []*Builtin

func register(bs []*Builtin) {
	registry = append(registry, bs...)
}

// RegisterAll binds every builtin, plus the `pi` constant, into root.
func RegisterAll(root *environment.Environment, rt Runtime) {
	for _, b := range registry {
		b := b
		root.Set(b.Name, &value.HostFunction{
			Name: b.Name,
			Fn: func(args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
				return b.Fn(rt, args, kwargs, pos)
			},
		})
	}
	root.Set("pi", value.Float{V: piConst})
}

func argumentErr(pos ierr.Position, format string, args ...interface{}) *ierr.Error {
	return ierr.New(ierr.ArgumentError, pos, format, args...)
}

func typeErr(pos ierr.Position, format string, args ...interface{}) *ierr.Error {
	return ierr.New(ierr.TypeError, pos, format, args...)
}

// requireOneArg enforces the "every math/cast builtin takes exactly one
// positional argument and no keyword arguments" convention.
func requireOneArg(name string, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) *ierr.Error {
	if len(kwargs) != 0 || len(args) != 1 {
		return argumentErr(pos, "function %q takes exactly one argument", name)
	}
	return nil
}

// asFloat promotes an Int or Float argument to float64.
func asFloat(name string, v value.Value, pos ierr.Position) (float64, *ierr.Error) {
	switch n := v.(type) {
	case value.Int:
		return float64(n.V), nil
	case value.Float:
		return n.V, nil
	default:
		return 0, typeErr(pos, "cannot apply %s to a %s", name, value.TypeName(v))
	}
}
