package eval

import (
	"github.com/ashgrove/weave/environment"
	"github.com/ashgrove/weave/function"
	"github.com/ashgrove/weave/ierr"
	"github.com/ashgrove/weave/parser"
	"github.com/ashgrove/weave/value"
)

func (e *Evaluator) evalFunctionLiteral(n *parser.FunctionLiteral, env *environment.Environment) (value.Value, *ierr.Error) {
	return &function.Function{
		PositionalParams: n.PositionalParams,
		DefaultParams:    n.DefaultParams,
		Body:             n.Body,
		Env:              env,
		DefPos:           n.P,
	}, nil
}

// evalCall evaluates the callee, then every positional argument left to
// right, then every keyword argument in source order, before dispatching.
func (e *Evaluator) evalCall(n *parser.CallExpr, env *environment.Environment) (value.Value, *ierr.Error) {
	callee, err := e.Eval(n.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, 0, len(n.PositionalArgs))
	for _, a := range n.PositionalArgs {
		v, err := e.Eval(a, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	var kwargs map[string]value.Value
	if len(n.KeywordArgs) > 0 {
		kwargs = make(map[string]value.Value, len(n.KeywordArgs))
		for _, kw := range n.KeywordArgs {
			v, err := e.Eval(kw.Value, env)
			if err != nil {
				return nil, err
			}
			kwargs[kw.Name] = v
		}
	}
	return e.callValue(callee, args, kwargs, toPos(n.P))
}

// callValue dispatches a call to either a host function or a user-defined
// Function. It is the shared landing point for CallExpr evaluation and for
// builtin.Runtime.CallFunction (host functions calling back into the
// language, e.g. a future sort/map builtin taking a function argument).
func (e *Evaluator) callValue(fn value.Value, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	switch f := fn.(type) {
	case *value.HostFunction:
		return f.Fn(args, kwargs, pos)
	case *function.Function:
		return e.callFunction(f, args, kwargs, pos)
	default:
		return nil, ierr.New(ierr.TypeError, pos, "value of type %s is not callable", value.TypeName(fn))
	}
}

// callFunction binds positional and default parameters into a fresh child
// of the function's captured environment, evaluating each unsupplied
// default expression in that same call environment so later defaults can
// reference earlier parameters. A keyword argument naming anything other
// than a declared default parameter is an ArgumentError.
func (e *Evaluator) callFunction(fn *function.Function, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	if len(args) != len(fn.PositionalParams) {
		return nil, ierr.New(ierr.ArgumentError, pos, "function expects %d positional argument(s), got %d", len(fn.PositionalParams), len(args))
	}
	callEnv := environment.NewChild(fn.Env)
	for i, name := range fn.PositionalParams {
		callEnv.Set(name, args[i])
	}
	used := make(map[string]bool, len(kwargs))
	for _, dp := range fn.DefaultParams {
		if v, ok := kwargs[dp.Name]; ok {
			callEnv.Set(dp.Name, v)
			used[dp.Name] = true
			continue
		}
		v, err := e.Eval(dp.Default, callEnv)
		if err != nil {
			return nil, err
		}
		callEnv.Set(dp.Name, v)
	}
	for name := range kwargs {
		if !used[name] {
			return nil, ierr.New(ierr.ArgumentError, pos, "unexpected keyword argument %q", name)
		}
	}
	result, err := e.Eval(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	return value.Unwrap(result), nil
}
