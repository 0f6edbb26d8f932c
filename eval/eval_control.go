package eval

import (
	"github.com/ashgrove/weave/environment"
	"github.com/ashgrove/weave/ierr"
	"github.com/ashgrove/weave/parser"
	"github.com/ashgrove/weave/value"
)

// evalIfElse evaluates cond, then the chosen branch directly in env. Branch
// dispatch to Eval naturally gives Sequence branches their own child scope
// (Eval's *parser.Sequence case) while non-Sequence branches (a bare
// expression) evaluate directly in env — no special-casing needed here.
func (e *Evaluator) evalIfElse(n *parser.IfElse, env *environment.Environment) (value.Value, *ierr.Error) {
	cond, err := e.Eval(n.Cond, env)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return e.Eval(n.Then, env)
	}
	if n.Else == nil {
		return value.Nil{}, nil
	}
	return e.Eval(n.Else, env)
}

// evalLoop repeats Body until it yields a Return, which loop unwraps once
// and surfaces as its own value. Each iteration's body evaluation creates
// its own child scope through Eval's Sequence case, so names declared
// inside the loop don't leak across iterations.
func (e *Evaluator) evalLoop(n *parser.Loop, env *environment.Environment) (value.Value, *ierr.Error) {
	for {
		result, err := e.Eval(n.Body, env)
		if err != nil {
			return nil, err
		}
		if rm, ok := result.(value.ReturnMarker); ok {
			return rm.V, nil
		}
	}
}

func (e *Evaluator) evalReturn(n *parser.Return, env *environment.Environment) (value.Value, *ierr.Error) {
	if n.Expr == nil {
		return value.ReturnMarker{V: value.Nil{}}, nil
	}
	v, err := e.Eval(n.Expr, env)
	if err != nil {
		return nil, err
	}
	return value.ReturnMarker{V: value.Unwrap(v)}, nil
}

func (e *Evaluator) evalDrop(n *parser.Drop, env *environment.Environment) (value.Value, *ierr.Error) {
	for _, name := range n.Names {
		if !env.Drop(name) {
			return nil, ierr.New(ierr.VariableNotInitialized, toPos(n.P), "variable %q is not initialized", name)
		}
	}
	return value.Nil{}, nil
}

// evalAssign evaluates every right-hand value left-to-right before binding
// any target, so `a, b = b, a` swaps rather than aliasing. Targets must be
// bare identifiers; anything else is NotSupported.
func (e *Evaluator) evalAssign(n *parser.Assign, env *environment.Environment) (value.Value, *ierr.Error) {
	values := make([]value.Value, 0, len(n.Values))
	for _, valNode := range n.Values {
		v, err := e.Eval(valNode, env)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	var last value.Value = value.Nil{}
	for i, target := range n.Targets {
		id, ok := target.(*parser.Identifier)
		if !ok {
			return nil, ierr.New(ierr.NotSupported, toPos(target.Pos()), "assignment target must be a name")
		}
		env.Set(id.Name, values[i])
		last = values[i]
	}
	return last, nil
}

func (e *Evaluator) evalGetAttribute(n *parser.GetAttribute, env *environment.Environment) (value.Value, *ierr.Error) {
	receiver, err := e.Eval(n.Receiver, env)
	if err != nil {
		return nil, err
	}
	key, err := e.Eval(n.Key, env)
	if err != nil {
		return nil, err
	}
	return value.Index(receiver, key, toPos(n.P))
}
