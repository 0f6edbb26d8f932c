package eval

import (
	"github.com/ashgrove/weave/environment"
	"github.com/ashgrove/weave/ierr"
	"github.com/ashgrove/weave/parser"
	"github.com/ashgrove/weave/value"
)

func (e *Evaluator) evalListLiteral(n *parser.ListLiteral, env *environment.Environment) (value.Value, *ierr.Error) {
	elems := make([]value.Value, 0, len(n.Elements))
	for _, el := range n.Elements {
		v, err := e.Eval(el, env)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return &value.List{Elems: elems}, nil
}

func (e *Evaluator) evalHashLiteral(n *parser.HashLiteral, env *environment.Environment) (value.Value, *ierr.Error) {
	h := &value.Hash{}
	for _, pair := range n.Pairs {
		k, err := e.Eval(pair.Key, env)
		if err != nil {
			return nil, err
		}
		v, err := e.Eval(pair.Value, env)
		if err != nil {
			return nil, err
		}
		h.Set(k, v)
	}
	return h, nil
}

func (e *Evaluator) evalIdentifier(n *parser.Identifier, env *environment.Environment) (value.Value, *ierr.Error) {
	if v, ok := env.Get(n.Name); ok {
		return v, nil
	}
	return nil, ierr.New(ierr.VariableNotInitialized, toPos(n.P), "variable %q is not initialized", n.Name)
}
