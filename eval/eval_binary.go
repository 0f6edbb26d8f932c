package eval

import (
	"github.com/ashgrove/weave/environment"
	"github.com/ashgrove/weave/ierr"
	"github.com/ashgrove/weave/parser"
	"github.com/ashgrove/weave/value"
)

func (e *Evaluator) evalUnary(n *parser.UnaryExpr, env *environment.Environment) (value.Value, *ierr.Error) {
	right, err := e.Eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	pos := toPos(n.P)
	switch n.Op {
	case parser.OpNeg:
		return value.Neg(right, pos)
	case parser.OpNot:
		return value.Bool{V: !right.Truthy()}, nil
	default:
		return nil, ierr.New(ierr.NotSupported, pos, "unsupported unary operator %q", n.Op)
	}
}

func (e *Evaluator) evalBinary(n *parser.BinaryExpr, env *environment.Environment) (value.Value, *ierr.Error) {
	left, err := e.Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	pos := toPos(n.P)
	switch n.Op {
	case parser.Add:
		return value.Add(left, right, pos)
	case parser.Sub:
		return value.Sub(left, right, pos)
	case parser.Mul:
		return value.Mul(left, right, pos)
	case parser.Div:
		return value.Div(left, right, pos)
	case parser.Pow:
		return value.Pow(left, right, pos)
	default:
		return nil, ierr.New(ierr.NotSupported, pos, "unsupported binary operator %q", n.Op)
	}
}

func (e *Evaluator) evalCompare(n *parser.CompareExpr, env *environment.Environment) (value.Value, *ierr.Error) {
	left, err := e.Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	pos := toPos(n.P)
	if n.Op == parser.CmpEq {
		return value.Bool{V: value.Equal(left, right)}, nil
	}
	if n.Op == parser.CmpNotEq {
		return value.Bool{V: !value.Equal(left, right)}, nil
	}
	cmp, cerr := value.Compare(left, right, pos)
	if cerr != nil {
		return nil, cerr
	}
	switch n.Op {
	case parser.CmpLessThan:
		return value.Bool{V: cmp < 0}, nil
	case parser.CmpLessThanEq:
		return value.Bool{V: cmp <= 0}, nil
	case parser.CmpGreaterThan:
		return value.Bool{V: cmp > 0}, nil
	case parser.CmpGreaterThanEq:
		return value.Bool{V: cmp >= 0}, nil
	default:
		return nil, ierr.New(ierr.NotSupported, pos, "unsupported comparison operator %q", n.Op)
	}
}

// evalLogical implements or/and short-circuiting: the right operand is only
// evaluated when the left doesn't already decide the result.
func (e *Evaluator) evalLogical(n *parser.LogicalExpr, env *environment.Environment) (value.Value, *ierr.Error) {
	left, err := e.Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	if n.Op == parser.LogicalOr && left.Truthy() {
		return left, nil
	}
	if n.Op == parser.LogicalAnd && !left.Truthy() {
		return left, nil
	}
	return e.Eval(n.Right, env)
}
