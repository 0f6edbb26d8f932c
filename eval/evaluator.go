// Package eval implements Weave's recursive tree-walking evaluator: it
// walks the parser's AST, consulting an environment.Environment and
// building value.Values, with control flow expressed as a distinguished
// Return-marker Value rather than a Go error or panic.
//
// A *environment.Environment threads explicitly through Eval rather than
// living as a single mutable field on Evaluator, because blocks (including
// block-shaped if/loop bodies) and call bodies each evaluate in their own
// child scope while the caller still holds a reference to its own (nested
// recursion, not a swapped field).
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/ashgrove/weave/builtin"
	"github.com/ashgrove/weave/environment"
	"github.com/ashgrove/weave/ierr"
	"github.com/ashgrove/weave/parser"
	"github.com/ashgrove/weave/value"
)

// Evaluator holds the state shared across one program's evaluation: the
// root environment and the I/O streams host functions like print/input use.
type Evaluator struct {
	Root   *environment.Environment
	Writer io.Writer
	Reader *bufio.Reader
}

// NewEvaluator creates an Evaluator with a fresh root environment,
// stdio-backed Writer/Reader, and every builtin.RegisterAll function
// already bound into the root environment. builtin depends only on
// environment/ierr/value and a structurally-satisfied Runtime interface,
// not on eval, so this import runs one direction and never cycles back.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		Root:   environment.NewRoot(),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
	builtin.RegisterAll(e.Root, e)
	return e
}

// SetWriter redirects the output used by host functions like print.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects the input used by host functions like input.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// GetInputReader implements builtin.Runtime.
func (e *Evaluator) GetInputReader() *bufio.Reader { return e.Reader }

// GetOutputWriter implements builtin.Runtime.
func (e *Evaluator) GetOutputWriter() io.Writer { return e.Writer }

// EvalProgram evaluates a top-level Sequence directly in the root
// environment, with no extra child scope, and strips one layer of Return
// from the result.
func (e *Evaluator) EvalProgram(seq *parser.Sequence) (value.Value, *ierr.Error) {
	result, err := e.evalSequenceBody(seq.Nodes, e.Root)
	if err != nil {
		return nil, err
	}
	return value.Unwrap(result), nil
}

// CallFunction implements builtin.Runtime: it lets host functions (e.g. a
// custom sort/map builtin) call back into user-defined Weave functions.
func (e *Evaluator) CallFunction(fn value.Value, args []value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	return e.callValue(fn, args, nil, pos)
}

// Eval dispatches on node's concrete type and evaluates it in env. It is
// the single recursive entry point every sub-evaluator (literals, control
// flow, calls) funnels through.
func (e *Evaluator) Eval(node parser.Node, env *environment.Environment) (value.Value, *ierr.Error) {
	switch n := node.(type) {
	case *parser.IntegerLiteral:
		return value.Int{V: n.Value}, nil
	case *parser.FloatLiteral:
		return value.Float{V: n.Value}, nil
	case *parser.StringLiteral:
		return value.Str{V: n.Value}, nil
	case *parser.NilLiteral:
		return value.Nil{}, nil
	case *parser.BoolLiteral:
		return value.Bool{V: n.Value}, nil
	case *parser.ListLiteral:
		return e.evalListLiteral(n, env)
	case *parser.HashLiteral:
		return e.evalHashLiteral(n, env)
	case *parser.Identifier:
		return e.evalIdentifier(n, env)
	case *parser.UnaryExpr:
		return e.evalUnary(n, env)
	case *parser.BinaryExpr:
		return e.evalBinary(n, env)
	case *parser.CompareExpr:
		return e.evalCompare(n, env)
	case *parser.LogicalExpr:
		return e.evalLogical(n, env)
	case *parser.GetAttribute:
		return e.evalGetAttribute(n, env)
	case *parser.Sequence:
		child := environment.NewChild(env)
		return e.evalSequenceBody(n.Nodes, child)
	case *parser.IfElse:
		return e.evalIfElse(n, env)
	case *parser.Loop:
		return e.evalLoop(n, env)
	case *parser.Return:
		return e.evalReturn(n, env)
	case *parser.Drop:
		return e.evalDrop(n, env)
	case *parser.Assign:
		return e.evalAssign(n, env)
	case *parser.FunctionLiteral:
		return e.evalFunctionLiteral(n, env)
	case *parser.CallExpr:
		return e.evalCall(n, env)
	default:
		return nil, ierr.New(ierr.NotSupported, ierr.Position{}, "unsupported node type %T", node)
	}
}

// evalSequenceBody evaluates nodes in order inside env (no new scope of its
// own — callers decide whether to push a child first), returning the value
// of the last node, or short-circuiting on the first ReturnMarker produced
// at any depth. An empty body yields Nil.
func (e *Evaluator) evalSequenceBody(nodes []parser.Node, env *environment.Environment) (value.Value, *ierr.Error) {
	var result value.Value = value.Nil{}
	for _, n := range nodes {
		v, err := e.Eval(n, env)
		if err != nil {
			return nil, err
		}
		result = v
		if _, ok := v.(value.ReturnMarker); ok {
			return result, nil
		}
	}
	return result, nil
}

func toPos(p parser.Position) ierr.Position {
	return ierr.Position{Begin: p.Begin, End: p.End}
}
