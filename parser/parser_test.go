package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseOK(t *testing.T, src string) *Sequence {
	t.Helper()
	seq, errs := NewParser(src).Parse()
	assert.Empty(t, errs, "unexpected parse errors for %q: %v", src, errs)
	return seq
}

func TestParser_IntegerAndFloatLiterals(t *testing.T) {
	seq := parseOK(t, "42\n3.5")
	assert.Len(t, seq.Nodes, 2)
	i, ok := seq.Nodes[0].(*IntegerLiteral)
	assert.True(t, ok)
	assert.Equal(t, int64(42), i.Value)
	f, ok := seq.Nodes[1].(*FloatLiteral)
	assert.True(t, ok)
	assert.Equal(t, 3.5, f.Value)
}

func TestParser_StringEscapes(t *testing.T) {
	seq := parseOK(t, `"a\nb"`)
	s, ok := seq.Nodes[0].(*StringLiteral)
	assert.True(t, ok)
	assert.Equal(t, "a\nb", s.Value)
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	// 1 + 2 * 3 ** 2 should parse as 1 + (2 * (3 ** 2))
	seq := parseOK(t, "1 + 2 * 3 ** 2")
	add, ok := seq.Nodes[0].(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, Add, add.Op)
	_, ok = add.Left.(*IntegerLiteral)
	assert.True(t, ok)
	mul, ok := add.Right.(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, Mul, mul.Op)
	pow, ok := mul.Right.(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, Pow, pow.Op)
}

func TestParser_UnaryMinusBindsTighterThanPow(t *testing.T) {
	// -2 ** 2 parses as (-2) ** 2, per the unary '-' comment in
	// parser_expressions.go's parsePrefix.
	seq := parseOK(t, "-2 ** 2")
	pow, ok := seq.Nodes[0].(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, Pow, pow.Op)
	_, ok = pow.Left.(*UnaryExpr)
	assert.True(t, ok)
}

func TestParser_NotBindsLooserThanComparisonTighterThanAnd(t *testing.T) {
	seq := parseOK(t, "not 1 < 2 and true")
	logical, ok := seq.Nodes[0].(*LogicalExpr)
	assert.True(t, ok)
	assert.Equal(t, LogicalAnd, logical.Op)
	un, ok := logical.Left.(*UnaryExpr)
	assert.True(t, ok)
	assert.Equal(t, OpNot, un.Op)
	_, ok = un.Right.(*CompareExpr)
	assert.True(t, ok)
}

func TestParser_IfThenElse(t *testing.T) {
	seq := parseOK(t, "if true then 1 else 2")
	ie, ok := seq.Nodes[0].(*IfElse)
	assert.True(t, ok)
	assert.NotNil(t, ie.Cond)
	assert.NotNil(t, ie.Then)
	assert.NotNil(t, ie.Else)
}

func TestParser_IfWithBlockBodyNoElse(t *testing.T) {
	seq := parseOK(t, "if true { 1 }")
	ie, ok := seq.Nodes[0].(*IfElse)
	assert.True(t, ok)
	_, ok = ie.Then.(*Sequence)
	assert.True(t, ok)
	assert.Nil(t, ie.Else)
}

func TestParser_Loop(t *testing.T) {
	seq := parseOK(t, "loop { drop x }")
	l, ok := seq.Nodes[0].(*Loop)
	assert.True(t, ok)
	_, ok = l.Body.(*Sequence)
	assert.True(t, ok)
}

func TestParser_ReturnBareAndWithExpr(t *testing.T) {
	seq := parseOK(t, "return\nreturn 5")
	assert.Len(t, seq.Nodes, 2)
	r0, ok := seq.Nodes[0].(*Return)
	assert.True(t, ok)
	assert.Nil(t, r0.Expr)
	r1, ok := seq.Nodes[1].(*Return)
	assert.True(t, ok)
	assert.NotNil(t, r1.Expr)
}

func TestParser_DropMultipleNames(t *testing.T) {
	seq := parseOK(t, "drop a, b, c")
	d, ok := seq.Nodes[0].(*Drop)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, d.Names)
}

func TestParser_SimpleAssign(t *testing.T) {
	seq := parseOK(t, "x = 1")
	a, ok := seq.Nodes[0].(*Assign)
	assert.True(t, ok)
	assert.Len(t, a.Targets, 1)
	assert.Len(t, a.Values, 1)
}

func TestParser_ParallelAssignSwap(t *testing.T) {
	seq := parseOK(t, "a, b = b, a")
	asg, ok := seq.Nodes[0].(*Assign)
	assert.True(t, ok)
	assert.Len(t, asg.Targets, 2)
	assert.Len(t, asg.Values, 2)
}

func TestParser_AssignMismatchedArityIsError(t *testing.T) {
	_, errs := NewParser("a, b = 1").Parse()
	assert.NotEmpty(t, errs)
}

func TestParser_FunctionLiteralWithDefaultParam(t *testing.T) {
	seq := parseOK(t, "(a, b=2) -> a + b")
	fn, ok := seq.Nodes[0].(*FunctionLiteral)
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, fn.PositionalParams)
	assert.Len(t, fn.DefaultParams, 1)
	assert.Equal(t, "b", fn.DefaultParams[0].Name)
}

func TestParser_CallWithPositionalAndKeywordArgs(t *testing.T) {
	seq := parseOK(t, "f(1, b=2)")
	call, ok := seq.Nodes[0].(*CallExpr)
	assert.True(t, ok)
	assert.Len(t, call.PositionalArgs, 1)
	assert.Len(t, call.KeywordArgs, 1)
	assert.Equal(t, "b", call.KeywordArgs[0].Name)
}

func TestParser_DotAccessBecomesGetAttributeWithStringKey(t *testing.T) {
	seq := parseOK(t, "x.name")
	ga, ok := seq.Nodes[0].(*GetAttribute)
	assert.True(t, ok)
	key, ok := ga.Key.(*StringLiteral)
	assert.True(t, ok)
	assert.Equal(t, "name", key.Value)
}

func TestParser_IndexAccess(t *testing.T) {
	seq := parseOK(t, "x[0]")
	ga, ok := seq.Nodes[0].(*GetAttribute)
	assert.True(t, ok)
	_, ok = ga.Key.(*IntegerLiteral)
	assert.True(t, ok)
}

func TestParser_ListLiteral(t *testing.T) {
	seq := parseOK(t, "[1, 2, 3]")
	list, ok := seq.Nodes[0].(*ListLiteral)
	assert.True(t, ok)
	assert.Len(t, list.Elements, 3)
}

func TestParser_HashLiteral(t *testing.T) {
	seq := parseOK(t, `{"a" -> 1, "b" -> 2}`)
	h, ok := seq.Nodes[0].(*HashLiteral)
	assert.True(t, ok)
	assert.Len(t, h.Pairs, 2)
}

func TestParser_BraceWithoutArrowIsBlockNotHash(t *testing.T) {
	seq := parseOK(t, "{ 1\n2 }")
	block, ok := seq.Nodes[0].(*Sequence)
	assert.True(t, ok)
	assert.Len(t, block.Nodes, 2)
}

func TestParser_EmptyBracesIsEmptyBlock(t *testing.T) {
	seq := parseOK(t, "{}")
	block, ok := seq.Nodes[0].(*Sequence)
	assert.True(t, ok)
	assert.Empty(t, block.Nodes)
}

func TestParser_ParenGroupingDisambiguatedFromFunctionLiteral(t *testing.T) {
	seq := parseOK(t, "(1 + 2)")
	_, ok := seq.Nodes[0].(*BinaryExpr)
	assert.True(t, ok)
}

func TestParser_EmptyParensIsNil(t *testing.T) {
	seq := parseOK(t, "()")
	_, ok := seq.Nodes[0].(*NilLiteral)
	assert.True(t, ok)
}

func TestParser_UnexpectedTokenProducesError(t *testing.T) {
	_, errs := NewParser(")").Parse()
	assert.NotEmpty(t, errs)
}
