package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/weave/ierr"
	"github.com/ashgrove/weave/parser"
	"github.com/ashgrove/weave/value"
)

func run(t *testing.T, src string) value.Value {
	t.Helper()
	p := parser.NewParser(src)
	seq, errs := p.Parse()
	require.Empty(t, errs, "parse errors for %q", src)
	ev := NewEvaluator()
	v, err := ev.EvalProgram(seq)
	require.Nil(t, err, "eval error for %q: %v", src, err)
	return v
}

func runErr(t *testing.T, src string) *ierr.Error {
	t.Helper()
	p := parser.NewParser(src)
	seq, errs := p.Parse()
	require.Empty(t, errs, "parse errors for %q", src)
	ev := NewEvaluator()
	_, err := ev.EvalProgram(seq)
	require.NotNil(t, err, "expected eval error for %q", src)
	return err
}

func TestEval_Arithmetic(t *testing.T) {
	assert.Equal(t, "14", run(t, "2 + 3 * 4").Display())
	assert.Equal(t, "2.5", run(t, "5.0 / 2").Display())
	assert.Equal(t, "4.0", run(t, "2.0 * 2.0").Display())
	assert.Equal(t, "256", run(t, "2 ** 8").Display())
	assert.Equal(t, "-4", run(t, "-(2 + 2)").Display())
}

func TestEval_NegBindsTighterThanPow(t *testing.T) {
	// -2 ** 2 parses as (-2) ** 2 == 4: unary minus binds tighter than **.
	assert.Equal(t, "4", run(t, "-2 ** 2").Display())
}

func TestEval_DivideByZero(t *testing.T) {
	assert.Equal(t, ierr.DivideByZero, runErr(t, "1 / 0").Kind)
}

func TestEval_StringConcat(t *testing.T) {
	assert.Equal(t, "ab", run(t, `"a" + "b"`).Display())
}

func TestEval_ListConcat(t *testing.T) {
	assert.Equal(t, "[1, 2, 3, 4]", run(t, "[1, 2] + [3, 4]").Display())
}

func TestEval_EqualityNeverCrossesIntFloat(t *testing.T) {
	assert.Equal(t, "false", run(t, "1 == 1.0").Display())
	assert.Equal(t, "true", run(t, "1 == 1").Display())
}

func TestEval_LogicalShortCircuit(t *testing.T) {
	assert.Equal(t, "false", run(t, "false and (1 / 0 == 0)").Display())
	assert.Equal(t, "true", run(t, "true or (1 / 0 == 0)").Display())
}

func TestEval_IfElse(t *testing.T) {
	assert.Equal(t, "1", run(t, "if true then 1 else 2").Display())
	assert.Equal(t, "2", run(t, "if false then 1 else 2").Display())
	assert.Equal(t, "nil", run(t, "if false then 1").Display())
}

func TestEval_AssignAndSequentialScope(t *testing.T) {
	assert.Equal(t, "3", run(t, "x = 1\ny = 2\nx + y").Display())
}

func TestEval_ParallelAssignSwap(t *testing.T) {
	assert.Equal(t, "[2, 1]", run(t, "a = 1\nb = 2\na, b = b, a\n[a, b]").Display())
}

func TestEval_BlockIntroducesChildScope(t *testing.T) {
	assert.Equal(t, "1", run(t, "x = 1\n{ x = 2 }\nx").Display())
}

func TestEval_DropRemovesBinding(t *testing.T) {
	runErr(t, "x = 1\ndrop x\nx")
}

func TestEval_LoopUntilReturn(t *testing.T) {
	assert.Equal(t, "3", run(t, "i = 0\nloop { i = i + 1\nif i == 3 then return i }").Display())
}

func TestEval_FunctionCallAndClosure(t *testing.T) {
	src := `
make_counter = () -> {
    n = 0
    return () -> {
        n = n + 1
        return n
    }
}
counter = make_counter()
counter()
counter()
counter()
`
	assert.Equal(t, "3", run(t, src).Display())
}

func TestEval_FunctionDefaultParamUsesEarlierParam(t *testing.T) {
	src := `
f = (a, b=a+1) -> a + b
f(1)
`
	assert.Equal(t, "3", run(t, src).Display())
}

func TestEval_FunctionDefaultParamOverride(t *testing.T) {
	src := `
f = (a, b=a+1) -> a + b
f(1, b=10)
`
	assert.Equal(t, "11", run(t, src).Display())
}

func TestEval_UnexpectedKeywordArgumentIsArgumentError(t *testing.T) {
	src := `
f = (a) -> a
f(1, oops=2)
`
	assert.Equal(t, ierr.ArgumentError, runErr(t, src).Kind)
}

func TestEval_WrongPositionalArityIsArgumentError(t *testing.T) {
	src := `
f = (a, b) -> a + b
f(1)
`
	assert.Equal(t, ierr.ArgumentError, runErr(t, src).Kind)
}

func TestEval_ListAndHashIndexing(t *testing.T) {
	assert.Equal(t, "2", run(t, "[1, 2, 3][1]").Display())
	assert.Equal(t, "3", run(t, `{"a" -> 1, "b" -> 3}["b"]`).Display())
}

func TestEval_IndexOutOfRange(t *testing.T) {
	assert.Equal(t, ierr.IndexOutOfRange, runErr(t, "[1, 2][5]").Kind)
}

func TestEval_VariableNotInitialized(t *testing.T) {
	assert.Equal(t, ierr.VariableNotInitialized, runErr(t, "x").Kind)
}

func TestEval_NotCallable(t *testing.T) {
	runErr(t, "x = 1\nx()")
}

func TestEval_CallFunctionFromHost(t *testing.T) {
	p := parser.NewParser("f = (a) -> a + 1")
	seq, errs := p.Parse()
	require.Empty(t, errs)
	ev := NewEvaluator()
	_, err := ev.EvalProgram(seq)
	require.Nil(t, err)
	fn, ok := ev.Root.Get("f")
	require.True(t, ok)
	result, cerr := ev.CallFunction(fn, []value.Value{value.Int{V: 41}}, ierr.Position{})
	require.Nil(t, cerr)
	assert.Equal(t, "42", result.Display())
}

func TestEval_NestedReturnDoesNotDoubleWrap(t *testing.T) {
	v := run(t, "{1; return {2; return 3; 4}; 5}")
	assert.Equal(t, "3", v.Display())
	_, isReturn := v.(value.ReturnMarker)
	assert.False(t, isReturn, "top-level result must not still be a ReturnMarker")
}
