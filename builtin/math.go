package builtin

import (
	"math"

	"github.com/ashgrove/weave/ierr"
	"github.com/ashgrove/weave/value"
)

const piConst = math.Pi

// mathMethods is the math builtin table: trig/exp/log/sqrt promote Int/Float
// to float64 and raise TypeError otherwise, with ArgumentError on wrong
// arity/kwargs; log2, log10, max, min, floor, ceil, round, and sign round out
// the set with the same wrapper shape.
var mathMethods = []*Builtin{
	{Name: "exp", Fn: unaryMath("exp", math.Exp)},
	{Name: "ln", Fn: unaryMath("ln", math.Log)},
	{Name: "log2", Fn: unaryMath("log2", math.Log2)},
	{Name: "log10", Fn: unaryMath("log10", math.Log10)},
	{Name: "sqrt", Fn: unaryMath("sqrt", math.Sqrt)},
	{Name: "sin", Fn: unaryMath("sin", math.Sin)},
	{Name: "cos", Fn: unaryMath("cos", math.Cos)},
	{Name: "tan", Fn: unaryMath("tan", math.Tan)},
	{Name: "sinh", Fn: unaryMath("sinh", math.Sinh)},
	{Name: "cosh", Fn: unaryMath("cosh", math.Cosh)},
	{Name: "tanh", Fn: unaryMath("tanh", math.Tanh)},
	{Name: "asin", Fn: unaryMath("asin", math.Asin)},
	{Name: "acos", Fn: unaryMath("acos", math.Acos)},
	{Name: "atan", Fn: unaryMath("atan", math.Atan)},
	{Name: "floor", Fn: unaryMath("floor", math.Floor)},
	{Name: "ceil", Fn: unaryMath("ceil", math.Ceil)},
	{Name: "round", Fn: unaryMath("round", math.Round)},
	{Name: "sign", Fn: signFn},
	{Name: "abs", Fn: absFn},
	{Name: "mod", Fn: modFn},
	{Name: "min", Fn: minMax("min", false)},
	{Name: "max", Fn: minMax("max", true)},
}

func init() { register(mathMethods) }

// unaryMath builds a Func for the large family of "promote to float64, call
// a math.XXX, wrap as Float" builtins.
func unaryMath(name string, f func(float64) float64) Func {
	return func(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
		if err := requireOneArg(name, args, kwargs, pos); err != nil {
			return nil, err
		}
		x, err := asFloat(name, args[0], pos)
		if err != nil {
			return nil, err
		}
		return value.Float{V: f(x)}, nil
	}
}

// absFn preserves the argument's own kind (Int stays Int), unlike the
// unaryMath builtins, which always return a Float.
func absFn(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	if err := requireOneArg("abs", args, kwargs, pos); err != nil {
		return nil, err
	}
	switch n := args[0].(type) {
	case value.Int:
		if n.V < 0 {
			return value.Int{V: -n.V}, nil
		}
		return n, nil
	case value.Float:
		return value.Float{V: math.Abs(n.V)}, nil
	default:
		return nil, typeErr(pos, "cannot apply abs to a %s", value.TypeName(args[0]))
	}
}

func signFn(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	if err := requireOneArg("sign", args, kwargs, pos); err != nil {
		return nil, err
	}
	x, err := asFloat("sign", args[0], pos)
	if err != nil {
		return nil, err
	}
	switch {
	case x > 0:
		return value.Int{V: 1}, nil
	case x < 0:
		return value.Int{V: -1}, nil
	default:
		return value.Int{V: 0}, nil
	}
}

// modFn implements floating-point remainder via math.Mod, preserving
// Int-Int results as Int the way value.Div preserves Int-Int division.
func modFn(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	if len(kwargs) != 0 || len(args) != 2 {
		return nil, argumentErr(pos, "function %q takes exactly two arguments", "mod")
	}
	ai, aIsInt := args[0].(value.Int)
	bi, bIsInt := args[1].(value.Int)
	if aIsInt && bIsInt {
		if bi.V == 0 {
			return nil, ierr.New(ierr.DivideByZero, pos, "mod by zero")
		}
		return value.Int{V: ai.V % bi.V}, nil
	}
	a, err := asFloat("mod", args[0], pos)
	if err != nil {
		return nil, err
	}
	b, err := asFloat("mod", args[1], pos)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, ierr.New(ierr.DivideByZero, pos, "mod by zero")
	}
	return value.Float{V: math.Mod(a, b)}, nil
}

// minMax is min/max over two numeric arguments, preserving Int if both
// arguments are Int and promoting to Float otherwise.
func minMax(name string, wantMax bool) Func {
	return func(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
		if len(kwargs) != 0 || len(args) != 2 {
			return nil, argumentErr(pos, "function %q takes exactly two arguments", name)
		}
		ai, aIsInt := args[0].(value.Int)
		bi, bIsInt := args[1].(value.Int)
		if aIsInt && bIsInt {
			if (wantMax && ai.V >= bi.V) || (!wantMax && ai.V <= bi.V) {
				return ai, nil
			}
			return bi, nil
		}
		a, err := asFloat(name, args[0], pos)
		if err != nil {
			return nil, err
		}
		b, err := asFloat(name, args[1], pos)
		if err != nil {
			return nil, err
		}
		if (wantMax && a >= b) || (!wantMax && a <= b) {
			return value.Float{V: a}, nil
		}
		return value.Float{V: b}, nil
	}
}
