package value

import (
	"math"

	"github.com/ashgrove/weave/ierr"
)

func typeErr(pos ierr.Position, format string, args ...interface{}) *ierr.Error {
	return ierr.New(ierr.TypeError, pos, format, args...)
}

// numeric promotes a, b to float64 if either is Float; ok is false if
// either operand is not Int/Float.
func numeric(a, b Value) (af, bf float64, bothInt bool, ok bool) {
	ai, aIsInt := a.(Int)
	bi, bIsInt := b.(Int)
	aFloat, aIsFloat := a.(Float)
	bFloat, bIsFloat := b.(Float)
	switch {
	case aIsInt && bIsInt:
		return float64(ai.V), float64(bi.V), true, true
	case aIsInt && bIsFloat:
		return float64(ai.V), bFloat.V, false, true
	case aIsFloat && bIsInt:
		return aFloat.V, float64(bi.V), false, true
	case aIsFloat && bIsFloat:
		return aFloat.V, bFloat.V, false, true
	default:
		return 0, 0, false, false
	}
}

// Add handles numeric promotion, string concatenation, and list
// concatenation.
func Add(a, b Value, pos ierr.Position) (Value, *ierr.Error) {
	if af, bf, bothInt, ok := numeric(a, b); ok {
		if bothInt {
			return Int{int64(af) + int64(bf)}, nil
		}
		return Float{af + bf}, nil
	}
	if as, ok := a.(Str); ok {
		if bs, ok := b.(Str); ok {
			return Str{as.V + bs.V}, nil
		}
	}
	if al, ok := a.(*List); ok {
		if bl, ok := b.(*List); ok {
			out := make([]Value, 0, len(al.Elems)+len(bl.Elems))
			out = append(out, al.Elems...)
			out = append(out, bl.Elems...)
			return &List{Elems: out}, nil
		}
	}
	return nil, typeErr(pos, "unsupported operand types for +: %s and %s", TypeName(a), TypeName(b))
}

// Sub is numeric only.
func Sub(a, b Value, pos ierr.Position) (Value, *ierr.Error) {
	af, bf, bothInt, ok := numeric(a, b)
	if !ok {
		return nil, typeErr(pos, "unsupported operand types for -: %s and %s", TypeName(a), TypeName(b))
	}
	if bothInt {
		return Int{int64(af) - int64(bf)}, nil
	}
	return Float{af - bf}, nil
}

// Mul is numeric only.
func Mul(a, b Value, pos ierr.Position) (Value, *ierr.Error) {
	af, bf, bothInt, ok := numeric(a, b)
	if !ok {
		return nil, typeErr(pos, "unsupported operand types for *: %s and %s", TypeName(a), TypeName(b))
	}
	if bothInt {
		return Int{int64(af) * int64(bf)}, nil
	}
	return Float{af * bf}, nil
}

// Div raises DivideByZero on a zero divisor, truncates Int/Int division,
// and produces a Float otherwise.
func Div(a, b Value, pos ierr.Position) (Value, *ierr.Error) {
	ai, aIsInt := a.(Int)
	bi, bIsInt := b.(Int)
	if bIsInt && bi.V == 0 {
		return nil, ierr.New(ierr.DivideByZero, pos, "division by zero")
	}
	if bf, isFloat := b.(Float); isFloat && bf.V == 0 {
		return nil, ierr.New(ierr.DivideByZero, pos, "division by zero")
	}
	if aIsInt && bIsInt {
		return Int{ai.V / bi.V}, nil
	}
	af, bfloat, _, ok := numeric(a, b)
	if !ok {
		return nil, typeErr(pos, "unsupported operand types for /: %s and %s", TypeName(a), TypeName(b))
	}
	return Float{af / bfloat}, nil
}

// Pow handles Int**Int with the exponent converted to unsigned (negative
// exponent is a TypeError), Float otherwise via math.Pow.
func Pow(a, b Value, pos ierr.Position) (Value, *ierr.Error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			if bi.V < 0 {
				return nil, typeErr(pos, "negative exponent for integer **: %d", bi.V)
			}
			return Int{intPow(ai.V, uint64(bi.V))}, nil
		}
	}
	af, bf, _, ok := numeric(a, b)
	if !ok {
		return nil, typeErr(pos, "unsupported operand types for **: %s and %s", TypeName(a), TypeName(b))
	}
	return Float{math.Pow(af, bf)}, nil
}

func intPow(base int64, exp uint64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// Neg is unary negation.
func Neg(a Value, pos ierr.Position) (Value, *ierr.Error) {
	switch v := a.(type) {
	case Int:
		return Int{-v.V}, nil
	case Float:
		return Float{-v.V}, nil
	default:
		return nil, typeErr(pos, "unsupported operand type for unary -: %s", TypeName(a))
	}
}

// Compare orders two numeric values, with promotion.
func Compare(a, b Value, pos ierr.Position) (int, *ierr.Error) {
	af, bf, _, ok := numeric(a, b)
	if !ok {
		return 0, typeErr(pos, "unsupported operand types for comparison: %s and %s", TypeName(a), TypeName(b))
	}
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}
