package builtin

import (
	"strconv"
	"strings"

	"github.com/ashgrove/weave/ierr"
	"github.com/ashgrove/weave/value"
)

// castMethods: str/int/float/type, each taking exactly one argument.
// Grounded on original_source/src/builtin_functions/cast.rs's
// get_type/to_str (type, str) and this language's own Int/Float
// promotion rules for int/float, which cast.rs leaves as `todo!()`.
var castMethods = []*Builtin{
	{Name: "str", Fn: strFn},
	{Name: "int", Fn: intFn},
	{Name: "float", Fn: floatFn},
	{Name: "type", Fn: typeFn},
}

func init() { register(castMethods) }

func strFn(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	if err := requireOneArg("str", args, kwargs, pos); err != nil {
		return nil, err
	}
	return value.Str{V: args[0].Display()}, nil
}

func typeFn(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	if err := requireOneArg("type", args, kwargs, pos); err != nil {
		return nil, err
	}
	return value.Str{V: value.TypeName(args[0])}, nil
}

func intFn(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	if err := requireOneArg("int", args, kwargs, pos); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case value.Int:
		return v, nil
	case value.Float:
		return value.Int{V: int64(v.V)}, nil
	case value.Bool:
		if v.V {
			return value.Int{V: 1}, nil
		}
		return value.Int{V: 0}, nil
	case value.Str:
		i, perr := strconv.ParseInt(strings.TrimSpace(v.V), 10, 64)
		if perr != nil {
			return nil, ierr.New(ierr.ParseError, pos, "cannot convert %q to int", v.V)
		}
		return value.Int{V: i}, nil
	default:
		return nil, typeErr(pos, "cannot convert a %s to int", value.TypeName(args[0]))
	}
}

func floatFn(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	if err := requireOneArg("float", args, kwargs, pos); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case value.Float:
		return v, nil
	case value.Int:
		return value.Float{V: float64(v.V)}, nil
	case value.Str:
		f, perr := strconv.ParseFloat(strings.TrimSpace(v.V), 64)
		if perr != nil {
			return nil, ierr.New(ierr.ParseError, pos, "cannot convert %q to float", v.V)
		}
		return value.Float{V: f}, nil
	default:
		return nil, typeErr(pos, "cannot convert a %s to float", value.TypeName(args[0]))
	}
}
