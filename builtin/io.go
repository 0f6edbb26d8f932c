package builtin

import (
	"fmt"

	"github.com/ashgrove/weave/ierr"
	"github.com/ashgrove/weave/value"
)

// ioMethods: print/input. Grounded on
// original_source/src/builtin_functions/print.rs's builtin_print (single
// argument, Str displayed bare, everything else via Display, optional
// `end` keyword argument defaulting to "\n") and builtin_input (reads one
// line from stdin).
var ioMethods = []*Builtin{
	{Name: "print", Fn: printFn},
	{Name: "input", Fn: inputFn},
}

func init() { register(ioMethods) }

func printFn(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	if len(args) != 1 {
		return nil, argumentErr(pos, "function %q takes exactly one argument", "print")
	}
	end := "\n"
	for name, v := range kwargs {
		if name != "end" {
			return nil, argumentErr(pos, "unexpected keyword argument %q to %q", name, "print")
		}
		end = v.Display()
	}
	out := args[0].Display()
	fmt.Fprintf(rt.GetOutputWriter(), "%s%s", out, end)
	return value.Str{V: out}, nil
}

// inputFn reads one line from stdin, including the trailing newline, per
// print.rs's builtin_input.
func inputFn(rt Runtime, args []value.Value, kwargs map[string]value.Value, pos ierr.Position) (value.Value, *ierr.Error) {
	if len(kwargs) != 0 || len(args) != 0 {
		return nil, argumentErr(pos, "function %q takes no arguments", "input")
	}
	line, err := rt.GetInputReader().ReadString('\n')
	if err != nil && line == "" {
		return value.Str{V: ""}, nil
	}
	return value.Str{V: line}, nil
}
