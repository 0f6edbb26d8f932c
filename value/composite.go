package value

import (
	"strings"

	"github.com/ashgrove/weave/ierr"
)

// List is a mutable, ordered sequence of Values.
type List struct{ Elems []Value }

func (l *List) Kind() Kind { return ListKind }
func (l *List) Display() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = displayNested(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l *List) Truthy() bool { return true }

// Hash is an insertion-ordered mapping represented as two parallel slices:
// not all Values are hashable by a native Go map, so keys are compared by
// Equal instead of being used as native map keys.
type Hash struct {
	Keys []Value
	Vals []Value
}

func (h *Hash) Kind() Kind { return HashKind }
func (h *Hash) Display() string {
	parts := make([]string, len(h.Keys))
	for i := range h.Keys {
		parts[i] = displayNested(h.Keys[i]) + ": " + displayNested(h.Vals[i])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (h *Hash) Truthy() bool { return true }

// Get returns the value paired with a key equal to k, per Equal.
func (h *Hash) Get(k Value) (Value, bool) {
	for i, key := range h.Keys {
		if Equal(key, k) {
			return h.Vals[i], true
		}
	}
	return nil, false
}

// Set inserts or updates the value for a key equal to k, preserving
// insertion order on first insert.
func (h *Hash) Set(k, v Value) {
	for i, key := range h.Keys {
		if Equal(key, k) {
			h.Vals[i] = v
			return
		}
	}
	h.Keys = append(h.Keys, k)
	h.Vals = append(h.Vals, v)
}

// HostFunc is the signature of a function implemented outside the language
// and registered into the root environment.
type HostFunc func(args []Value, kwargs map[string]Value, callPos ierr.Position) (Value, *ierr.Error)

// HostFunction wraps a host-implemented callable.
type HostFunction struct {
	Name string
	Fn   HostFunc
}

func (h *HostFunction) Kind() Kind      { return HostFunctionKind }
func (h *HostFunction) Display() string { return "<built-in function>" }
func (h *HostFunction) Truthy() bool     { return true }

// displayNested renders v the way it appears inside a List/Hash literal:
// strings are quoted there, but bare at the top level.
func displayNested(v Value) string {
	if s, ok := v.(Str); ok {
		return Quoted(s.V)
	}
	return v.Display()
}

// Equal is total equality: same variant with equal payload; Int and Float
// never compare equal across variants even when numerically equal.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Nil:
		return true
	case Bool:
		return av.V == b.(Bool).V
	case Int:
		return av.V == b.(Int).V
	case Float:
		return av.V == b.(Float).V
	case Str:
		return av.V == b.(Str).V
	case *List:
		bv := b.(*List)
		if len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Hash:
		bv := b.(*Hash)
		if len(av.Keys) != len(bv.Keys) {
			return false
		}
		for i := range av.Keys {
			bval, ok := bv.Get(av.Keys[i])
			if !ok || !Equal(av.Vals[i], bval) {
				return false
			}
		}
		return true
	default:
		// Functions and host functions compare equal only by identity,
		// which Go's interface equality already gives us here.
		return a == b
	}
}
