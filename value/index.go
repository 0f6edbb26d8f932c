package value

import "github.com/ashgrove/weave/ierr"

// Index implements GetAttribute's indexing rules for List, Str, and Hash
// receivers.
//
// Negative list/string indices are used as their absolute value, not
// counted from the end — a documented quirk frozen for compatibility.
func Index(receiver, key Value, pos ierr.Position) (Value, *ierr.Error) {
	switch r := receiver.(type) {
	case *List:
		idx, err := indexInt(key, pos)
		if err != nil {
			return nil, err
		}
		if idx < 0 {
			idx = -idx
		}
		if idx < 0 || idx >= len(r.Elems) {
			return nil, ierr.New(ierr.IndexOutOfRange, pos, "list index out of range: %d", idx)
		}
		return r.Elems[idx], nil
	case Str:
		idx, err := indexInt(key, pos)
		if err != nil {
			return nil, err
		}
		if idx < 0 {
			idx = -idx
		}
		if idx < 0 || idx >= len(r.V) {
			return nil, ierr.New(ierr.IndexOutOfRange, pos, "string index out of range: %d", idx)
		}
		return Str{string(r.V[idx])}, nil
	case *Hash:
		v, ok := r.Get(key)
		if !ok {
			return nil, ierr.New(ierr.IndexOutOfRange, pos, "key not found in hash")
		}
		return v, nil
	default:
		return nil, typeErr(pos, "value of type %s does not support indexing", TypeName(receiver))
	}
}

func indexInt(key Value, pos ierr.Position) (int, *ierr.Error) {
	i, ok := key.(Int)
	if !ok {
		return 0, typeErr(pos, "index must be an int, got %s", TypeName(key))
	}
	return int(i.V), nil
}
