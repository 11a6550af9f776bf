package table

import (
	"fmt"
	"strconv"
)

// Ref identifies a column either by header name or by position.
type Ref struct {
	Name  string
	Named bool
	Index int
}

// ByName returns a reference to the first header cell equal to name.
func ByName(name string) Ref {
	return Ref{Name: name, Named: true}
}

// ByIndex returns a reference to the column at index.
func ByIndex(index int) Ref {
	return Ref{Index: index}
}

// String renders the reference for diagnostics.
func (r Ref) String() string {
	if r.Named {
		return strconv.Quote(r.Name)
	}
	return strconv.Itoa(r.Index)
}

// Resolve returns ref with its index filled in from header. Named references
// take the first matching position; index references are returned as given
// and checked later against each row.
func Resolve(header Row, ref Ref) (Ref, error) {
	if !ref.Named {
		return ref, nil
	}
	for i, name := range header {
		if name == ref.Name {
			ref.Index = i
			return ref, nil
		}
	}
	return Ref{}, fmt.Errorf("%w: %q", ErrColumnNotFound, ref.Name)
}
