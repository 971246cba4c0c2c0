package node

import "github.com/arthur-debert/bkgen/pkg/expr"

// Datum is a scalar-ish payload stored in attributes and leaf children.
// The set of kinds is closed: Expr, Bool, String, Int and List. The
// serializer dispatches over exactly these kinds.
type Datum interface {
	isDatum()
}

// Expr wraps a project value; it is rendered by the backend's expr.Formatter.
type Expr struct {
	Value expr.Value
}

// Bool is rendered with the backend's boolean tokens.
type Bool bool

// String is rendered verbatim.
type String string

// Int is rendered in decimal.
type Int int

// List is rendered as its items joined with the backend's list separator.
type List []Datum

func (Expr) isDatum()   {}
func (Bool) isDatum()   {}
func (String) isDatum() {}
func (Int) isDatum()    {}
func (List) isDatum()   {}

// Value wraps v as a Datum.
func Value(v expr.Value) Expr { return Expr{Value: v} }

// Strings returns a List of String items.
func Strings(items ...string) List {
	l := make(List, len(items))
	for i, s := range items {
		l[i] = String(s)
	}
	return l
}
