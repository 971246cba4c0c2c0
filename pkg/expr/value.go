package expr

import "strings"

// Value is one of Literal, List, Bool, Reference or Concat.
type Value interface {
	isValue()
	// String returns a debug representation, not backend output.
	String() string
}

// Literal is plain text.
type Literal struct {
	Text string
}

// List is an ordered sequence of values.
type List struct {
	Items []Value
}

// Bool is a boolean flag.
type Bool struct {
	Value bool
}

// Reference points at a property of another (or the same) target.
type Reference struct {
	Target   string
	Property string
}

// Concat is a sequence of values rendered back to back with no separator.
type Concat struct {
	Items []Value
}

func (Literal) isValue()   {}
func (List) isValue()      {}
func (Bool) isValue()      {}
func (Reference) isValue() {}
func (Concat) isValue()    {}

func (l Literal) String() string { return l.Text }

func (l List) String() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (r Reference) String() string { return "${" + r.Target + "." + r.Property + "}" }

func (c Concat) String() string {
	var sb strings.Builder
	for _, item := range c.Items {
		sb.WriteString(item.String())
	}
	return sb.String()
}

// Lit returns a Literal.
func Lit(text string) Literal { return Literal{Text: text} }

// ListOf returns a List of the given values.
func ListOf(items ...Value) List { return List{Items: items} }

// Strings returns a List of literals.
func Strings(items ...string) List {
	l := List{Items: make([]Value, len(items))}
	for i, s := range items {
		l.Items[i] = Literal{Text: s}
	}
	return l
}

// BoolOf returns a Bool.
func BoolOf(v bool) Bool { return Bool{Value: v} }

// Ref returns a Reference to target.property.
func Ref(target, property string) Reference {
	return Reference{Target: target, Property: property}
}

// AddPrefix prepends prefix to every item of list. Literal items are
// rewritten in place. Nested lists are spliced into the result with the
// prefix applied to each of their items. Any other item is wrapped in a
// Concat so that the prefix survives later reference expansion.
func AddPrefix(prefix string, list List) List {
	out := List{Items: make([]Value, 0, len(list.Items))}
	for _, item := range list.Items {
		switch item := item.(type) {
		case Literal:
			out.Items = append(out.Items, Literal{Text: prefix + item.Text})
		case List:
			out.Items = append(out.Items, AddPrefix(prefix, item).Items...)
		default:
			out.Items = append(out.Items, Concat{Items: []Value{Literal{Text: prefix}, item}})
		}
	}
	return out
}

// HasReferences reports whether v contains a Reference anywhere.
func HasReferences(v Value) bool {
	switch v := v.(type) {
	case Reference:
		return true
	case List:
		for _, item := range v.Items {
			if HasReferences(item) {
				return true
			}
		}
	case Concat:
		for _, item := range v.Items {
			if HasReferences(item) {
				return true
			}
		}
	}
	return false
}
