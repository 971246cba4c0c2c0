package node

import (
	"github.com/arthur-debert/bkgen/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attr is a single attribute assignment used by constructors.
type Attr struct {
	Key   string
	Value Datum
}

// A is shorthand for an Attr with a String value.
func A(key, value string) Attr {
	return Attr{Key: key, Value: String(value)}
}

// Child is one entry in a node's ordered child list. Exactly one of Node and
// Value is set.
type Child struct {
	Name  string
	Node  *Node
	Value Datum
}

// Node is an element of an output tree. Attributes keep insertion order
// while behaving as a map: setting an existing key replaces its value in
// place.
//
// A Node owns its attributes and child list. Attaching the same *Node under
// two parents is not detected.
type Node struct {
	Name string
	// Text is optional inline content. A node with children must not have
	// non-empty text; the serializer enforces this.
	Text Datum

	attrs    *orderedmap.OrderedMap[string, Datum]
	children []Child
}

// New creates a node with the given attributes.
func New(name string, attrs ...Attr) *Node {
	errors.Assert(name != "", "node name must not be empty")
	n := &Node{
		Name:  name,
		attrs: orderedmap.New[string, Datum](),
	}
	for _, a := range attrs {
		n.Set(a.Key, a.Value)
	}
	return n
}

// NewText creates a node with inline text content.
func NewText(name string, text Datum, attrs ...Attr) *Node {
	n := New(name, attrs...)
	n.Text = text
	return n
}

// Set assigns an attribute. The last write wins; the key keeps the position
// of its first assignment.
func (n *Node) Set(key string, value Datum) {
	errors.Assert(key != "", "node %s: attribute key must not be empty", n.Name)
	errors.Assert(value != nil, "node %s: attribute %s has no value", n.Name, key)
	n.attrs.Set(key, value)
}

// Get returns the attribute stored under key.
func (n *Node) Get(key string) (Datum, bool) {
	return n.attrs.Get(key)
}

// Attrs returns the attributes in insertion order.
func (n *Node) Attrs() []Attr {
	out := make([]Attr, 0, n.attrs.Len())
	for pair := n.attrs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Attr{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// AddNode attaches child under its own name.
func (n *Node) AddNode(child *Node) *Node {
	errors.Assert(child != nil, "node %s: cannot attach a nil child", n.Name)
	n.children = append(n.children, Child{Name: child.Name, Node: child})
	return child
}

// AddValue attaches a leaf child holding value under name.
func (n *Node) AddValue(name string, value Datum) {
	errors.Assert(name != "", "node %s: leaf child name must not be empty", n.Name)
	errors.Assert(value != nil, "node %s: leaf child %s has no value", n.Name, name)
	n.children = append(n.children, Child{Name: name, Value: value})
}

// AddElement creates an empty node with the given attributes, attaches it
// and returns it so that callers can keep building below it.
func (n *Node) AddElement(name string, attrs ...Attr) *Node {
	return n.AddNode(New(name, attrs...))
}

// Children returns the child entries in insertion order.
func (n *Node) Children() []Child {
	return n.children
}

// HasChildren reports whether at least one child has been attached.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}
