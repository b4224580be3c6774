package ir

import (
	"fmt"
	"slices"
	"strings"
)

// Node is a named tree element holding scalar values and child nodes.
// Values are fixed at construction, children may be appended.
type Node struct {
	name     string
	values   []Value
	children []*Node
}

// NewNode creates a node from a name and values convertible by ValueOf.
func NewNode(name string, values ...any) (*Node, error) {
	vs := make([]Value, 0, len(values))
	for i, x := range values {
		v, err := ValueOf(x)
		if err != nil {
			return nil, fmt.Errorf("node %q value %d: %w", name, i, err)
		}
		vs = append(vs, v)
	}
	return &Node{name: name, values: vs}, nil
}

// MustNode is like NewNode but panics on error.
func MustNode(name string, values ...any) *Node {
	n, err := NewNode(name, values...)
	if err != nil {
		panic(err)
	}
	return n
}

// FromValues creates a node from already converted values.
func FromValues(name string, values []Value) *Node {
	return &Node{name: name, values: slices.Clone(values)}
}

func (n *Node) Name() string {
	return n.name
}

// Values returns a copy of the node's values.
func (n *Node) Values() []Value {
	return slices.Clone(n.values)
}

// NumValues returns the number of values without copying them.
func (n *Node) NumValues() int {
	return len(n.values)
}

// Value returns the i'th value.
func (n *Node) Value(i int) Value {
	return n.values[i]
}

// Children returns the node's children.  The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Append attaches children in order and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.children = append(n.children, c)
	}
	return n
}

// Child returns the first child whose name matches name case-insensitively.
func (n *Node) Child(name string) (*Node, error) {
	for _, c := range n.children {
		if strings.EqualFold(c.name, name) {
			return c, nil
		}
	}
	return nil, &NotFoundError{Scope: fmt.Sprintf("node %q", n.name), Name: name}
}

func (n *Node) Clone() *Node {
	res := &Node{name: n.name, values: slices.Clone(n.values)}
	if len(n.children) != 0 {
		res.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			res.children[i] = c.Clone()
		}
	}
	return res
}

// Visit walks the tree rooted at n.  f is called before (isPost false) and
// after (isPost true) the children of each node; returning false from the
// pre-call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Depth returns the number of levels in the tree rooted at n.
func (n *Node) Depth() int {
	d := 0
	for _, c := range n.children {
		d = max(d, c.Depth())
	}
	return d + 1
}
