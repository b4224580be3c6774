package ir

import (
	"fmt"
	"strings"
)

// Container is a named ordered list of nodes, stored as one record.
type Container struct {
	name  string
	nodes []*Node
}

func NewContainer(name string) *Container {
	return &Container{name: name}
}

func (c *Container) Name() string {
	return c.name
}

// Nodes returns the container's nodes.  The slice must not be modified.
func (c *Container) Nodes() []*Node {
	return c.nodes
}

// Add appends nodes and returns c.
func (c *Container) Add(nodes ...*Node) *Container {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		c.nodes = append(c.nodes, n)
	}
	return c
}

// Node returns the first node whose name matches name case-insensitively.
// Names are not required to be unique.
func (c *Container) Node(name string) (*Node, error) {
	for _, n := range c.nodes {
		if strings.EqualFold(n.name, name) {
			return n, nil
		}
	}
	return nil, &NotFoundError{Scope: fmt.Sprintf("container %q", c.name), Name: name}
}

func (c *Container) Clone() *Container {
	res := &Container{name: c.name}
	if len(c.nodes) != 0 {
		res.nodes = make([]*Node, len(c.nodes))
		for i, n := range c.nodes {
			res.nodes[i] = n.Clone()
		}
	}
	return res
}

// Visit calls Node.Visit on every node of c.
func (c *Container) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	for _, n := range c.nodes {
		if err := n.Visit(f); err != nil {
			return err
		}
	}
	return nil
}
