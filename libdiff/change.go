package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/hippo-format/hippo/encode"
	"github.com/signadot/hippo-format/hippo/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Add Op = iota
	Remove
	Modify
)

func (o Op) String() string {
	switch o {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Modify:
		return "modify"
	default:
		return fmt.Sprintf("<op %d>", int(o))
	}
}

func (o Op) sign() byte {
	switch o {
	case Add:
		return '+'
	case Remove:
		return '-'
	default:
		return '~'
	}
}

// Change is one difference between two documents.  Paths of removed and
// modified elements resolve in the old document, paths of added elements in
// the new one.
type Change struct {
	Op   Op
	Path *ir.Path

	// Container or Node holds the element added or removed.
	Container *ir.Container
	Node      *ir.Node

	// Values lists the value changes of a modified node.
	Values []ValueChange
}

// ValueChange is a difference in a node's value list.  Index is the
// position in the old list for Remove and Modify and in the new list for
// Add.
type ValueChange struct {
	Op    Op
	Index int
	From  ir.Value
	To    ir.Value
	Text  []diffpatch.Diff
}

func (c *Change) text() string {
	var b strings.Builder
	switch {
	case c.Container != nil:
		if err := encode.EncodeContainer(c.Container, &b); err != nil {
			return err.Error()
		}
		return strings.TrimSuffix(b.String(), "\n")
	case c.Node != nil:
		if err := encode.EncodeNode(c.Node, &b); err != nil {
			return err.Error()
		}
		return b.String()
	}
	return ""
}

// Format renders changes one per line:
//
//	+ $Obj.New (New[1])
//	- $Old Old{}
//	~ $Obj.A
//	    ~ [0] a{+b+}c
func Format(changes []Change) string {
	var b strings.Builder
	for i := range changes {
		c := &changes[i]
		if c.Op != Modify {
			fmt.Fprintf(&b, "%c %s %s\n", c.Op.sign(), c.Path, c.text())
			continue
		}
		fmt.Fprintf(&b, "~ %s\n", c.Path)
		for _, v := range c.Values {
			switch v.Op {
			case Add:
				fmt.Fprintf(&b, "    + [%d] %s\n", v.Index, v.To.Literal())
			case Remove:
				fmt.Fprintf(&b, "    - [%d] %s\n", v.Index, v.From.Literal())
			case Modify:
				fmt.Fprintf(&b, "    ~ [%d] %s\n", v.Index, Inline(v.Text))
			}
		}
	}
	return b.String()
}
