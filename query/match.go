package query

import (
	"fmt"

	"github.com/signadot/hippo-format/hippo/debug"
	"github.com/signadot/hippo-format/hippo/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is what a match expression sees for each node.
type Env struct {
	Container string `expr:"container"`
	Name      string `expr:"name"`
	Values    []any  `expr:"values"`
	// Depth is 1 for the nodes directly inside a container.
	Depth    int      `expr:"depth"`
	Path     string   `expr:"path"`
	Children []string `expr:"children"`
}

// Result is a node selected by Match along with a path that resolves to it.
type Result struct {
	Path      *ir.Path
	Container *ir.Container
	Node      *ir.Node
}

// Match evaluates the boolean expression src against every node of doc in
// document order and returns those for which it is true.
func Match(doc *ir.Document, src string) ([]Result, error) {
	opts := append(exprOpts(doc), expr.Env(Env{}), expr.AsBool())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	var res []Result
	err = walk(doc, func(c *ir.Container, n *ir.Node, p *ir.Path, depth int) error {
		ok, err := eval(prg, c, n, p, depth)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if ok {
			res = append(res, Result{Path: p, Container: c, Node: n})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("match %q selected %d nodes\n", src, len(res))
	}
	return res, nil
}

func eval(prg *vm.Program, c *ir.Container, n *ir.Node, p *ir.Path, depth int) (bool, error) {
	kids := n.Children()
	env := Env{
		Container: c.Name(),
		Name:      n.Name(),
		Values:    make([]any, n.NumValues()),
		Depth:     depth,
		Path:      p.String(),
		Children:  make([]string, len(kids)),
	}
	for i := range env.Values {
		env.Values[i] = n.Value(i).Any()
	}
	for i, k := range kids {
		env.Children[i] = k.Name()
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

type walkFunc func(c *ir.Container, n *ir.Node, p *ir.Path, depth int) error

// walk visits every node depth first, handing each a path that selects it
// among same-named siblings.
func walk(doc *ir.Document, f walkFunc) error {
	cs := doc.Containers()
	occ := ir.Occurrences(cs, (*ir.Container).Name)
	for i, c := range cs {
		var root *ir.Path
		if err := walkNodes(c, c.Nodes(), root.Join(c.Name(), occ[i]), 1, f); err != nil {
			return err
		}
	}
	return nil
}

func walkNodes(c *ir.Container, nodes []*ir.Node, parent *ir.Path, depth int, f walkFunc) error {
	occ := ir.Occurrences(nodes, (*ir.Node).Name)
	for i, n := range nodes {
		p := parent.Join(n.Name(), occ[i])
		if err := f(c, n, p, depth); err != nil {
			return err
		}
		if err := walkNodes(c, n.Children(), p, depth+1, f); err != nil {
			return err
		}
	}
	return nil
}
