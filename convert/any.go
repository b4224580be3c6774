package convert

import (
	"errors"
	"fmt"
	"math"

	"github.com/signadot/hippo-format/hippo/ir"

	json "github.com/goccy/go-json"
)

var ErrConvert = errors.New("conversion error")

const (
	keyName     = "name"
	keyNodes    = "nodes"
	keyValues   = "values"
	keyChildren = "children"
)

// ToAny returns doc as a list of containers, each a map with "name" and
// "nodes"; a node is a map with "name", "values" and "children".  Values are
// strings, int64s or bools.
func ToAny(doc *ir.Document) []any {
	cs := doc.Containers()
	res := make([]any, len(cs))
	for i, c := range cs {
		res[i] = ContainerToAny(c)
	}
	return res
}

func ContainerToAny(c *ir.Container) map[string]any {
	nodes := c.Nodes()
	ns := make([]any, len(nodes))
	for i, n := range nodes {
		ns[i] = NodeToAny(n)
	}
	return map[string]any{keyName: c.Name(), keyNodes: ns}
}

func NodeToAny(n *ir.Node) map[string]any {
	vs := make([]any, n.NumValues())
	for i := range vs {
		vs[i] = n.Value(i).Any()
	}
	kids := n.Children()
	cs := make([]any, len(kids))
	for i, k := range kids {
		cs[i] = NodeToAny(k)
	}
	return map[string]any{keyName: n.Name(), keyValues: vs, keyChildren: cs}
}

// FromAny is the inverse of ToAny.  Missing "nodes", "values" and
// "children" entries are treated as empty.
func FromAny(v any) (*ir.Document, error) {
	xs, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: document must be a list, got %T", ErrConvert, v)
	}
	doc := ir.NewDocument()
	for i, x := range xs {
		c, err := ContainerFromAny(x)
		if err != nil {
			return nil, fmt.Errorf("container %d: %w", i, err)
		}
		doc.Add(c)
	}
	return doc, nil
}

func ContainerFromAny(v any) (*ir.Container, error) {
	m, err := asMap(v)
	if err != nil {
		return nil, err
	}
	name, err := nameOf(m)
	if err != nil {
		return nil, err
	}
	nodes, err := listOf(m, keyNodes)
	if err != nil {
		return nil, err
	}
	c := ir.NewContainer(name)
	for i, x := range nodes {
		n, err := NodeFromAny(x)
		if err != nil {
			return nil, fmt.Errorf("%q node %d: %w", name, i, err)
		}
		c.Add(n)
	}
	return c, nil
}

func NodeFromAny(v any) (*ir.Node, error) {
	m, err := asMap(v)
	if err != nil {
		return nil, err
	}
	name, err := nameOf(m)
	if err != nil {
		return nil, err
	}
	xs, err := listOf(m, keyValues)
	if err != nil {
		return nil, err
	}
	values := make([]ir.Value, len(xs))
	for i, x := range xs {
		values[i], err = valueFromAny(x)
		if err != nil {
			return nil, fmt.Errorf("%q value %d: %w", name, i, err)
		}
	}
	res := ir.FromValues(name, values)
	kids, err := listOf(m, keyChildren)
	if err != nil {
		return nil, err
	}
	for i, x := range kids {
		k, err := NodeFromAny(x)
		if err != nil {
			return nil, fmt.Errorf("%q child %d: %w", name, i, err)
		}
		res.Append(k)
	}
	return res, nil
}

func valueFromAny(v any) (ir.Value, error) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		return ir.Value{}, fmt.Errorf("%w: %s is not an integer", ErrConvert, x)
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return ir.Value{}, fmt.Errorf("%w: %v is not an integer", ErrConvert, x)
		}
		return ir.FromInt(int64(x)), nil
	case map[string]any, map[any]any, []any:
		return ir.Value{}, fmt.Errorf("%w: values must be scalars, got %T", ErrConvert, v)
	}
	res, err := ir.ValueOf(v)
	if err != nil {
		return ir.Value{}, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return res, nil
}

func asMap(v any) (map[string]any, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		res := make(map[string]any, len(m))
		for k, x := range m {
			s, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non string key %v", ErrConvert, k)
			}
			res[s] = x
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: expected a map, got %T", ErrConvert, v)
}

func nameOf(m map[string]any) (string, error) {
	name, ok := m[keyName].(string)
	if !ok {
		return "", fmt.Errorf("%w: missing or non string %q", ErrConvert, keyName)
	}
	return name, nil
}

func listOf(m map[string]any, key string) ([]any, error) {
	x, present := m[key]
	if !present || x == nil {
		return nil, nil
	}
	xs, ok := x.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a list, got %T", ErrConvert, key, x)
	}
	return xs, nil
}
