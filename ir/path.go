package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a container, or a node below it, by name:
//
//	$Container.Node.Child
//	$Container.Node[1]            second node named "Node"
//	$'dotted.name'.Node           quoted field
//
// Names match case-insensitively.  Without an index the first match is
// selected.
type Path struct {
	Field string
	Index *int
	Next  *Path
}

func (p *Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for x := p; x != nil; x = x.Next {
		if x != p {
			b.WriteByte('.')
		}
		b.WriteString(quoteField(x.Field))
		if x.Index != nil {
			fmt.Fprintf(&b, "[%d]", *x.Index)
		}
	}
	return b.String()
}

func quoteField(f string) string {
	if f != "" && strings.IndexAny(f, "'.$[] ") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", `\'`) + "'"
}

// FieldPath builds a path from names.
func FieldPath(names ...string) *Path {
	var (
		root *Path
		last *Path
	)
	for _, name := range names {
		p := &Path{Field: name}
		if root == nil {
			root = p
		} else {
			last.Next = p
		}
		last = p
	}
	return root
}

// Join returns a copy of p followed by a segment selecting the occ'th
// element named name, counting from 0.  p may be nil.
func (p *Path) Join(name string, occ int) *Path {
	seg := &Path{Field: name}
	if occ > 0 {
		seg.Index = &occ
	}
	var root, last *Path
	for x := p; x != nil; x = x.Next {
		y := &Path{Field: x.Field, Index: x.Index}
		if root == nil {
			root = y
		} else {
			last.Next = y
		}
		last = y
	}
	if root == nil {
		return seg
	}
	last.Next = seg
	return root
}

// Len returns the number of segments in p.
func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	if len(p) == 1 {
		return nil, nil
	}
	frag := p[1:]
	if frag[0] == '.' {
		frag = frag[1:]
	}
	var (
		root, last *Path
	)
	for {
		seg, rest, err := parseSegment(frag)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", p, err)
		}
		if root == nil {
			root = seg
		} else {
			last.Next = seg
		}
		last = seg
		if rest == "" {
			return root, nil
		}
		if rest[0] != '.' {
			return nil, fmt.Errorf("path %q: expected '.' at %q", p, rest)
		}
		frag = rest[1:]
	}
}

func parseSegment(frag string) (*Path, string, error) {
	field, rest, err := parseField(frag)
	if err != nil {
		return nil, "", err
	}
	seg := &Path{Field: field}
	if rest == "" || rest[0] != '[' {
		return seg, rest, nil
	}
	i := strings.IndexByte(rest, ']')
	if i == -1 {
		return nil, "", fmt.Errorf("expected '[' <index> ']'")
	}
	n, err := strconv.Atoi(rest[1:i])
	if err != nil || n < 0 {
		return nil, "", fmt.Errorf("bad index %q", rest[1:i])
	}
	seg.Index = &n
	return seg, rest[i+1:], nil
}

func parseField(frag string) (string, string, error) {
	if frag == "" {
		return "", "", fmt.Errorf("empty field")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[]'")
		if i == -1 {
			return frag, "", nil
		}
		switch {
		case frag[i] == ']' || frag[i] == '\'':
			return "", "", fmt.Errorf("unexpected %q in field", frag[i])
		case i == 0:
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	var b strings.Builder
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if i+1 < len(frag) && frag[i+1] == '\'' {
				b.WriteByte('\'')
				i++
				continue
			}
			b.WriteByte(c)
		case '\'':
			return b.String(), frag[i+1:], nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("unterminated quoted field")
}

// Resolve follows p through d.  The result is a *Container when p has a
// single segment and a *Node otherwise.
func (d *Document) Resolve(p *Path) (any, error) {
	if p == nil {
		return d, nil
	}
	c, err := nth(d.containers, p, "document", (*Container).Name)
	if err != nil {
		return nil, err
	}
	if p.Next == nil {
		return c, nil
	}
	scope := fmt.Sprintf("container %q", c.name)
	nodes := c.nodes
	var n *Node
	for x := p.Next; x != nil; x = x.Next {
		n, err = nth(nodes, x, scope, (*Node).Name)
		if err != nil {
			return nil, err
		}
		nodes = n.children
		scope = fmt.Sprintf("node %q", n.name)
	}
	return n, nil
}

// Occurrences returns, for each element of xs, how many earlier elements
// share its name ignoring case.  That count is the index a Path segment
// needs to select the element.
func Occurrences[T any](xs []T, name func(T) string) []int {
	seen := map[string]int{}
	res := make([]int, len(xs))
	for i, x := range xs {
		k := strings.ToLower(name(x))
		res[i] = seen[k]
		seen[k]++
	}
	return res
}

func nth[T any](xs []T, p *Path, scope string, name func(T) string) (T, error) {
	want := 0
	if p.Index != nil {
		want = *p.Index
	}
	seen := 0
	for _, x := range xs {
		if !strings.EqualFold(name(x), p.Field) {
			continue
		}
		if seen == want {
			return x, nil
		}
		seen++
	}
	var zero T
	nf := p.Field
	if p.Index != nil {
		nf = fmt.Sprintf("%s[%d]", p.Field, want)
	}
	return zero, &NotFoundError{Scope: scope, Name: nf}
}
