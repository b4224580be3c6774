package ir

import (
	"errors"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in, out string
		n       int
	}{
		{"$a", "$a", 1},
		{"$.a.b", "$a.b", 2},
		{"$a.b[1].c", "$a.b[1].c", 3},
		{"$'x.y'.z", "$'x.y'.z", 2},
		{`$'it\'s'`, `$'it\'s'`, 1},
	}
	for _, tt := range tests {
		p, err := ParsePath(tt.in)
		if err != nil {
			t.Errorf("ParsePath(%q): %v", tt.in, err)
			continue
		}
		if got := p.String(); got != tt.out {
			t.Errorf("ParsePath(%q).String() = %q, want %q", tt.in, got, tt.out)
		}
		if p.Len() != tt.n {
			t.Errorf("ParsePath(%q).Len() = %d, want %d", tt.in, p.Len(), tt.n)
		}
	}
	for _, bad := range []string{"", "a.b", "$a..b", "$a[x]", "$a[1", "$'a", "$a]"} {
		if _, err := ParsePath(bad); err == nil {
			t.Errorf("ParsePath(%q) should fail", bad)
		}
	}
}

func TestResolve(t *testing.T) {
	first := MustNode("E", 1)
	second := MustNode("e", 2).Append(MustNode("Kid", 3))
	c := NewContainer("Obj").Add(first, second)
	doc := NewDocument(c)

	got, err := doc.Resolve(FieldPath("obj"))
	if err != nil || got != c {
		t.Fatalf("Resolve($obj) = %v, %v", got, err)
	}
	got, err = doc.Resolve(FieldPath("OBJ", "e"))
	if err != nil || got != first {
		t.Fatalf("Resolve($OBJ.e) = %v, %v", got, err)
	}
	p, err := ParsePath("$Obj.E[1].kid")
	if err != nil {
		t.Fatal(err)
	}
	got, err = doc.Resolve(p)
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := got.(*Node); !ok || n.Name() != "Kid" {
		t.Errorf("Resolve(%s) = %v", p, got)
	}
	p, _ = ParsePath("$Obj.E[2]")
	_, err = doc.Resolve(p)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Name != "E[2]" {
		t.Errorf("expected not found for E[2], got %v", err)
	}
}

func TestPathJoin(t *testing.T) {
	var p *Path
	a := p.Join("Obj", 0)
	b := a.Join("E", 1)
	c := b.Join("Kid", 0)
	if got := c.String(); got != "$Obj.E[1].Kid" {
		t.Errorf("joined path = %q", got)
	}
	if got := a.String(); got != "$Obj" {
		t.Errorf("Join modified its receiver: %q", got)
	}
}
