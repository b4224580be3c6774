package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/hippo-format/hippo/format"
	"github.com/signadot/hippo-format/hippo/ir"
)

func TestEncodeScenario(t *testing.T) {
	doc := ir.NewDocument(
		ir.NewContainer("SomeObject").Add(ir.MustNode("SomeElement", "SomeValue", 69, true)),
	)
	want := "SomeObject{(SomeElement[SomeValue][69][true])}\n"
	for _, f := range format.AllFormats() {
		buf := bytes.NewBuffer(nil)
		if err := Encode(doc, buf, EncodeFormat(f)); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != want {
			t.Errorf("%s: got %q, want %q", f, got, want)
		}
	}
}

func TestEncodeNode(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"empty", ir.MustNode("name"), "(name)"},
		{"child", ir.MustNode("A", 1).Append(ir.MustNode("B", 2)), "(A[1](B[2]))"},
		{"siblings", ir.MustNode("A").Append(ir.MustNode("B"), ir.MustNode("C", "x")), "(A(B)(C[x]))"},
		{"empty value", ir.MustNode("A", ""), "(A[])"},
		{"negative", ir.MustNode("A", -3, false), "(A[-3][false])"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := EncodeNode(tt.node, buf); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeEmptyContainer(t *testing.T) {
	doc := ir.NewDocument(ir.NewContainer("Empty"), ir.NewContainer("Other").Add(ir.MustNode("x")))
	got, err := Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Empty{}\nOther{(x)}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeEscaped(t *testing.T) {
	n := ir.MustNode("we(ird)", "a[[b]]c", `back\slash`, "two\nlines", "{}")
	doc := ir.NewDocument(ir.NewContainer("c{1}").Add(n))
	got := MustString(doc)
	want := `c\{1\}{(we\(ird\)[a\[\[b\]\]c][back\\slash][two\nlines][\{\}])}` + "\n"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("record must be a single line: %q", got)
	}
}

func TestEncodeLegacyCollapse(t *testing.T) {
	// the collapse is applied to the record text, so a literal containing
	// doubled brackets is corrupted.
	n := ir.MustNode("A", "x[[y]]z", "plain")
	doc := ir.NewDocument(ir.NewContainer("Obj").Add(n))
	got := MustString(doc, EncodeFormat(format.LegacyFormat))
	want := "Obj{(A[x[y]z][plain])}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeBadFormat(t *testing.T) {
	err := Encode(ir.NewDocument(), bytes.NewBuffer(nil), EncodeFormat(format.Format(9)))
	if !errors.Is(err, ErrEncoding) || !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("expected ErrEncoding wrapping ErrBadFormat, got %v", err)
	}
	if FormatFromOpts(EncodeFormat(format.LegacyFormat)) != format.LegacyFormat {
		t.Errorf("FormatFromOpts lost the format")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeWriteError(t *testing.T) {
	doc := ir.NewDocument(ir.NewContainer("x"))
	if err := Encode(doc, failWriter{}); !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &Colors{
		Default: func(v string, _ ...any) string { return "<" + v + ">" },
	}
	doc := ir.NewDocument(ir.NewContainer("O").Add(ir.MustNode("A", 1).Append(ir.MustNode("B"))))
	got := MustString(doc, EncodeColors(colors))
	want := "<O><{><(><A><[><1><]><(><B><)><)><}>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if plain := MustString(doc, EncodeColors(nil)); plain != "O{(A[1](B))}\n" {
		t.Errorf("nil colors should disable coloring, got %q", plain)
	}
	c := NewColors()
	if c.Get(ir.NumberType, ValueColor) == nil || c.Get(ir.Type(99), ValueColor) == nil {
		t.Errorf("Get must always return a function")
	}
}
