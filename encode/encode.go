package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/hippo-format/hippo/format"
	"github.com/signadot/hippo-format/hippo/ir"
	"github.com/signadot/hippo-format/hippo/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) (*EncState, error) {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.EscapedFormat, format.LegacyFormat:
		return es, nil
	}
	return nil, fmt.Errorf("%w: %w: %d", ErrEncoding, format.ErrBadFormat, es.format)
}

// Encode writes every container of doc as a record.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es, err := newEncState(opts)
	if err != nil {
		return err
	}
	for i, c := range doc.Containers() {
		if err := writeString(w, es.record(c)); err != nil {
			return fmt.Errorf("%w: record %d (%q): %w", ErrEncoding, i, c.Name(), err)
		}
	}
	return nil
}

// Marshal returns the text of doc.
func Marshal(doc *ir.Document, opts ...EncodeOption) (string, error) {
	es, err := newEncState(opts)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, c := range doc.Containers() {
		b.WriteString(es.record(c))
	}
	return b.String(), nil
}

// EncodeContainer writes c as a single record, including its terminator.
func EncodeContainer(c *ir.Container, w io.Writer, opts ...EncodeOption) error {
	es, err := newEncState(opts)
	if err != nil {
		return err
	}
	if err := writeString(w, es.record(c)); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

// EncodeNode writes the `(...)` form of n.
func EncodeNode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es, err := newEncState(opts)
	if err != nil {
		return err
	}
	var b strings.Builder
	es.node(&b, n)
	s := b.String()
	if es.format.IsLegacy() {
		s = token.Collapse(s)
	}
	if es.Color != nil {
		s = es.colorize(s, false)
	}
	if err := writeString(w, s); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func (es *EncState) record(c *ir.Container) string {
	var b strings.Builder
	b.WriteString(es.text(c.Name()))
	b.WriteByte(token.RecordOpen)
	for _, n := range c.Nodes() {
		es.node(&b, n)
	}
	b.WriteByte(token.RecordClose)
	b.WriteByte(token.Terminator)
	s := b.String()
	if es.format.IsLegacy() {
		s = token.Collapse(s)
	}
	if es.Color != nil {
		s = es.colorize(s, true)
	}
	return s
}

func (es *EncState) node(b *strings.Builder, n *ir.Node) {
	b.WriteByte(token.NodeOpen)
	b.WriteString(es.text(n.Name()))
	for i := range n.NumValues() {
		b.WriteByte(token.ValueOpen)
		b.WriteString(es.text(n.Value(i).Literal()))
		b.WriteByte(token.ValueClose)
	}
	for _, c := range n.Children() {
		es.node(b, c)
	}
	b.WriteByte(token.NodeClose)
}

func (es *EncState) text(s string) string {
	if es.format.IsLegacy() {
		return s
	}
	return token.Escape(s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
