package parse

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/signadot/hippo-format/hippo/debug"
	"github.com/signadot/hippo-format/hippo/ir"
	"github.com/signadot/hippo-format/hippo/token"
)

// Parse parses a document, one record per line.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	p := newParser(d, opts)
	doc := ir.NewDocument()
	off := 0
	for off < len(d) {
		end := len(d)
		if nl := bytes.IndexByte(d[off:], token.Terminator); nl != -1 {
			end = off + nl
		}
		line := d[off:end]
		if len(bytes.TrimSpace(line)) != 0 {
			c, err := p.record(off, trimCR(d, off, end))
			if err != nil {
				return nil, err
			}
			doc.Add(c)
		}
		off = end + 1
	}
	if debug.Parse() {
		debug.Logf("parsed %d records from %d bytes\n", doc.Len(), len(d))
	}
	return doc, nil
}

// ParseContainer parses a single record.  A trailing newline is allowed.
func ParseContainer(d []byte, opts ...ParseOption) (*ir.Container, error) {
	p := newParser(d, opts)
	end := len(d)
	if end > 0 && d[end-1] == token.Terminator {
		end--
	}
	if i := bytes.IndexByte(d[:end], token.Terminator); i != -1 {
		return nil, p.errorf(i, nil, "newline inside record")
	}
	return p.record(0, trimCR(d, 0, end))
}

// ParseNode parses a single `(...)` span.
func ParseNode(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(d, opts)
	p.end = len(d)
	if p.end == 0 || d[0] != token.NodeOpen {
		return nil, p.errorf(0, nil, "expected %q", token.NodeOpen)
	}
	n, err := p.node()
	if err != nil {
		return nil, err
	}
	if p.i != p.end {
		return nil, p.errorf(p.i, nil, "trailing text after node")
	}
	return n, nil
}

type parser struct {
	d     []byte
	pd    *token.PosDoc
	i     int
	end   int
	depth int
	opts  *parseOpts
}

func newParser(d []byte, opts []ParseOption) *parser {
	return &parser{
		d:    d,
		pd:   token.NewPosDoc(d),
		opts: newParseOpts(opts),
	}
}

func trimCR(d []byte, off, end int) int {
	if end > off && d[end-1] == '\r' {
		return end - 1
	}
	return end
}

func (p *parser) errorf(off int, err error, msg string, args ...any) error {
	return &Error{Pos: p.pd.Pos(off), Msg: fmt.Sprintf(msg, args...), Err: err}
}

func (p *parser) peek() (byte, bool) {
	if p.i >= p.end {
		return 0, false
	}
	return p.d[p.i], true
}

// record parses `name{node*}` spanning [off, end).
func (p *parser) record(off, end int) (*ir.Container, error) {
	p.i, p.end, p.depth = off, end, 0
	name, err := p.text("{", "}()[]")
	if err != nil {
		return nil, err
	}
	c, ok := p.peek()
	if !ok || c != token.RecordOpen {
		return nil, p.errorf(off, nil, "record has no %q", token.RecordOpen)
	}
	p.i++
	res := ir.NewContainer(name)
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf(off, nil, "record %q has no closing %q", name, token.RecordClose)
		}
		if c == token.RecordClose {
			p.i++
			break
		}
		if c != token.NodeOpen {
			return nil, p.errorf(p.i, nil, "unexpected %q in record %q", c, name)
		}
		n, err := p.node()
		if err != nil {
			return nil, err
		}
		res.Add(n)
	}
	if p.i != p.end {
		return nil, p.errorf(p.i, nil, "trailing text after record %q", name)
	}
	return res, nil
}

// node parses `(name value* node*)` starting at the opening parenthesis.
func (p *parser) node() (*ir.Node, error) {
	start := p.i
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return nil, p.errorf(start, nil, "nesting exceeds %d", p.opts.maxDepth)
	}
	p.i++
	name, err := p.text("[()", "{}]")
	if err != nil {
		return nil, err
	}
	var values []ir.Value
	for {
		c, ok := p.peek()
		if !ok || c != token.ValueOpen {
			break
		}
		vStart := p.i
		p.i++
		lit, err := p.text("]", "[(){}")
		if err != nil {
			return nil, err
		}
		if c, ok := p.peek(); !ok || c != token.ValueClose {
			return nil, p.errorf(vStart, nil, "unterminated value in node %q", name)
		}
		p.i++
		values = append(values, p.value(lit))
	}
	res := ir.FromValues(name, values)
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf(start, nil, "unterminated node %q", name)
		}
		switch c {
		case token.NodeOpen:
			child, err := p.node()
			if err != nil {
				return nil, err
			}
			res.Append(child)
			continue
		case token.NodeClose:
			p.i++
			p.depth--
			return res, nil
		case token.ValueOpen:
			return nil, p.errorf(p.i, nil, "value after child in node %q", name)
		default:
			return nil, p.errorf(p.i, nil, "unexpected %q in node %q", c, name)
		}
	}
}

func (p *parser) value(lit string) ir.Value {
	if p.opts.untyped {
		return ir.FromString(lit)
	}
	return ir.Retype(lit)
}

// text reads a name or literal up to one of stops.  In the escaped format
// escape sequences are decoded and an unescaped byte in forbidden is an
// error; the legacy format reads bytes verbatim.
func (p *parser) text(stops, forbidden string) (string, error) {
	escaped := p.opts.format.IsEscaped()
	var b strings.Builder
	for p.i < p.end {
		c := p.d[p.i]
		if escaped && c == token.EscapeChar {
			if p.i+1 >= p.end {
				return "", p.errorf(p.i, token.ErrUnterminated, "unterminated escape")
			}
			r, err := token.Unescaped(p.d[p.i+1])
			if err != nil {
				return "", p.errorf(p.i, err, "escape %q", p.d[p.i:p.i+2])
			}
			b.WriteByte(r)
			p.i += 2
			continue
		}
		if strings.IndexByte(stops, c) != -1 {
			break
		}
		if escaped && strings.IndexByte(forbidden, c) != -1 {
			return "", p.errorf(p.i, nil, "unescaped %q", c)
		}
		b.WriteByte(c)
		p.i++
	}
	return b.String(), nil
}
