package transform

import (
	"fmt"
	"strings"

	"github.com/signadot/hippo-format/hippo/debug"
)

// Mode selects how a pipeline combines its transforms.
type Mode int

const (
	// Chain feeds the output of each transform to the next when encoding
	// and undoes them in reverse order when decoding.
	Chain Mode = iota
	// Concat encodes by concatenating the output of every transform applied
	// to the same input, and decodes by applying every transform to the same
	// input and keeping the last result.  It only round-trips for a single
	// transform.
	Concat
)

func (m Mode) String() string {
	switch m {
	case Chain:
		return "chain"
	case Concat:
		return "concat"
	default:
		return fmt.Sprintf("<mode %d>", int(m))
	}
}

func ParseMode(v string) (Mode, error) {
	switch strings.ToLower(v) {
	case "chain", "":
		return Chain, nil
	case "concat":
		return Concat, nil
	}
	return Chain, fmt.Errorf("%w: unknown mode %q", ErrTransform, v)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(d []byte) error {
	v, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Pipeline is an ordered list of transforms.  An empty pipeline is the
// identity in both modes.
type Pipeline struct {
	ts   []Transform
	mode Mode
}

func NewPipeline(ts ...Transform) *Pipeline {
	return &Pipeline{ts: append([]Transform(nil), ts...)}
}

func (p *Pipeline) WithMode(m Mode) *Pipeline {
	p.mode = m
	return p
}

func (p *Pipeline) Mode() Mode { return p.mode }

func (p *Pipeline) Transforms() []Transform {
	return append([]Transform(nil), p.ts...)
}

func (p *Pipeline) Len() int { return len(p.ts) }

func (p *Pipeline) String() string {
	names := make([]string, len(p.ts))
	for i, t := range p.ts {
		names[i] = t.String()
	}
	return strings.Join(names, ",")
}

func (p *Pipeline) Encode(text string) (string, error) {
	return p.Apply(text, Encode)
}

func (p *Pipeline) Decode(text string) (string, error) {
	return p.Apply(text, Decode)
}

func (p *Pipeline) Apply(text string, dir Direction) (string, error) {
	if len(p.ts) == 0 {
		return text, nil
	}
	if debug.Transform() {
		debug.Logf("%s %s %s over %d bytes\n", p.mode, dir, p, len(text))
	}
	switch p.mode {
	case Chain:
		return p.chain(text, dir)
	case Concat:
		return p.concat(text, dir)
	}
	return "", fmt.Errorf("%w: bad mode %s", ErrTransform, p.mode)
}

func (p *Pipeline) chain(text string, dir Direction) (string, error) {
	n := len(p.ts)
	for k := range n {
		i := k
		if dir == Decode {
			i = n - 1 - k
		}
		out, err := p.step(i, text, dir)
		if err != nil {
			return "", err
		}
		text = out
	}
	return text, nil
}

func (p *Pipeline) concat(text string, dir Direction) (string, error) {
	var b strings.Builder
	res := ""
	for i := range p.ts {
		out, err := p.step(i, text, dir)
		if err != nil {
			return "", err
		}
		if dir == Encode {
			b.WriteString(out)
			continue
		}
		res = out
	}
	if dir == Encode {
		return b.String(), nil
	}
	return res, nil
}

func (p *Pipeline) step(i int, text string, dir Direction) (string, error) {
	t := p.ts[i]
	out, err := dir.apply(t, text)
	if err != nil {
		return "", &Error{Transform: t.String(), Index: i, Direction: dir, Err: err}
	}
	return out, nil
}

// Apply runs ts over text in Chain mode.
func Apply(text string, ts []Transform, dir Direction) (string, error) {
	return NewPipeline(ts...).Apply(text, dir)
}
