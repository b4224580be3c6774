package encode

import (
	"strings"

	"github.com/signadot/hippo-format/hippo/ir"
	"github.com/signadot/hippo-format/hippo/token"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	ContainerColor ColorAttr = iota
	NodeColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = ContainerColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = NodeColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// colorize re-scans encoded text and wraps names, literals and delimiters
// in colors.  It runs after the legacy collapse so that color codes never
// split a doubled bracket.
func (es *EncState) colorize(s string, record bool) string {
	var b strings.Builder
	emit := func(t ir.Type, a ColorAttr, v string) {
		if v == "" {
			return
		}
		b.WriteString(es.Color(t, a, v))
	}
	i := 0
	if record {
		j := scanText(s, i, "{")
		emit(ir.StringType, ContainerColor, s[i:j])
		i = j
	}
	for i < len(s) {
		c := s[i]
		switch c {
		case token.NodeOpen:
			emit(ir.StringType, SepColor, s[i:i+1])
			i++
			j := scanText(s, i, "[()")
			emit(ir.StringType, NodeColor, s[i:j])
			i = j
		case token.ValueOpen:
			emit(ir.StringType, SepColor, s[i:i+1])
			i++
			j := scanText(s, i, "]")
			lit := s[i:j]
			emit(ir.Retype(lit).Type, ValueColor, lit)
			i = j
		case token.Terminator:
			b.WriteByte(c)
			i++
		default:
			emit(ir.StringType, SepColor, s[i:i+1])
			i++
		}
	}
	return b.String()
}

func scanText(s string, i int, stops string) int {
	for i < len(s) {
		c := s[i]
		if c == token.EscapeChar && i+1 < len(s) {
			i += 2
			continue
		}
		if c == token.Terminator || strings.IndexByte(stops, c) != -1 {
			return i
		}
		i++
	}
	return i
}
