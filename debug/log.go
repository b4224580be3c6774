package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/hippo-format/hippo/encode"
	"github.com/signadot/hippo-format/hippo/ir"
)

type Hippo struct{ *ir.Document }

func (h Hippo) String() string {
	s, err := encode.Marshal(h.Document)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Document] %v", h.Document)
	}
	return s
}

// Logf writes to stderr, rendering trees in hippo text and generic values
// as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.EncodeNode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		case *ir.Container:
			buf := bytes.NewBuffer(nil)
			if err := encode.EncodeContainer(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Container] %v", x)
				continue
			}
			args[i] = buf.String()
		case *ir.Document:
			args[i] = Hippo{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
