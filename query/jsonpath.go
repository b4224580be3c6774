package query

import (
	"fmt"

	"github.com/signadot/hippo-format/hippo/convert"
	"github.com/signadot/hippo-format/hippo/ir"

	"github.com/ohler55/ojg/jp"
)

// JSONPath evaluates a JSONPath expression over the generic view of doc, see
// convert.ToAny.
func JSONPath(doc *ir.Document, src string) ([]any, error) {
	x, err := jp.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", src, err)
	}
	return x.Get(convert.ToAny(doc)), nil
}
