package query

import (
	"strings"

	"github.com/signadot/hippo-format/hippo/debug"
	"github.com/signadot/hippo-format/hippo/ir"
)

// Get resolves a path such as $Container.Node.Child in doc.  The leading
// '$' may be omitted.  The result is the document itself for "$", a
// *ir.Container for a single segment and a *ir.Node otherwise.
func Get(doc *ir.Document, path string) (any, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("get %s\n", p)
	}
	return doc.Resolve(p)
}

// ParsePath is ir.ParsePath with an optional '$'.
func ParsePath(path string) (*ir.Path, error) {
	switch {
	case strings.HasPrefix(path, "$"):
	case strings.HasPrefix(path, "."):
		path = "$" + path
	default:
		path = "$." + path
	}
	return ir.ParsePath(path)
}
