package convert

import (
	"github.com/signadot/hippo-format/hippo/debug"
	"github.com/signadot/hippo-format/hippo/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyJSONPatch applies an RFC 6902 patch to the JSON view of doc.
func ApplyJSONPatch(doc *ir.Document, patch []byte) (*ir.Document, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("json-patch applied %d ops\n", len(ops))
	}
	return UnmarshalJSON(out)
}
