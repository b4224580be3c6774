package convert

import (
	"bytes"

	"github.com/signadot/hippo-format/hippo/ir"

	json "github.com/goccy/go-json"
)

func MarshalJSON(doc *ir.Document) ([]byte, error) {
	return json.Marshal(ToAny(doc))
}

func MarshalIndentJSON(doc *ir.Document, indent string) ([]byte, error) {
	return json.MarshalIndent(ToAny(doc), "", indent)
}

// UnmarshalJSON decodes the JSON view of a document.  Numbers must be
// integers.
func UnmarshalJSON(d []byte) (*ir.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return FromAny(v)
}
