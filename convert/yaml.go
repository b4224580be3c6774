package convert

import (
	"github.com/signadot/hippo-format/hippo/ir"

	"github.com/goccy/go-yaml"
)

func MarshalYAML(doc *ir.Document) ([]byte, error) {
	return yaml.Marshal(ToAny(doc))
}

func UnmarshalYAML(d []byte) (*ir.Document, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return FromAny(v)
}
