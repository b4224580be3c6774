// Package encode serializes hippo documents to text.
//
// # Usage
//
//	doc := ir.NewDocument(
//	    ir.NewContainer("SomeObject").Add(ir.MustNode("SomeElement", "SomeValue", 69, true)),
//	)
//	buf := bytes.NewBuffer(nil)
//	if err := encode.Encode(doc, buf); err != nil {
//	    return err
//	}
//	// SomeObject{(SomeElement[SomeValue][69][true])}
//
//	// legacy (v1) output, with doubled brackets collapsed
//	err := encode.Encode(doc, w, encode.EncodeFormat(format.LegacyFormat))
//
// Each container is written as one record terminated by a newline.
//
// # Related Packages
//
//   - github.com/signadot/hippo-format/hippo/ir - Document tree
//   - github.com/signadot/hippo-format/hippo/parse - Parse text to documents
package encode
