// Package parse parses hippo text into documents.
//
// # Usage
//
//	doc, err := parse.Parse([]byte("SomeObject{(SomeElement[SomeValue][69][true])}\n"))
//	if err != nil {
//	    return err
//	}
//	elem, err := doc.Containers()[0].Node("someelement")
//
//	// legacy (v1) text, all literals as strings
//	doc, err := parse.Parse(data, parse.ParseLegacy(), parse.Untyped())
//
// Each line is one record.  Blank lines are skipped.  Malformed input is
// reported as a [*Error] wrapping [ErrMalformed] and no partial document is
// returned.
//
// # Related Packages
//
//   - github.com/signadot/hippo-format/hippo/ir - Document tree
//   - github.com/signadot/hippo-format/hippo/encode - Encode documents to text
//   - github.com/signadot/hippo-format/hippo/token - Delimiters and escaping
package parse
