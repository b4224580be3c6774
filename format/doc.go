// Package format names the on-disk versions of the hippo text format.
//
// # Versions
//
//   - escaped (v2, default): the escape character '\' protects the delimiters
//     `\ [ ] ( ) { }` inside names and literals, and newlines are written as
//     `\n`.  Every string round-trips.
//   - legacy (v1): names and literals are written verbatim and each record has
//     `[[` collapsed to `[` and `]]` collapsed to `]`.  Literals containing
//     doubled brackets or delimiters do not round-trip.
//
// A document whose names and values contain no delimiters, backslashes or
// newlines has the same text in both versions.
//
// # Related Packages
//
//   - github.com/signadot/hippo-format/hippo/encode - Encode documents to text
//   - github.com/signadot/hippo-format/hippo/parse - Parse text to documents
package format
