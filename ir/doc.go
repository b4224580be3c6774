// Package ir provides the in-memory tree of hippo documents.
//
// # Overview
//
// A [Document] is an ordered list of [Container]s.  Each container holds an
// ordered list of [Node]s, and each node holds an ordered list of scalar
// [Value]s plus an ordered list of child nodes.  The tree has no parent
// pointers and no sharing: every node is owned by exactly one container or
// parent node.
//
// Values are a closed variant of string, integer and boolean.  A node can
// never be used as a value; nesting is expressed with children only, and
// [NewNode] rejects such misuse with [ErrConstruction].
//
// # Creating Trees
//
//	elem := ir.MustNode("SomeElement", "SomeValue", 69, true)
//	obj := ir.NewContainer("SomeObject").Add(elem)
//	doc := ir.NewDocument(obj)
//
// # Lookup
//
// [Document.Container], [Container.Node] and [Node.Child] return the first
// case-insensitive match, or a [*NotFoundError] naming the searched scope.
// [Document.Resolve] follows a [Path] such as `$SomeObject.SomeElement`.
//
// # Concurrency
//
// Trees are not safe for concurrent mutation.  Concurrent reads of a tree
// that is no longer being modified are safe.
//
// # Related Packages
//
//   - github.com/signadot/hippo-format/hippo/parse - Parse text to documents
//   - github.com/signadot/hippo-format/hippo/encode - Encode documents to text
package ir
