// Package token provides the delimiters of the hippo grammar, literal
// escaping and source positions.
//
// A record is `name{node*}` terminated by a newline; a node is
// `(name value* node*)`; a value is `[literal]`.  [Escape] and [Unescape]
// implement the escaped format, [Collapse] implements the doubled bracket
// normalization of the legacy format.
package token
