// Package query selects parts of a document by path, by expression and by
// JSONPath.
//
// Match expressions are written in expr-lang and see the fields of [Env].
// They may also call getpath(p), haspath(p) and getenv(name).
package query
