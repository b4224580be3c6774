// Package convert maps documents to and from generic values, JSON and YAML.
//
// The generic view is a list of containers:
//
//	[{"name": "Obj", "nodes": [{"name": "A", "values": [1], "children": []}]}]
//
// JSON patches are applied to that view.
package convert
