// Package transform provides reversible text transforms applied to encoded
// documents before they are stored.
//
// A [Pipeline] runs a list of transforms either as a chain, which always
// round-trips, or in the concatenating mode older files were written with.
// Transforms are registered by name so they can be selected from
// configuration, see [ParseList].
package transform
