// Package libdiff computes structural differences between documents.
package libdiff
