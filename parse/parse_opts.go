package parse

import (
	"github.com/signadot/hippo-format/hippo/format"
)

// DefaultMaxDepth bounds node nesting unless overridden with MaxDepth.
const DefaultMaxDepth = 10000

type parseOpts struct {
	format   format.Format
	untyped  bool
	maxDepth int
}

type ParseOption func(*parseOpts)

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{format: format.EscapedFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
func ParseLegacy() ParseOption {
	return ParseFormat(format.LegacyFormat)
}
func ParseEscaped() ParseOption {
	return ParseFormat(format.EscapedFormat)
}

// Untyped keeps every literal as a string instead of inferring numbers and
// booleans.
func Untyped() ParseOption {
	return func(o *parseOpts) { o.untyped = true }
}

// MaxDepth limits node nesting; n <= 0 means no limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// FormatFromOpts extracts the format from parse options.
func FormatFromOpts(opts ...ParseOption) format.Format {
	return newParseOpts(opts).format
}
