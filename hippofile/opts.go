package hippofile

import (
	"github.com/signadot/hippo-format/hippo/format"
	"github.com/signadot/hippo-format/hippo/parse"
	"github.com/signadot/hippo-format/hippo/transform"
)

type fileOpts struct {
	transforms []transform.Transform
	mode       transform.Mode
	format     format.Format
	parseOpts  []parse.ParseOption
}

type Option func(*fileOpts)

func newFileOpts(opts []Option) *fileOpts {
	res := &fileOpts{}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// WithTransforms sets the pipeline used to read the file and, when Encrypt
// is called without arguments, to write it.
func WithTransforms(ts ...transform.Transform) Option {
	return func(o *fileOpts) { o.transforms = ts }
}

func WithMode(m transform.Mode) Option {
	return func(o *fileOpts) { o.mode = m }
}

func WithFormat(f format.Format) Option {
	return func(o *fileOpts) { o.format = f }
}

// WithParseOptions passes extra options to the parser.  A format given here
// overrides WithFormat when reading.
func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(o *fileOpts) { o.parseOpts = append(o.parseOpts, opts...) }
}

func (o *fileOpts) pipeline(ts []transform.Transform) *transform.Pipeline {
	return transform.NewPipeline(ts...).WithMode(o.mode)
}
