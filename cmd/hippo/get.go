package main

import (
	"fmt"
	"io"

	"github.com/signadot/hippo-format/hippo/debug"
	"github.com/signadot/hippo-format/hippo/encode"
	"github.com/signadot/hippo-format/hippo/ir"
	hq "github.com/signadot/hippo-format/hippo/query"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if _, err := hq.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	return cfg.eachDoc(cc, args[1:], func(_ string, doc *ir.Document) error {
		res, err := hq.Get(doc, path)
		if err != nil {
			return err
		}
		return encodeAny(cc.Out, res, opts)
	})
}

func encodeAny(w io.Writer, v any, opts []encode.EncodeOption) error {
	if debug.Encode() {
		debug.Logf("encoding %T as %s\n", v, encode.FormatFromOpts(opts...))
	}
	switch x := v.(type) {
	case *ir.Document:
		return encode.Encode(x, w, opts...)
	case *ir.Container:
		return encode.EncodeContainer(x, w, opts...)
	case *ir.Node:
		if err := encode.EncodeNode(x, w, opts...); err != nil {
			return err
		}
		_, err := w.Write([]byte("\n"))
		return err
	}
	return fmt.Errorf("cannot encode %T", v)
}
