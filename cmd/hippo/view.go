package main

import (
	"github.com/signadot/hippo-format/hippo/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return cfg.eachDoc(cc, args, func(_ string, doc *ir.Document) error {
		return encodeAny(cc.Out, doc, opts)
	})
}
