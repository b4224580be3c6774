package main

import (
	"fmt"

	"github.com/signadot/hippo-format/hippo/convert"
	"github.com/signadot/hippo-format/hippo/ir"

	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.encOpts(cc.Out)
	for _, arg := range args {
		d, err := cfg.readInput(cc, arg)
		if err != nil {
			return err
		}
		var doc *ir.Document
		if cfg.YAML {
			doc, err = convert.UnmarshalYAML(d)
		} else {
			doc, err = convert.UnmarshalJSON(d)
		}
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := encodeAny(cc.Out, doc, opts); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
