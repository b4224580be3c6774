package main

import (
	"fmt"

	"github.com/signadot/hippo-format/hippo/ir"
	hq "github.com/signadot/hippo-format/hippo/query"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires an expression", cli.ErrUsage)
	}
	src := args[0]
	opts := cfg.encOpts(cc.Out)
	return cfg.eachDoc(cc, args[1:], func(_ string, doc *ir.Document) error {
		res, err := hq.Match(doc, src)
		if err != nil {
			return err
		}
		for _, r := range res {
			if cfg.Paths {
				if _, err := fmt.Fprintln(cc.Out, r.Path); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(cc.Out, "%s\t", r.Path); err != nil {
				return err
			}
			if err := encodeAny(cc.Out, r.Node, opts); err != nil {
				return err
			}
		}
		return nil
	})
}
