package main

import (
	"fmt"

	"github.com/signadot/hippo-format/hippo/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.readDoc(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.readDoc(cc, args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return nil
	}
	if _, err := cc.Out.Write([]byte(libdiff.Format(changes))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
