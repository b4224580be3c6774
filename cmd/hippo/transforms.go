package main

import (
	"fmt"

	"github.com/signadot/hippo-format/hippo/transform"

	"github.com/scott-cotton/cli"
)

func transforms(cfg *TransformsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: transforms takes no arguments", cli.ErrUsage)
	}
	for _, name := range transform.Names() {
		if _, err := fmt.Fprintln(cc.Out, name); err != nil {
			return err
		}
	}
	return nil
}
