package main

import (
	"github.com/signadot/hippo-format/hippo/convert"
	"github.com/signadot/hippo-format/hippo/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachDoc(cc, args, func(_ string, doc *ir.Document) error {
		var (
			d   []byte
			err error
		)
		switch {
		case cfg.YAML:
			d, err = convert.MarshalYAML(doc)
		case cfg.Indent != "":
			d, err = convert.MarshalIndentJSON(doc, cfg.Indent)
			d = append(d, '\n')
		default:
			d, err = convert.MarshalJSON(doc)
			d = append(d, '\n')
		}
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	})
}
