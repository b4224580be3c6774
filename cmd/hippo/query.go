package main

import (
	"fmt"

	"github.com/signadot/hippo-format/hippo/ir"
	hq "github.com/signadot/hippo-format/hippo/query"

	json "github.com/goccy/go-json"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires a jsonpath", cli.ErrUsage)
	}
	src := args[0]
	return cfg.eachDoc(cc, args[1:], func(_ string, doc *ir.Document) error {
		res, err := hq.JSONPath(doc, src)
		if err != nil {
			return err
		}
		for _, v := range res {
			d, err := json.Marshal(v)
			if err != nil {
				return err
			}
			d = append(d, '\n')
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
		}
		return nil
	})
}
