package query

import (
	"os"

	"github.com/signadot/hippo-format/hippo/convert"
	"github.com/signadot/hippo-format/hippo/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Document) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := Get(doc, params[0].(string))
			if err != nil {
				return nil, err
			}
			switch x := res.(type) {
			case *ir.Node:
				return convert.NodeToAny(x), nil
			case *ir.Container:
				return convert.ContainerToAny(x), nil
			default:
				return convert.ToAny(doc), nil
			}
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := Get(doc, params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
