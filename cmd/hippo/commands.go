package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg, err := newMainConfig()
	if err != nil {
		panic(err)
	}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "text format: escaped/e (default), legacy/l",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc, "(format)"),
		},
		&cli.Opt{
			Name:        "T",
			Aliases:     []string{"transforms"},
			Description: "comma separated transforms applied to stored files (default $" + transformsEnv + ")",
			Type:        cli.NamedFuncOpt(cfg.transformsFunc, "(t1,t2,...)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "hippo").
		WithSynopsis("hippo [opts] command [opts]").
		WithDescription("hippo is a tool for working with hippo files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hippoMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			MatchCommand(cfg),
			QueryCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			DumpCommand(cfg),
			LoadCommand(cfg),
			EncryptCommand(cfg),
			DecryptCommand(cfg),
			TransformsCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view hippo files, decoding them with -T, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get a container or node by path, such as $Container.Node.Child[1]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Match, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <expr> [files]").
		WithDescription(matchDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

const matchDescription = `match selects nodes with a boolean expression.

The expression is evaluated once per node and sees

  container  the container name
  name       the node name
  values     the node values (strings, integers and booleans)
  depth      1 for nodes directly in a container
  path       the path of the node, such as $Obj.Node[1]
  children   the names of the node's children

and the functions getpath(path), haspath(path) and getenv(name).

Example: match 'name == "Port" && values[0] > 1024' config.hippo`

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <jsonpath> [files]").
		WithDescription("evaluate a JSONPath over the json view of hippo files (see dump)").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff a b").
		WithDescription("diff hippo files, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-s] <json-patch> file").
		WithDescription("apply an RFC 6902 json patch to the json view of a hippo file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-y] [files]").
		WithDescription("dump hippo files as json or yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func LoadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LoadConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Load, "load").
		WithSynopsis("load [-y] [files]").
		WithDescription("load json or yaml produced by dump and render it as hippo").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return load(cfg, cc, args)
		})
}

func EncryptCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncryptConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Encrypt, "encrypt").
		WithAliases("enc").
		WithSynopsis("encrypt files").
		WithDescription("rewrite plain hippo files in place through the -T transforms (default swap)").
		WithRun(func(cc *cli.Context, args []string) error {
			return encrypt(cfg, cc, args)
		})
}

func DecryptCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecryptConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Decrypt, "decrypt").
		WithAliases("dec").
		WithSynopsis("decrypt files").
		WithDescription("rewrite hippo files in place as plain text, decoding them with -T (default swap)").
		WithRun(func(cc *cli.Context, args []string) error {
			return decrypt(cfg, cc, args)
		})
}

func TransformsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TransformsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "transforms").
		WithAliases("t").
		WithSynopsis("transforms").
		WithDescription("list available transforms").
		WithRun(func(cc *cli.Context, args []string) error {
			return transforms(cfg, cc, args)
		})
}
