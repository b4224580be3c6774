package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/hippo-format/hippo/encode"
	"github.com/signadot/hippo-format/hippo/format"
	"github.com/signadot/hippo-format/hippo/hippofile"
	"github.com/signadot/hippo-format/hippo/transform"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

const transformsEnv = "HIPPO_TRANSFORMS"

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Concat bool `cli:"name=concat desc='combine transforms the legacy way: concatenate on encode, keep the last result on decode'"`

	Format     format.Format
	Transforms []transform.Transform

	Out      string
	CloseOut func() error

	FS billy.Filesystem

	Main *cli.Command
}

func newMainConfig() (*MainConfig, error) {
	cfg := &MainConfig{FS: osfs.New("/")}
	if v := os.Getenv(transformsEnv); v != "" {
		ts, err := transform.ParseList(v)
		if err != nil {
			return nil, fmt.Errorf("$%s: %w", transformsEnv, err)
		}
		cfg.Transforms = ts
	}
	return cfg, nil
}

func (cfg *MainConfig) fmtFunc(_ *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Format = f
	return f, nil
}

func (cfg *MainConfig) transformsFunc(_ *cli.Context, v string) (any, error) {
	ts, err := transform.ParseList(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Transforms = ts
	return v, nil
}

func (cfg *MainConfig) mode() transform.Mode {
	if cfg.Concat {
		return transform.Concat
	}
	return transform.Chain
}

// fileOpts configures reading (and re-encrypting) with the -T pipeline.
func (cfg *MainConfig) fileOpts() []hippofile.Option {
	return []hippofile.Option{
		hippofile.WithFormat(cfg.Format),
		hippofile.WithTransforms(cfg.Transforms...),
		hippofile.WithMode(cfg.mode()),
	}
}

// plainOpts configures reading files with no transforms.
func (cfg *MainConfig) plainOpts() []hippofile.Option {
	return []hippofile.Option{
		hippofile.WithFormat(cfg.Format),
		hippofile.WithMode(cfg.mode()),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.Format),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MatchConfig struct {
	*MainConfig

	Paths bool `cli:"name=p aliases=paths desc='only print the paths of matching nodes'"`

	Match *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg is the patch itself rather than a file'"`

	Patch *cli.Command
}

type DumpConfig struct {
	*MainConfig

	YAML   bool   `cli:"name=y aliases=yaml desc='dump yaml instead of json'"`
	Indent string `cli:"name=indent desc='json indent'"`

	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig

	YAML bool `cli:"name=y aliases=yaml desc='load yaml instead of json'"`

	Load *cli.Command
}

type EncryptConfig struct {
	*MainConfig

	Encrypt *cli.Command
}

type DecryptConfig struct {
	*MainConfig

	Decrypt *cli.Command
}

type TransformsConfig struct {
	*MainConfig

	List *cli.Command
}
