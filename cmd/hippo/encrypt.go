package main

import (
	"fmt"

	"github.com/signadot/hippo-format/hippo/hippofile"
	"github.com/signadot/hippo-format/hippo/transform"

	"github.com/scott-cotton/cli"
)

func encrypt(cfg *EncryptConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encrypt.Parse(cc, args)
	if err != nil {
		cfg.Encrypt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: encrypt requires at least one file", cli.ErrUsage)
	}
	ts := cfg.transformsOrSwap()
	for _, arg := range args {
		f, err := hippofile.Open(cfg.FS, cfg.fsPath(arg), cfg.plainOpts()...)
		if err != nil {
			return err
		}
		if err := f.Encrypt(ts...); err != nil {
			return err
		}
		theLog.Info("encrypted", "file", arg, "transforms", transform.NewPipeline(ts...).String(), "mode", cfg.mode())
	}
	return nil
}

func decrypt(cfg *DecryptConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decrypt.Parse(cc, args)
	if err != nil {
		cfg.Decrypt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: decrypt requires at least one file", cli.ErrUsage)
	}
	ts := cfg.transformsOrSwap()
	opts := append(cfg.plainOpts(), hippofile.WithTransforms(ts...))
	for _, arg := range args {
		f, err := hippofile.Open(cfg.FS, cfg.fsPath(arg), opts...)
		if err != nil {
			return err
		}
		if err := f.Save(); err != nil {
			return err
		}
		theLog.Info("decrypted", "file", arg, "transforms", transform.NewPipeline(ts...).String(), "mode", cfg.mode())
	}
	return nil
}

func (cfg *MainConfig) transformsOrSwap() []transform.Transform {
	if len(cfg.Transforms) == 0 {
		return []transform.Transform{transform.Swap()}
	}
	return cfg.Transforms
}
