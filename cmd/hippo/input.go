package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/signadot/hippo-format/hippo/hippofile"
	"github.com/signadot/hippo-format/hippo/ir"

	"github.com/go-git/go-billy/v5/util"
	"github.com/scott-cotton/cli"
)

// fsPath maps a command line path to cfg.FS, which is rooted at "/".
func (cfg *MainConfig) fsPath(arg string) string {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return arg
	}
	return abs
}

// readInput returns the contents of arg, or of the command input for "-".
func (cfg *MainConfig) readInput(cc *cli.Context, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := util.ReadFile(cfg.FS, cfg.fsPath(arg))
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", arg, err)
	}
	return d, nil
}

func (cfg *MainConfig) readDoc(cc *cli.Context, arg string) (*ir.Document, error) {
	d, err := cfg.readInput(cc, arg)
	if err != nil {
		return nil, err
	}
	doc, err := hippofile.Decode(d, cfg.fileOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}

// eachDoc decodes every file in args, or the command input when there are
// none, and hands each to f in order.
func (cfg *MainConfig) eachDoc(cc *cli.Context, args []string, f func(arg string, doc *ir.Document) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readDoc(cc, arg)
		if err != nil {
			return err
		}
		if err := f(arg, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}
