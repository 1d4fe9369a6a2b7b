package main

import (
	"fmt"

	"github.com/signadot/praat-format/libdiff"

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
	a, err := getTextGrid(cc, cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := getTextGrid(cc, cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	d := libdiff.TextGrids(a, b)
	if d == nil {
		return nil
	}
	if err := d.Write(cc.Out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
