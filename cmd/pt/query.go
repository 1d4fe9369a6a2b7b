package main

import (
	"fmt"

	"github.com/signadot/praat-format/encode"
	"github.com/signadot/praat-format/format"
	"github.com/signadot/praat-format/query"

	"github.com/scott-cotton/cli"
)

func at(cfg *AtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.At.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: at requires <time> <file>, got %v", cli.ErrUsage, args)
	}
	ts, err := floatArgs(args[0])
	if err != nil {
		return err
	}
	src, err := getFrameSource(cc, cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	fr, err := query.Nearest(src, ts[0], cfg.IgnoreError)
	if err != nil {
		return err
	}
	return encode.Dump(cc.Out, fr, cfg.encOpts(cc.Out, format.YAMLFormat)...)
}

func avg(cfg *AvgConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Avg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: avg requires <start> <end> <field> <file>, got %v", cli.ErrUsage, args)
	}
	bounds, err := floatArgs(args[0], args[1])
	if err != nil {
		return err
	}
	src, err := getFrameSource(cc, cfg.MainConfig, args[3])
	if err != nil {
		return err
	}
	v, err := query.Average(src, bounds[0], bounds[1], fieldPath(args[2])...)
	if err != nil {
		return err
	}
	return encode.Dump(cc.Out, v, cfg.encOpts(cc.Out, format.YAMLFormat)...)
}

func extreme(cfg *ExtremeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Extreme.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: requires <start> <end> <field> <file>, got %v", cli.ErrUsage, args)
	}
	bounds, err := floatArgs(args[0], args[1])
	if err != nil {
		return err
	}
	src, err := getFrameSource(cc, cfg.MainConfig, args[3])
	if err != nil {
		return err
	}
	f := query.Max
	if cfg.Min {
		f = query.Min
	}
	fr, err := f(src, bounds[0], bounds[1], fieldPath(args[2])...)
	if err != nil {
		return err
	}
	if fr == nil {
		theLog.Info("no frames", "start", bounds[0], "end", bounds[1])
		return cli.ExitCodeErr(1)
	}
	return encode.Dump(cc.Out, fr, cfg.encOpts(cc.Out, format.YAMLFormat)...)
}

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: filter requires <expr> <file>, got %v", cli.ErrUsage, args)
	}
	src, err := getFrameSource(cc, cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	frs, err := query.Filter(src, args[0])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out, format.YAMLFormat)
	if cfg.Count {
		return encode.Dump(cc.Out, float64(len(frs)), opts...)
	}
	return encode.Dump(cc.Out, frs, opts...)
}
