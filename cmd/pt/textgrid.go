package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/praat-format/edit"
	"github.com/signadot/praat-format/encode"
	"github.com/signadot/praat-format/format"
	"github.com/signadot/praat-format/ir"

	"github.com/scott-cotton/cli"
)

func tiers(cfg *TiersConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tiers.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: tiers requires <file>", cli.ErrUsage)
	}
	tg, err := getTextGrid(cc, cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out, format.YAMLFormat)
	if len(args) > 1 {
		ts, err := edit.LookupTier(tg, args[1:], edit.AllMatches())
		if err != nil {
			return err
		}
		return encode.Dump(cc.Out, ts, opts...)
	}
	if cfg.All {
		return encode.Dump(cc.Out, tg.Tiers, opts...)
	}
	return encode.Dump(cc.Out, tg.TierNames(), opts...)
}

func interval(cfg *IntervalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Interval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: interval requires <tier> <time> <file>, got %v", cli.ErrUsage, args)
	}
	ts, err := floatArgs(args[1])
	if err != nil {
		return err
	}
	tg, err := getTextGrid(cc, cfg.MainConfig, args[2])
	if err != nil {
		return err
	}
	var lopts []edit.LookupOption
	if cfg.CaseSensitive {
		lopts = append(lopts, edit.CaseSensitive())
	}
	tier, err := edit.Tier(tg, args[0], lopts...)
	if err != nil {
		return err
	}
	iv, err := edit.LookupInterval(ts[0], tier)
	if err != nil {
		return err
	}
	return encode.Dump(cc.Out, iv, cfg.encOpts(cc.Out, format.YAMLFormat)...)
}

func slice(cfg *SliceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Slice.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: slice requires <start> <end> <file>, got %v", cli.ErrUsage, args)
	}
	bounds, err := floatArgs(args[0], args[1])
	if err != nil {
		return err
	}
	tg, err := getTextGrid(cc, cfg.MainConfig, args[2])
	if err != nil {
		return err
	}
	res, err := edit.Slice(tg, bounds[0], bounds[1])
	if err != nil {
		return err
	}
	return writeTextGrid(cfg.MainConfig, cc.Out, res)
}

func erase(cfg *EraseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Erase.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: erase requires <start> <end> <file>, got %v", cli.ErrUsage, args)
	}
	bounds, err := floatArgs(args[0], args[1])
	if err != nil {
		return err
	}
	tg, err := getTextGrid(cc, cfg.MainConfig, args[2])
	if err != nil {
		return err
	}
	res, err := edit.Erase(tg, bounds[0], bounds[1], splitList(cfg.Skip)...)
	if err != nil {
		return err
	}
	return writeTextGrid(cfg.MainConfig, cc.Out, res)
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires <patch> <file>, got %v", cli.ErrUsage, args)
	}
	p := []byte(args[0])
	if cfg.File {
		p, err = readPatch(cc, args[0])
		if err != nil {
			return err
		}
	}
	tg, err := getTextGrid(cc, cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	res, err := edit.Patch(tg, p)
	if err != nil {
		return err
	}
	return writeTextGrid(cfg.MainConfig, cc.Out, res)
}

func readPatch(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	return os.ReadFile(path)
}

// writeTextGrid writes tg as Praat text unless another output format was
// asked for.
func writeTextGrid(cfg *MainConfig, w io.Writer, tg *ir.TextGrid) error {
	for _, t := range tg.Tiers {
		if t.Kind == ir.Points && cfg.outFormat(format.PraatFormat) == format.PraatFormat {
			theLog.Warn("point tier not written", "tier", t.Name)
		}
	}
	return encode.Dump(w, tg, cfg.encOpts(w, format.PraatFormat)...)
}
