package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yaml/y, json/j, praat/p",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "pt").
		WithSynopsis("pt [opts] command [opts]").
		WithDescription("pt reads, queries and edits Praat Formant, Matrix and TextGrid objects.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ptMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			AtCommand(cfg),
			AvgCommand(cfg),
			ExtremeCommand(cfg, false),
			ExtremeCommand(cfg, true),
			FilterCommand(cfg),
			TiersCommand(cfg),
			IntervalCommand(cfg),
			SliceCommand(cfg),
			EraseCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg),
			AnalyzeCommand(cfg),
			ReportCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view praat objects as yaml or json").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func AtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.At, "at").
		WithSynopsis("at [-i] <time> <file>").
		WithDescription("show the frame nearest to a time").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return at(cfg, cc, args)
		})
}

func AvgCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AvgConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Avg, "avg").
		WithAliases("a").
		WithSynopsis("avg <start> <end> <field> <file>").
		WithDescription(avgDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return avg(cfg, cc, args)
		})
}

const avgDescription = `average a field over the frames in [start, end].

The field is a frame field such as 'freq' or 'intensity', or a formant
field written 'f2.frequency'. A frame with an undefined value in the
range is an error.`

func ExtremeCommand(mainCfg *MainConfig, min bool) *cli.Command {
	cfg := &ExtremeConfig{MainConfig: mainCfg, Min: min}
	name, desc := "max", "show the frame with the largest field value in (start, end)"
	if min {
		name, desc = "min", "show the frame with the smallest field value in (start, end)"
	}
	return cli.NewCommandAt(&cfg.Extreme, name).
		WithSynopsis(name + " <start> <end> <field> <file>").
		WithDescription(desc).
		WithRun(func(cc *cli.Context, args []string) error {
			return extreme(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter [-c] <expr> <file>").
		WithDescription(filterDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

const filterDescription = `show the frames for which a boolean expression holds.

The expression sees 'time', every frame field by name and the formants
as f1, f2, ... with their fields, for example

  pt filter 'f1.frequency > 500 && !isnan(f2.bandwidth)' a.Formant`

func TiersCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TiersConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tiers, "tiers").
		WithAliases("t").
		WithSynopsis("tiers [-a] <file> [names]").
		WithDescription("list the tiers of a TextGrid, or show the named ones").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tiers(cfg, cc, args)
		})
}

func IntervalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &IntervalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Interval, "interval").
		WithAliases("i").
		WithSynopsis("interval [-cs] <tier> <time> <file>").
		WithDescription("show the interval of a tier containing a time").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return interval(cfg, cc, args)
		})
}

func SliceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SliceConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Slice, "slice").
		WithAliases("s").
		WithSynopsis("slice <start> <end> <file>").
		WithDescription("cut a TextGrid to [start, end], shifted to start at 0").
		WithRun(func(cc *cli.Context, args []string) error {
			return slice(cfg, cc, args)
		})
}

func EraseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EraseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Erase, "erase").
		WithAliases("e").
		WithSynopsis("erase [-skip names] <start> <end> <file>").
		WithDescription("blank the labels of a TextGrid in [start, end]").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return erase(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-f] <patch> <file>").
		WithDescription(patchDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

const patchDescription = `patch a TextGrid with a JSON patch or JSON merge patch.

A patch which is a JSON array is applied as an RFC 6902 patch, anything
else as an RFC 7386 merge patch, against the JSON form of the TextGrid
(see 'pt -j view').`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-r] a b").
		WithDescription("diff the tiers of two TextGrids, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func AnalyzeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AnalyzeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Analyze, "analyze").
		WithAliases("an").
		WithSynopsis("analyze [-params file] [-keys k,...] [-pitch] [-grid] <wav>").
		WithDescription(analyzeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return analyze(cfg, cc, args)
		})
}

const analyzeDescription = `run praat on a wav file to produce Formant objects.

Each parameter set key produces <wav base>-<key>.Formant next to the wav
file. Parameter sets are read from a yaml file mapping keys to

  time_step: 0
  formant_max: 5
  hertz_max: 5000
  window_length: 0.025
  pre_emphasis: 50

with missing fields taking these defaults. Without -params only the
'default' set is made.

The praat executable is taken from -praat, then $PRAAT_PATH, then the
platform install location.`

func ReportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Report, "report").
		WithAliases("r").
		WithSynopsis("report [-keep] <start> <end> <wav>").
		WithDescription("run a praat voice report on part of a wav file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return report(cfg, cc, args)
		})
}
