package main

import (
	"fmt"
	"io"
	"os"

	praat "github.com/signadot/praat-format"
	"github.com/signadot/praat-format/encode"
	"github.com/signadot/praat-format/format"
	"github.com/signadot/praat-format/ir"
	"github.com/signadot/praat-format/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='fail on integrity warnings'"`
	Matrix bool `cli:"name=matrix desc='read Matrix objects as matrices, not pitch'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`
	P bool `cli:"name=p aliases=praat desc='output praat text (TextGrids only)'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []praat.ParseOpt {
	popts := []parse.ParseOption{
		parse.ParseWarnings(func(w ir.IntegrityWarning) {
			theLog.Warn("integrity", "warning", w.Error())
		}),
	}
	if cfg.Strict {
		popts = append(popts, parse.ParseStrict())
	}
	res := []praat.ParseOpt{praat.WithParseOptions(popts...)}
	if cfg.Matrix {
		res = append(res, praat.AsMatrix())
	}
	return res
}

// outFormat returns the selected output format, or def if none was given.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	fmat := def
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.P:
		fmat = format.PraatFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer, def format.Format) []encode.EncodeOption {
	fmat := cfg.outFormat(def)
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if fmat == format.PraatFormat {
		return res
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
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type AtConfig struct {
	*MainConfig
	IgnoreError bool `cli:"name=i desc='return an undefined frame instead of failing out of range'"`
	At          *cli.Command
}

type AvgConfig struct {
	*MainConfig
	Avg *cli.Command
}

type ExtremeConfig struct {
	*MainConfig
	Min     bool
	Extreme *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Count  bool `cli:"name=c desc='print only the number of matching frames'"`
	Filter *cli.Command
}

type TiersConfig struct {
	*MainConfig
	All   bool `cli:"name=a desc='show whole tiers, not only names'"`
	Tiers *cli.Command
}

type IntervalConfig struct {
	*MainConfig
	CaseSensitive bool `cli:"name=cs desc='match tier names case sensitively'"`
	Interval      *cli.Command
}

type SliceConfig struct {
	*MainConfig
	Slice *cli.Command
}

type EraseConfig struct {
	*MainConfig
	Skip  string `cli:"name=skip desc='comma separated tier names to leave untouched'"`
	Erase *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File  bool `cli:"name=f desc='patch arg as file'"`
	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type AnalyzeConfig struct {
	*MainConfig
	Params  string `cli:"name=params desc='yaml file of formant parameter sets'"`
	Keys    string `cli:"name=keys desc='comma separated parameter set keys'"`
	Pitch   bool   `cli:"name=pitch desc='also extract pitch'"`
	Grid    bool   `cli:"name=grid desc='also create a TextGrid'"`
	Praat   string `cli:"name=praat desc='path to the praat executable'"`
	Analyze *cli.Command
}

type ReportConfig struct {
	*MainConfig
	Praat  string `cli:"name=praat desc='path to the praat executable'"`
	Keep   bool   `cli:"name=keep desc='keep the report file'"`
	Report *cli.Command
}
