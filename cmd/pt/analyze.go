package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/signadot/praat-format/encode"
	"github.com/signadot/praat-format/format"
	"github.com/signadot/praat-format/parse"
	"github.com/signadot/praat-format/system/runner"

	"github.com/scott-cotton/cli"
)

func newRunner(praatPath string) *runner.Runner {
	opts := []runner.Option{runner.WithLogger(theLog)}
	if praatPath != "" {
		opts = append(opts, runner.WithResolver(runner.StaticPath(praatPath)))
	}
	return runner.New(opts...)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func analyze(cfg *AnalyzeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Analyze.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: analyze requires <wav>, got %v", cli.ErrUsage, args)
	}
	wavPath := args[0]
	ps := runner.ParamSet{}
	if cfg.Params != "" {
		f, err := os.Open(cfg.Params)
		if err != nil {
			return err
		}
		ps, err = runner.LoadParamSet(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.Params, err)
		}
	}
	keys := splitList(cfg.Keys)
	if len(keys) == 0 && cfg.Params == "" {
		keys = []string{runner.DefaultKey}
	}
	ctx, cancel := signalContext()
	defer cancel()

	r := newRunner(cfg.Praat)
	written, err := r.MakeFormants(ctx, wavPath, ps, keys...)
	if err != nil {
		return err
	}
	if cfg.Pitch {
		out, err := r.Pitch(ctx, wavPath, "", runner.DefaultPitchParams())
		if err != nil {
			return err
		}
		written = append(written, out)
	}
	if cfg.Grid {
		out, err := r.TextGrid(ctx, wavPath, "")
		if err != nil {
			return err
		}
		written = append(written, out)
	}
	return encode.Dump(cc.Out, written, cfg.encOpts(cc.Out, format.YAMLFormat)...)
}

func report(cfg *ReportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Report.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: report requires <start> <end> <wav>, got %v", cli.ErrUsage, args)
	}
	bounds, err := floatArgs(args[0], args[1])
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	r := newRunner(cfg.Praat)
	out, err := r.VoiceReport(ctx, args[2], "", bounds[0], bounds[1], runner.DefaultPitchParams())
	if err != nil {
		return err
	}
	if !cfg.Keep {
		defer os.Remove(out)
	}
	f, err := os.Open(out)
	if err != nil {
		return err
	}
	defer f.Close()
	vr, err := parse.VoiceReport(f)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", out, err)
	}
	return encode.Dump(cc.Out, vr, cfg.encOpts(cc.Out, format.YAMLFormat)...)
}
