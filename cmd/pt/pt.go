package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func ptMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		if cfg.CloseOut == nil {
			return
		}
		if cerr := cfg.CloseOut(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", cfg.Out, cerr)
		}
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.checkFormat(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q is not a pt command", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// checkFormat rejects more than one output format selector.
func (cfg *MainConfig) checkFormat() error {
	n := count(cfg.J, cfg.Y, cfg.P)
	if cfg.OutFormat != nil {
		n++
	}
	if n > 1 {
		return fmt.Errorf("%w: give one of -j, -y, -p or -O", cli.ErrUsage)
	}
	return nil
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

// outOpt sends command output to the file a, "-" meaning stdout.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	if a == "-" {
		return a, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, fmt.Errorf("%w: output: %w", cli.ErrUsage, err)
	}
	cfg.Out = a
	cc.Out = f
	cfg.CloseOut = f.Close
	return a, nil
}
