package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	praat "github.com/signadot/praat-format"
	"github.com/signadot/praat-format/ir"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, cfg *MainConfig, path string) (ir.Object, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	obj, err := praat.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return obj, nil
}

func getFrameSource(cc *cli.Context, cfg *MainConfig, path string) (ir.FrameSource, error) {
	obj, err := getObjFile(cc, cfg, path)
	if err != nil {
		return nil, err
	}
	src, ok := obj.(ir.FrameSource)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds a %s, not frames", cli.ErrUsage, path, obj.Class())
	}
	return src, nil
}

func getTextGrid(cc *cli.Context, cfg *MainConfig, path string) (*ir.TextGrid, error) {
	obj, err := getObjFile(cc, cfg, path)
	if err != nil {
		return nil, err
	}
	tg, ok := obj.(*ir.TextGrid)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds a %s, not a TextGrid", cli.ErrUsage, path, obj.Class())
	}
	return tg, nil
}

func floatArgs(args ...string) ([]float64, error) {
	res := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", cli.ErrUsage, a)
		}
		res[i] = f
	}
	return res, nil
}

// fieldPath splits "f2.frequency" into its path elements.
func fieldPath(s string) []string {
	return strings.Split(s, ".")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	res := strings.Split(s, ",")
	for i := range res {
		res[i] = strings.TrimSpace(res[i])
	}
	return res
}
