package main

import (
	"fmt"
	"io"

	"github.com/signadot/praat-format/encode"
	"github.com/signadot/praat-format/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return viewFiles(cfg, cc, cc.Out, args)
}

func viewFiles(cfg *ViewConfig, cc *cli.Context, w io.Writer, files []string) error {
	opts := cfg.encOpts(w, format.YAMLFormat)
	for i, file := range files {
		obj, err := getObjFile(cc, cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if err := encode.Dump(w, obj, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i < len(files)-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
