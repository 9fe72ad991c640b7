package main

import (
	"fmt"

	"github.com/signadot/nest-format/go-nest/encode"
	"github.com/signadot/nest-format/go-nest/parse"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		cfg.Render.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	fmat := cfg.format()
	encOpts := cfg.encOpts()
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d, parse.ParseFormat(fmat))
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		if err := encode.Encode(node, cc.Out, encOpts...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
