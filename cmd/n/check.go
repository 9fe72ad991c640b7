package main

import (
	"fmt"

	"github.com/signadot/nest-format/go-nest/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	fmat := cfg.format()
	bad := 0
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		toks, err := token.Scan(nil, d, fmat)
		if err != nil {
			bad++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
			}
			continue
		}
		if !token.IsBalanced(toks, fmat) {
			bad++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: imbalanced\n", arg)
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", arg)
		}
	}
	if bad != 0 {
		theLog.Error("check failed", "files", len(args), "bad", bad)
		return cli.ExitCodeErr(1)
	}
	return nil
}
