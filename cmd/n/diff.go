package main

import (
	"fmt"

	"github.com/signadot/nest-format/go-nest/encode"
	"github.com/signadot/nest-format/go-nest/parse"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diff parses both documents and diffs their canonical renderings, so
// that only structural differences show up, not incidental byte noise
// rejected by the parser.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	fmat := cfg.format()
	docs := make([]string, 2)
	for i, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d, parse.ParseFormat(fmat))
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		docs[i] = encode.MustString(node)
	}
	if docs[0] == docs[1] {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(docs[0], docs[1], false)
	fmt.Fprintln(cc.Out, diffCfg.DiffPrettyText(diffs))
	return cli.ExitCodeErr(1)
}
