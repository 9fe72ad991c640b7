package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/nest-format/go-nest/ir"
	"github.com/signadot/nest-format/go-nest/parse"

	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	fmat := cfg.format()
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d, parse.ParseFormat(fmat))
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "%s:\n", arg)
		}
		printNode(cc.Out, node, 0)
		if cfg.Stats {
			fmt.Fprintf(cc.Out, "pairs=%d depth=%d\n", node.Width(), node.Depth())
		}
	}
	return nil
}

func printNode(w io.Writer, y *ir.Node, depth int) {
	switch y.Type {
	case ir.EmptyType:
	case ir.ConcatType:
		printNode(w, y.Left, depth)
		printNode(w, y.Right, depth)
	case ir.NestedType:
		name := y.Label
		if name == "" {
			name = "()"
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), name)
		printNode(w, y.Child, depth+1)
	}
}
