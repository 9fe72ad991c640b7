package main

import (
	"fmt"
	"os"

	"github.com/signadot/nest-format/go-nest/encode"
	"github.com/signadot/nest-format/go-nest/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	P     bool `cli:"name=p aliases=plain desc='plain () documents'"`
	L     bool `cli:"name=l aliases=labeled desc='labeled delimiter documents'"`
	Color bool `cli:"name=color desc='render with color'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	fmat := format.PlainFormat
	if cfg.L {
		fmat = format.LabeledFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.Out != "" && cfg.Out != "-" {
		return res
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='no per-file output, status only'"`
	Check *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Stats bool `cli:"name=stats desc='show pair count and max depth'"`
	Tree  *cli.Command
}

type RenderConfig struct {
	*MainConfig
	Render *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}
