package encode

import (
	"github.com/fatih/color"
)

// Colors colours rendered delimiters and labels.  Delimiter colour
// cycles with nesting depth; labels take a single colour.
type Colors struct {
	LabelFunc  func(string, ...any) string
	DelimFuncs []func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		LabelFunc: color.RGB(196, 96, 16).SprintfFunc(),
		DelimFuncs: []func(string, ...any) string{
			color.CyanString,
			color.MagentaString,
			color.YellowString,
			color.RGB(128, 216, 236).SprintfFunc(),
			color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func (c *Colors) Delim(depth int, s string) string {
	if len(c.DelimFuncs) == 0 {
		return s
	}
	if depth < 0 {
		depth = 0
	}
	return c.DelimFuncs[depth%len(c.DelimFuncs)](s)
}

func (c *Colors) Label(s string) string {
	if c.LabelFunc == nil {
		return s
	}
	return c.LabelFunc(s)
}
