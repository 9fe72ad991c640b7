package parse

import (
	"github.com/signadot/nest-format/go-nest/format"
)

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func newParseOpts(opts ...ParseOption) *parseOpts {
	pOpts := &parseOpts{format: format.PlainFormat}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

// ParseFormat selects the delimiter dialect; the default is
// PlainFormat.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
