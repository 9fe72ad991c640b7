package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	// PlainFormat is bare parentheses, '(' and ')' only.
	PlainFormat Format = iota
	// LabeledFormat attaches a text label to each delimiter, as in
	// markup open/close tags.
	LabeledFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"p":       PlainFormat,
		"plain":   PlainFormat,
		"l":       LabeledFormat,
		"labeled": LabeledFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case PlainFormat:
		return []byte("plain"), nil
	case LabeledFormat:
		return []byte("labeled"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsLabeled() bool { return f == LabeledFormat }

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{PlainFormat, LabeledFormat}
}
