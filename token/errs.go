package token

import (
	"errors"
	"fmt"
)

var (
	ErrEncoding = errors.New("bad encoding")
)

// EncodingErr reports a byte that cannot appear where it does: any
// non-delimiter byte in PlainFormat, or a leading non-delimiter byte
// in LabeledFormat.
type EncodingErr struct {
	Byte byte
	Off  int
}

func (e *EncodingErr) Unwrap() error {
	return ErrEncoding
}

func (e *EncodingErr) Error() string {
	return fmt.Sprintf("%s: %q at offset %d", ErrEncoding.Error(), e.Byte, e.Off)
}

func NewEncodingErr(b byte, off int) *EncodingErr {
	return &EncodingErr{Byte: b, Off: off}
}
