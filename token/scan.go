package token

import (
	"io"
	"strings"

	"github.com/signadot/nest-format/go-nest/debug"
	"github.com/signadot/nest-format/go-nest/format"
)

func isDelim(b byte) bool {
	return b == '(' || b == ')'
}

// Scan converts src into a token sequence, appending to dst.
//
// In PlainFormat every byte must be '(' or ')'.  In LabeledFormat a
// label is the maximal run of bytes that are neither '(' nor ')' and
// binds to the delimiter byte immediately preceding it, so the
// document must start with a delimiter.
func Scan(dst []Token, src []byte, f format.Format) ([]Token, error) {
	if !f.IsLabeled() {
		for i, b := range src {
			if !isDelim(b) {
				return nil, NewEncodingErr(b, i)
			}
			kind := Open
			if b == ')' {
				kind = Close
			}
			dst = append(dst, Token{Kind: kind, Off: i})
		}
		if debug.Scan() {
			PrintTokens(dst, "scan plain")
		}
		return dst, nil
	}
	i := 0
	n := len(src)
	for i < n {
		b := src[i]
		if !isDelim(b) {
			return nil, NewEncodingErr(b, i)
		}
		kind := Open
		if b == ')' {
			kind = Close
		}
		off := i
		i++
		j := i
		for j < n && !isDelim(src[j]) {
			j++
		}
		dst = append(dst, Token{
			Kind:  kind,
			Label: string(src[i:j]),
			Off:   off,
		})
		i = j
	}
	if debug.Scan() {
		PrintTokens(dst, "scan labeled")
	}
	return dst, nil
}

// ScanString is Scan on a string.
func ScanString(dst []Token, src string, f format.Format) ([]Token, error) {
	return Scan(dst, []byte(src), f)
}

// Render serializes toks back into text, appending to dst.  It is the
// exact inverse of Scan: each token becomes its delimiter byte
// followed by its label.  Render never fails.
func Render(dst []byte, toks []Token) []byte {
	for i := range toks {
		t := &toks[i]
		dst = append(dst, t.Kind.Delim())
		dst = append(dst, t.Label...)
	}
	return dst
}

// RenderString is Render into a fresh string.
func RenderString(toks []Token) string {
	var sb strings.Builder
	for i := range toks {
		t := &toks[i]
		sb.WriteByte(t.Kind.Delim())
		sb.WriteString(t.Label)
	}
	return sb.String()
}

// Write renders toks to w.
func Write(w io.Writer, toks []Token) error {
	_, err := w.Write(Render(nil, toks))
	return err
}
