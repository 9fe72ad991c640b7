package token

import (
	"fmt"
)

type Kind int

const (
	Open Kind = iota
	Close
)

func (k Kind) String() string {
	return map[Kind]string{
		Open:  "Open",
		Close: "Close",
	}[k]
}

// Delim returns the delimiter character for this kind.
func (k Kind) Delim() byte {
	if k == Open {
		return '('
	}
	return ')'
}

// Token is one delimiter in document order.  Label is empty in
// PlainFormat; in LabeledFormat it is the (possibly empty) run of
// label bytes bound to the delimiter.  Off is the byte offset of the
// delimiter character in the source text, or -1 for tokens with no
// textual origin.
type Token struct {
	Kind  Kind
	Label string
	Off   int
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q @%d", t.Kind, t.Label, t.Off)
}

func (t *Token) String() string {
	return string(t.Kind.Delim()) + t.Label
}

// Equal compares kind and label.  Offsets are positional metadata and
// do not participate.
func (t *Token) Equal(u *Token) bool {
	return t.Kind == u.Kind && t.Label == u.Label
}

// OpenTok and CloseTok build offset-free tokens, mostly for tests and
// for flattening trees.
func OpenTok(label string) Token {
	return Token{Kind: Open, Label: label, Off: -1}
}

func CloseTok(label string) Token {
	return Token{Kind: Close, Label: label, Off: -1}
}
