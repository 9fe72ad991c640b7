package encode

import (
	"io"

	"github.com/signadot/nest-format/go-nest/debug"
	"github.com/signadot/nest-format/go-nest/ir"
	"github.com/signadot/nest-format/go-nest/token"
)

type EncState struct {
	colors *Colors
}

// Encode flattens node and writes its text form to w.  A Nested node
// with label l renders as "(" + l + child + ")" + l: the label is
// repeated after both delimiter characters, and that duplication is
// load-bearing for bit-exact round trips.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	toks := Flatten(nil, node)
	if debug.Encode() {
		token.PrintTokens(toks, "encode")
	}
	if es.colors == nil {
		return token.Write(w, toks)
	}
	return writeColored(w, toks, es.colors)
}

func writeColored(w io.Writer, toks []token.Token, colors *Colors) error {
	depth := 0
	for i := range toks {
		t := &toks[i]
		var d int
		if t.Kind == token.Open {
			d = depth
			depth++
		} else {
			depth--
			d = depth
		}
		s := colors.Delim(d, string(t.Kind.Delim()))
		if t.Label != "" {
			s += colors.Label(t.Label)
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
