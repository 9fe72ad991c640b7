package encode

import (
	"github.com/signadot/nest-format/go-nest/ir"
	"github.com/signadot/nest-format/go-nest/token"
)

// Flatten linearizes node into its token sequence, appending to dst.
// It is the inverse of parse.Build: for any balanced token sequence t,
// Flatten(nil, Build(t)) == t.  Flatten never fails.
func Flatten(dst []token.Token, node *ir.Node) []token.Token {
	switch node.Type {
	case ir.EmptyType:
		return dst
	case ir.NestedType:
		dst = append(dst, token.OpenTok(node.Label))
		dst = Flatten(dst, node.Child)
		return append(dst, token.CloseTok(node.Label))
	case ir.ConcatType:
		dst = Flatten(dst, node.Left)
		return Flatten(dst, node.Right)
	default:
		return dst
	}
}
