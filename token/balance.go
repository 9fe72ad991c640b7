package token

import (
	"github.com/signadot/nest-format/go-nest/debug"
	"github.com/signadot/nest-format/go-nest/format"
)

// IsBalanced reports whether toks is balanced: every Close matches a
// preceding still-open Open (with equal label in LabeledFormat) and no
// opens are left at the end.  It short-circuits on the first
// violation and never errors; an empty sequence is balanced.
//
// IsBalanced agrees exactly with parse.Build: it returns true iff
// building toks succeeds.
func IsBalanced(toks []Token, f format.Format) bool {
	if debug.Balance() {
		PrintTokens(toks, "balance")
	}
	if !f.IsLabeled() {
		return isBalancedPlain(toks)
	}
	return isBalancedLabeled(toks)
}

func isBalancedPlain(toks []Token) bool {
	depth := 0
	for i := range toks {
		switch toks[i].Kind {
		case Open:
			depth++
		case Close:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

func isBalancedLabeled(toks []Token) bool {
	// pending open labels, innermost last
	var pending []string
	for i := range toks {
		t := &toks[i]
		switch t.Kind {
		case Open:
			pending = append(pending, t.Label)
		case Close:
			n := len(pending)
			if n == 0 {
				return false
			}
			// exact equality, no folding or normalization
			if pending[n-1] != t.Label {
				return false
			}
			pending = pending[:n-1]
		}
	}
	return len(pending) == 0
}
