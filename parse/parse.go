package parse

import (
	"fmt"
	"slices"

	"github.com/signadot/nest-format/go-nest/debug"
	"github.com/signadot/nest-format/go-nest/ir"
	"github.com/signadot/nest-format/go-nest/token"
)

// Parse scans d and builds its tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts...)
	toks, err := token.Scan(nil, d, pOpts.format)
	if err != nil {
		return nil, err
	}
	return build(toks, pOpts)
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// Build turns a token sequence into a tree in a single forward pass
// over an explicit working stack; nesting depth costs heap, not call
// stack.  Build succeeds iff token.IsBalanced accepts toks.
func Build(toks []token.Token, opts ...ParseOption) (*ir.Node, error) {
	return build(toks, newParseOpts(opts...))
}

type itemKind int

const (
	pendingItem itemKind = iota
	completedItem
)

// item is one working-stack slot: an unmatched open waiting for its
// close, or a finished subtree.
type item struct {
	kind  itemKind
	label string
	off   int
	node  *ir.Node
}

func build(toks []token.Token, pOpts *parseOpts) (*ir.Node, error) {
	if debug.Parse() {
		token.PrintTokens(toks, "build")
	}
	labeled := pOpts.format.IsLabeled()
	stack := make([]item, 0, 16)
	for i := range toks {
		t := &toks[i]
		switch t.Kind {
		case token.Open:
			stack = append(stack, item{
				kind:  pendingItem,
				label: t.Label,
				off:   t.Off,
			})
		case token.Close:
			// collect finished siblings, nearest first
			var kids []*ir.Node
			for {
				n := len(stack)
				if n == 0 {
					return nil, &UnmatchedCloseErr{Label: t.Label, Off: t.Off}
				}
				top := &stack[n-1]
				if top.kind == completedItem {
					kids = append(kids, top.node)
					stack = stack[:n-1]
					continue
				}
				if labeled && top.label != t.Label {
					return nil, &LabelMismatchErr{
						Expected: top.label,
						Found:    t.Label,
						Off:      t.Off,
					}
				}
				stack = stack[:n-1]
				break
			}
			slices.Reverse(kids)
			stack = append(stack, item{
				kind: completedItem,
				off:  t.Off,
				node: ir.NestedLabel(t.Label, ir.ConcatAll(kids)),
			})
			// eager merge keeps at most one completed item above
			// any open marker
			for len(stack) >= 2 {
				n := len(stack)
				upper, lower := &stack[n-1], &stack[n-2]
				if upper.kind != completedItem || lower.kind != completedItem {
					break
				}
				merged := item{
					kind: completedItem,
					off:  lower.off,
					node: ir.Concat(lower.node, upper.node),
				}
				stack = stack[:n-2]
				stack = append(stack, merged)
			}
		}
	}
	switch len(stack) {
	case 0:
		return ir.Empty(), nil
	case 1:
		if stack[0].kind == completedItem {
			return stack[0].node, nil
		}
		return nil, &IncompleteErr{Opens: 1}
	default:
		opens := 0
		for i := range stack {
			if stack[i].kind == pendingItem {
				opens++
			}
		}
		if opens == 0 {
			// unreachable: the merge loop leaves no two adjacent
			// completed items
			return nil, fmt.Errorf("%w: %d unmerged subtrees", errInternal, len(stack))
		}
		return nil, &IncompleteErr{Opens: opens}
	}
}
