package ir

import (
	"strings"
)

// Node is a delimiter tree.  Type is the variant tag; the payload
// fields used depend on it:
//
//   - EmptyType: no payload.
//   - NestedType: Child (never nil), and Label in LabeledFormat.
//   - ConcatType: Left and Right (never nil).
//
// A run of k >= 2 siblings is a right-associated Concat chain of k-1
// nodes with the first sibling outermost-left.
type Node struct {
	Type  Type
	Label string

	Child       *Node
	Left, Right *Node
}

func Empty() *Node {
	return &Node{Type: EmptyType}
}

func Nested(child *Node) *Node {
	return NestedLabel("", child)
}

func NestedLabel(label string, child *Node) *Node {
	if child == nil {
		child = Empty()
	}
	return &Node{Type: NestedType, Label: label, Child: child}
}

func Concat(left, right *Node) *Node {
	return &Node{Type: ConcatType, Left: left, Right: right}
}

// ConcatAll folds kids, in document order, into a right-associated
// Concat chain.  No kids yields Empty, one kid is returned as is.
func ConcatAll(kids []*Node) *Node {
	n := len(kids)
	if n == 0 {
		return Empty()
	}
	res := kids[n-1]
	for i := n - 2; i >= 0; i-- {
		res = Concat(kids[i], res)
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Label = y.Label
	if y.Child != nil {
		dst.Child = y.Child.Clone()
	}
	if y.Left != nil {
		dst.Left = y.Left.Clone()
	}
	if y.Right != nil {
		dst.Right = y.Right.Clone()
	}
	return dst
}

// Equal reports structural equality, labels included.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case EmptyType:
		return true
	case NestedType:
		return a.Label == b.Label && Equal(a.Child, b.Child)
	case ConcatType:
		return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	default:
		return false
	}
}

// Width counts matched delimiter pairs.
func (y *Node) Width() int {
	switch y.Type {
	case NestedType:
		return 1 + y.Child.Width()
	case ConcatType:
		return y.Left.Width() + y.Right.Width()
	default:
		return 0
	}
}

// Depth is the maximum nesting level, 0 for Empty.
func (y *Node) Depth() int {
	switch y.Type {
	case NestedType:
		return 1 + y.Child.Depth()
	case ConcatType:
		return max(y.Left.Depth(), y.Right.Depth())
	default:
		return 0
	}
}

func (y *Node) String() string {
	var sb strings.Builder
	y.string(&sb)
	return sb.String()
}

func (y *Node) string(sb *strings.Builder) {
	switch y.Type {
	case EmptyType:
		sb.WriteString("Empty")
	case NestedType:
		sb.WriteString("Nested(")
		if y.Label != "" {
			sb.WriteString(y.Label)
			sb.WriteString(", ")
		}
		y.Child.string(sb)
		sb.WriteByte(')')
	case ConcatType:
		sb.WriteString("Concat(")
		y.Left.string(sb)
		sb.WriteString(", ")
		y.Right.string(sb)
		sb.WriteByte(')')
	}
}
