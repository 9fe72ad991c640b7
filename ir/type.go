package ir

type Type int

const (
	// EmptyType is a node with no enclosed content.
	EmptyType Type = iota
	// NestedType is one matched open/close pair wrapping a child.
	NestedType
	// ConcatType places two sibling subtrees side by side in
	// document order.
	ConcatType
)

func (t Type) String() string {
	return map[Type]string{
		EmptyType:  "Empty",
		NestedType: "Nested",
		ConcatType: "Concat",
	}[t]
}

// Types returns all node types.
func Types() []Type {
	return []Type{EmptyType, NestedType, ConcatType}
}
