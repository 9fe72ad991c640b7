package encode

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	"github.com/signadot/nest-format/go-nest/ir"
	"github.com/signadot/nest-format/go-nest/token"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want []token.Token
	}{
		{
			name: "empty",
			node: ir.Empty(),
			want: nil,
		},
		{
			name: "single pair",
			node: ir.Nested(ir.Empty()),
			want: []token.Token{token.OpenTok(""), token.CloseTok("")},
		},
		{
			name: "labeled pair",
			node: ir.NestedLabel("h1", ir.Empty()),
			want: []token.Token{token.OpenTok("h1"), token.CloseTok("h1")},
		},
		{
			name: "concat",
			node: ir.Concat(
				ir.NestedLabel("a", ir.Empty()),
				ir.NestedLabel("b", ir.Empty())),
			want: []token.Token{
				token.OpenTok("a"), token.CloseTok("a"),
				token.OpenTok("b"), token.CloseTok("b"),
			},
		},
		{
			name: "nested concat",
			node: ir.Nested(ir.Concat(
				ir.Nested(ir.Empty()),
				ir.Nested(ir.Empty()))),
			want: []token.Token{
				token.OpenTok(""),
				token.OpenTok(""), token.CloseTok(""),
				token.OpenTok(""), token.CloseTok(""),
				token.CloseTok(""),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(nil, tt.node)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if !got[i].Equal(&tt.want[i]) {
					t.Errorf("token %d: got %s, want %s",
						i, got[i].String(), tt.want[i].String())
				}
			}
		})
	}
}

func TestEncodeLabelDuplication(t *testing.T) {
	// the label repeats after both delimiters
	node := ir.NestedLabel("root", ir.Concat(
		ir.NestedLabel("a", ir.Empty()),
		ir.NestedLabel("b", ir.Empty())))
	if got := MustString(node); got != "(root(a)a(b)b)root" {
		t.Errorf("got %q, want %q", got, "(root(a)a(b)b)root")
	}
}

func TestEncodePlain(t *testing.T) {
	node := ir.Nested(ir.Concat(
		ir.Nested(ir.Empty()),
		ir.Nested(ir.Empty())))
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "(()())" {
		t.Errorf("got %q, want %q", got, "(()())")
	}
}

func TestEncodeColorsDegradeToPlain(t *testing.T) {
	// with color globally off the colored path must emit the bytes
	// of the plain rendering
	was := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = was }()

	node := ir.NestedLabel("h1", ir.Nested(ir.Empty()))
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != MustString(node) {
		t.Errorf("got %q, want %q", got, MustString(node))
	}
}
