package token

import (
	"errors"
	"testing"

	"github.com/signadot/nest-format/go-nest/format"
)

func TestScanPlain(t *testing.T) {
	toks, err := ScanString(nil, "(()", format.PlainFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{Open, Open, Close}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
		if toks[i].Label != "" {
			t.Errorf("token %d: unexpected label %q", i, toks[i].Label)
		}
		if toks[i].Off != i {
			t.Errorf("token %d: got offset %d", i, toks[i].Off)
		}
	}
}

func TestScanPlainEncodingErr(t *testing.T) {
	for _, in := range []string{"x", "(a)", "()#", " ()"} {
		_, err := ScanString(nil, in, format.PlainFormat)
		if err == nil {
			t.Errorf("scan %q: no error", in)
			continue
		}
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("scan %q: error %v not an ErrEncoding", in, err)
		}
	}
	_, err := ScanString(nil, "()x()", format.PlainFormat)
	var ee *EncodingErr
	if !errors.As(err, &ee) {
		t.Fatalf("got %v, want EncodingErr", err)
	}
	if ee.Byte != 'x' || ee.Off != 2 {
		t.Errorf("got byte %q at %d, want 'x' at 2", ee.Byte, ee.Off)
	}
}

func TestScanLabeled(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "single pair",
			in:   "(h1)h1",
			want: []Token{
				{Kind: Open, Label: "h1", Off: 0},
				{Kind: Close, Label: "h1", Off: 3},
			},
		},
		{
			name: "empty labels",
			in:   "()",
			want: []Token{
				{Kind: Open, Off: 0},
				{Kind: Close, Off: 1},
			},
		},
		{
			name: "label binds to preceding delimiter",
			in:   "(a(b)b)a",
			want: []Token{
				{Kind: Open, Label: "a", Off: 0},
				{Kind: Open, Label: "b", Off: 2},
				{Kind: Close, Label: "b", Off: 4},
				{Kind: Close, Label: "a", Off: 6},
			},
		},
		{
			name: "labels may repeat",
			in:   "(x)x(x)x",
			want: []Token{
				{Kind: Open, Label: "x", Off: 0},
				{Kind: Close, Label: "x", Off: 2},
				{Kind: Open, Label: "x", Off: 4},
				{Kind: Close, Label: "x", Off: 6},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanString(nil, tt.in, format.LabeledFormat)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				w := &tt.want[i]
				g := &got[i]
				if g.Kind != w.Kind || g.Label != w.Label || g.Off != w.Off {
					t.Errorf("token %d: got %s, want %s", i, g.Info(), w.Info())
				}
			}
		})
	}
}

func TestScanLabeledLeadingLabelErr(t *testing.T) {
	_, err := ScanString(nil, "h1(x)x", format.LabeledFormat)
	var ee *EncodingErr
	if !errors.As(err, &ee) {
		t.Fatalf("got %v, want EncodingErr", err)
	}
	if ee.Off != 0 || ee.Byte != 'h' {
		t.Errorf("got byte %q at %d, want 'h' at 0", ee.Byte, ee.Off)
	}
}

func TestRenderInvertsScan(t *testing.T) {
	docs := []struct {
		in string
		f  format.Format
	}{
		{"", format.PlainFormat},
		{"(()())", format.PlainFormat},
		{")(", format.PlainFormat}, // render needs no balance
		{"(h1)h1", format.LabeledFormat},
		{"(root(a)a(b)b)root", format.LabeledFormat},
		{"()(x)x", format.LabeledFormat},
	}
	for _, doc := range docs {
		toks, err := ScanString(nil, doc.in, doc.f)
		if err != nil {
			t.Errorf("scan %q: %v", doc.in, err)
			continue
		}
		if got := RenderString(toks); got != doc.in {
			t.Errorf("render(scan(%q)) = %q", doc.in, got)
		}
		if got := string(Render(nil, toks)); got != doc.in {
			t.Errorf("Render(scan(%q)) = %q", doc.in, got)
		}
	}
}
