package token

import (
	"testing"

	"github.com/signadot/nest-format/go-nest/format"
)

var okPlainDocs = []string{
	"",
	"()",
	"()()",
	"(())",
	"(()())",
	"((()))()",
	"()(())()",
}

var okLabeledDocs = []string{
	"",
	"()",
	"(h1)h1",
	"(h1(p)p)h1",
	"(root(a)a(b)b)root",
	"(x)x(x)x",
	"(a()(b)b)a",
}

func TestBalancedPlain(t *testing.T) {
	for _, doc := range okPlainDocs {
		toks, err := ScanString(nil, doc, format.PlainFormat)
		if err != nil {
			t.Error(err)
			continue
		}
		if !IsBalanced(toks, format.PlainFormat) {
			t.Errorf("got imbalanced for %q", doc)
		}
	}
}

func TestBalancedLabeled(t *testing.T) {
	for _, doc := range okLabeledDocs {
		toks, err := ScanString(nil, doc, format.LabeledFormat)
		if err != nil {
			t.Error(err)
			continue
		}
		if !IsBalanced(toks, format.LabeledFormat) {
			t.Errorf("got imbalanced for %q", doc)
		}
	}
}

func TestBalancedEmptySequence(t *testing.T) {
	for _, f := range format.AllFormats() {
		if !IsBalanced(nil, f) {
			t.Errorf("%s: empty sequence not balanced", f)
		}
	}
}
