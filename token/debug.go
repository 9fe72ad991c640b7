package token

import "fmt"

func PrintTokens(toks []Token, msg string) {
	fmt.Printf("%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		fmt.Printf("\t%s %q @%d\n", t.Kind, t.Label, t.Off)
	}
}
