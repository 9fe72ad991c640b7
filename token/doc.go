// Package token defines the delimiter token model, the text codec and
// the balance check.
//
// # Usage
//
//	toks, err := token.Scan(nil, []byte("(()())"), format.PlainFormat)
//	if err != nil {
//	    return err
//	}
//	if !token.IsBalanced(toks, format.PlainFormat) {
//	    // imbalanced input
//	}
//
// Labeled text repeats the label after both delimiter characters, so
// a pair labeled "h1" wrapping nothing reads "(h1)h1".
//
// # Related Packages
//
//   - github.com/signadot/nest-format/go-nest/parse - Build trees from tokens
//   - github.com/signadot/nest-format/go-nest/encode - Flatten trees to tokens
package token
