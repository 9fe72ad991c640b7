// Package parse builds delimiter trees from token sequences.
//
// # Usage
//
//	// Parse plain parentheses text
//	node, err := parse.ParseString("(()())")
//	if err != nil {
//	    return err
//	}
//
//	// Parse labeled text
//	node, err := parse.ParseString("(h1)h1",
//	    parse.ParseFormat(format.LabeledFormat))
//
//	// Build from tokens directly
//	node, err := parse.Build(toks, parse.ParseFormat(f))
//
// Failures are wrapped off ErrParse and distinguish unmatched closes,
// label mismatches and unmatched opens at end of input.
//
// # Related Packages
//
//   - github.com/signadot/nest-format/go-nest/ir - Tree representation
//   - github.com/signadot/nest-format/go-nest/encode - Flatten trees back
//   - github.com/signadot/nest-format/go-nest/token - Tokenization
package parse
