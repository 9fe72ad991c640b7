// Package format names the two delimiter dialects handled by go-nest.
//
// # Usage
//
//	f, err := format.ParseFormat("labeled")
//	if err != nil {
//	    return err
//	}
//	if f.IsLabeled() {
//	    // delimiters carry labels
//	}
//
// # Related Packages
//
//   - github.com/signadot/nest-format/go-nest/token - Tokenization
//   - github.com/signadot/nest-format/go-nest/parse - Parse tokens to trees
package format
