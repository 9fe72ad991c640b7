// Package encode flattens delimiter trees back into tokens and text.
//
// # Usage
//
//	// Tree to tokens
//	toks := encode.Flatten(nil, node)
//
//	// Tree to text
//	err := encode.Encode(node, os.Stdout)
//
//	// Colored text, delimiters cycling by depth
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/nest-format/go-nest/ir - Tree representation
//   - github.com/signadot/nest-format/go-nest/parse - Parse text to trees
//   - github.com/signadot/nest-format/go-nest/token - Token model and codec
package encode
