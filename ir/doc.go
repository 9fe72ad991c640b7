// Package ir is the tree representation of balanced delimiter
// sequences.
//
// A tree is one of exactly three variants: Empty, Nested (one matched
// open/close pair wrapping a child) and Concat (two sibling subtrees
// in document order).  Switches over Node.Type are expected to be
// exhaustive over these three.
//
// # Related Packages
//
//   - github.com/signadot/nest-format/go-nest/parse - Build trees from tokens
//   - github.com/signadot/nest-format/go-nest/encode - Flatten trees back to tokens
package ir
