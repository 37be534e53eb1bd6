// Package format names the text formats richtext documents are written in.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//
// # Related Packages
//
//   - github.com/signadot/richtext/parse - Parse text to IR
//   - github.com/signadot/richtext/encode - Encode IR to text
package format
