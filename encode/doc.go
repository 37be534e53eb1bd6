// Package encode encodes IR nodes to YAML or JSON text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "url":      ir.FromString("https://example.com"),
//	    "children": ir.FromSlice([]*ir.Node{ir.FromString("home")}),
//	}).WithTag("!hyperlink")
//	err := encode.Encode(node, os.Stdout)
//
//	// JSON, one line
//	err = encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
//
// YAML output writes tags natively. Plain JSON cannot carry tags, so
// encoding a tagged node as JSON fails with ErrEncoding; use
// format.IRFormat for a lossless JSON form.
//
// # Related Packages
//
//   - github.com/signadot/richtext/ir - IR representation
//   - github.com/signadot/richtext/parse - Parse text to IR
package encode
