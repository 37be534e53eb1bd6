// Package parse parses YAML and JSON text into IR nodes.
//
// YAML tags are kept on the resulting nodes, so text written by package
// encode parses back to an equal tree:
//
//	node, err := parse.Parse([]byte("!flag AU"))
//	// node.Tag == "!flag", node.String == "AU"
//
// The lossless JSON form of the IR is read with ParseFormat(format.IRFormat).
package parse
