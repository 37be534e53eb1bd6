// Package ir provides the wire intermediate representation used to encode
// and decode richtext documents.
//
// # Overview
//
// The IR is a small recursive tagged union: null, bool, number and string
// leaves plus arrays and objects. Every richtext node and style property is
// converted to an IR tree before it is written as text (see package encode)
// and text is parsed into an IR tree before it is decoded (see package
// parse). The IR carries no position information and no comments.
//
// # Tags
//
// Any node may carry a tag such as "!image" or "!untyped(color)". Tags are
// how the richtext codec distinguishes node kinds sharing a scalar shape and
// how untyped property values keep their type across a round trip. Tag
// helpers (TagArgs, TagCompose, TagHas, TagGet, TagRemove, CheckTag) operate
// on dot-separated tag chains with optional parenthesised arguments:
//
//	!untyped(color)
//	!style.extra
//
// # Structure constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Fields are
// string nodes. For ArrayType nodes Fields is empty. Values always point back
// to their container through Parent, ParentIndex and ParentField.
//
// # Creating nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("url"), Val: ir.FromString("https://example.com")},
//	    {Key: ir.FromString("children"), Val: ir.FromSlice(nil)},
//	}).WithTag("!hyperlink")
package ir
