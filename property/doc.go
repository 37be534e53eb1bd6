// Package property provides style property names, the handlers which give
// each name its value semantics, the registry which catalogs names, and the
// immutable Store which maps names to validated values.
//
// Every registered name has a fixed index. Well-known names occupy the
// first indices, in the order of the well-known table, in every Registry.
// Names which are not well known are interned on Lookup with the untyped
// handler, which accepts any string, bool, number or value.Value and
// records its type on the wire with a !untyped(<type>) tag.
//
// A Store is a dense slice indexed by name index. It has no mutators:
// With, Without, WithEdges and Merge return new stores, or the receiver
// itself when nothing changes.
package property
