// Package tree provides the immutable rich text document tree.
//
// A Node is one of eight kinds. Text, Image, Flag and Placeholder nodes are
// leaves carrying a single string. Style, StyleName, Hyperlink and Badge
// nodes carry an ordered list of children; a Style node also carries a
// *style.Style, the only kind to do so.
//
// Nodes are never modified. An edit such as SetValue or SetChild returns
// the replacement node attached to a new root, and the new tree shares
// every subtree the edit did not touch with the old one. Edits which would
// not change anything return their receiver.
//
// Node content is stored parentless. A node obtained through Children or
// Child of another node is attached: it knows its Parent and Index. The
// attached form is created on first access and cached, and RemoveParent
// returns the shared parentless content.
package tree
