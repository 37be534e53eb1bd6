// Package style provides Style, the validated immutable view of a set of
// style properties, and the Border, Margin and Padding edge views.
//
// Every operation returning a *Style returns its receiver when nothing
// changes, and Empty when no property remains, so callers may compare
// styles by pointer to detect no-ops.
package style
