package tree

// DescendantEqual reports whether n and o have equal kinds, payloads and
// styles, and descendant equal children. Parents are ignored.
func (n *Node) DescendantEqual(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	a, b := n.RemoveParent(), o.RemoveParent()
	if a == b {
		return true
	}
	if a.kind != b.kind || a.value != b.value || len(a.children) != len(b.children) {
		return false
	}
	if !a.style.Equal(b.style) {
		return false
	}
	return childrenEqual(a.children, b.children)
}

func childrenEqual(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].DescendantEqual(b[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether n and o are descendant equal and have equal
// ancestors: at every level up to their roots, they sit at the same index
// of descendant equal parents.
func (n *Node) Equal(o *Node) bool {
	if !n.DescendantEqual(o) {
		return false
	}
	if n == nil {
		return true
	}
	for a, b := n, o; ; a, b = a.parent, b.parent {
		if a.parent == nil || b.parent == nil {
			return a.parent == nil && b.parent == nil
		}
		if a.index != b.index {
			return false
		}
		if a.parent == b.parent {
			return true
		}
		if !a.parent.DescendantEqual(b.parent) {
			return false
		}
	}
}
