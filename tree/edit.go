package tree

import (
	"fmt"
	"slices"

	"github.com/signadot/richtext/debug"
	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/style"
)

// Edits return the node replacing n, attached at n's position in a new
// tree whose root is Root() of the result. When an edit changes nothing,
// n itself is returned.

// withKids copies the content of n with other children, keeping its kind.
func (n *Node) withKids(kids []*Node) *Node {
	return newNode(n.kind, n.value, n.style, kids)
}

// rebuild puts r, the parentless replacement for n, at n's position,
// rebuilding the ancestors of n, and returns r attached there.
func (n *Node) rebuild(r *Node) *Node {
	p := n.parent
	if p == nil {
		if debug.Edit() {
			debug.Logf("edit: new root %s", r)
		}
		return r
	}
	kids := slices.Clone(p.children)
	kids[n.index] = r
	if debug.Edit() {
		debug.Logf("edit: rebuild %s at %s", p.kind, p.Path())
	}
	return p.rebuild(p.withKids(kids)).Child(n.index)
}

// setKids replaces the children of n with parentless kids.
func (n *Node) setKids(kids []*Node) *Node {
	if childrenEqual(n.children, kids) {
		return n
	}
	if n.kind == StyleKind {
		return n.rebuild(makeStyled(n.style, kids))
	}
	return n.rebuild(n.withKids(kids))
}

func (n *Node) checkContainer() error {
	if n.kind.IsLeaf() {
		return fmt.Errorf("%w: %s nodes have no children", errs.ErrUnsupportedOperation, n.kind)
	}
	return nil
}

// SetChildren replaces the children of n. A style node left with an empty
// style and one child is replaced by that child.
func (n *Node) SetChildren(children ...*Node) (*Node, error) {
	if err := n.checkContainer(); err != nil {
		return nil, err
	}
	kids, err := detachAll(children)
	if err != nil {
		return nil, err
	}
	return n.setKids(kids), nil
}

// SetChild replaces child i of n.
func (n *Node) SetChild(i int, child *Node) (*Node, error) {
	if err := n.checkContainer(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("%w: child %d of %d", errs.ErrInvalidArgument, i, len(n.children))
	}
	if child == nil {
		return nil, fmt.Errorf("%w: nil child", errs.ErrInvalidArgument)
	}
	kids := slices.Clone(n.children)
	kids[i] = child.RemoveParent()
	return n.setKids(kids), nil
}

// AppendChild adds children after the existing children of n.
func (n *Node) AppendChild(children ...*Node) (*Node, error) {
	if err := n.checkContainer(); err != nil {
		return nil, err
	}
	add, err := detachAll(children)
	if err != nil {
		return nil, err
	}
	if len(add) == 0 {
		return n, nil
	}
	return n.setKids(slices.Concat(n.children, add)), nil
}

// InsertChild inserts child before child i; i may be NumChildren.
func (n *Node) InsertChild(i int, child *Node) (*Node, error) {
	if err := n.checkContainer(); err != nil {
		return nil, err
	}
	if i < 0 || i > len(n.children) {
		return nil, fmt.Errorf("%w: insert at %d of %d", errs.ErrInvalidArgument, i, len(n.children))
	}
	if child == nil {
		return nil, fmt.Errorf("%w: nil child", errs.ErrInvalidArgument)
	}
	return n.setKids(slices.Insert(slices.Clone(n.children), i, child.RemoveParent())), nil
}

// RemoveChild removes child i of n.
func (n *Node) RemoveChild(i int) (*Node, error) {
	if err := n.checkContainer(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("%w: child %d of %d", errs.ErrInvalidArgument, i, len(n.children))
	}
	return n.setKids(slices.Delete(slices.Clone(n.children), i, i+1)), nil
}

// SetValue replaces the payload of n, validating it as the factory for
// n's kind does. Style nodes have no value.
func (n *Node) SetValue(v string) (*Node, error) {
	v, err := checkValue(n.kind, v)
	if err != nil {
		return nil, err
	}
	if v == n.value {
		return n, nil
	}
	return n.rebuild(newNode(n.kind, v, n.style, n.children)), nil
}

// SetStyleName renames the style of a style name node.
func (n *Node) SetStyleName(name string) (*Node, error) {
	if n.kind != StyleNameKind {
		return nil, fmt.Errorf("%w: %s node has no style name", errs.ErrUnsupportedOperation, n.kind)
	}
	return n.SetValue(name)
}

// SetStyle replaces the style of a style node. If s is empty and n has a
// single child, n is replaced by that child.
func (n *Node) SetStyle(s *style.Style) (*Node, error) {
	if n.kind != StyleKind {
		return nil, fmt.Errorf("%w: %s node has no style", errs.ErrUnsupportedOperation, n.kind)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil style", errs.ErrInvalidArgument)
	}
	if s.Equal(n.style) {
		return n, nil
	}
	return n.rebuild(makeStyled(s, n.children)), nil
}

// UpdateStyle replaces the style of a style node with f of its style.
func (n *Node) UpdateStyle(f func(*style.Style) (*style.Style, error)) (*Node, error) {
	if n.kind != StyleKind {
		return nil, fmt.Errorf("%w: %s node has no style", errs.ErrUnsupportedOperation, n.kind)
	}
	s, err := f(n.style)
	if err != nil {
		return nil, err
	}
	return n.SetStyle(s)
}
