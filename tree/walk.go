package tree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/richtext/errs"
)

// Walk calls f on n and its descendants, pre-order then post-order, like
// ir.Node.Visit. Children are visited only if the pre-order call returns
// true. Visited descendants are attached.
func (n *Node) Walk(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.attach() {
			if err := c.Walk(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

// Text returns the plain text of n: the concatenated text leaves below n.
func (n *Node) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.kind == TextKind {
		b.WriteString(n.value)
		return
	}
	for _, c := range n.children {
		c.writeText(b)
	}
}

// Replace rewrites the subtree at n bottom-up: f is called on each node
// after its children have been rewritten, and returns the node to use in
// its place. f receives parentless nodes. Unchanged subtrees are shared.
func (n *Node) Replace(f func(*Node) (*Node, error)) (*Node, error) {
	c := n.RemoveParent()
	r, err := replace(c, f)
	if err != nil {
		return nil, err
	}
	if r == c {
		return n, nil
	}
	return n.rebuild(r), nil
}

func replace(c *Node, f func(*Node) (*Node, error)) (*Node, error) {
	cur := c
	var kids []*Node
	for i, k := range c.children {
		nk, err := replace(k, f)
		if err != nil {
			return nil, err
		}
		if nk != k && kids == nil {
			kids = slices.Clone(c.children)
		}
		if kids != nil {
			kids[i] = nk
		}
	}
	if kids != nil {
		if c.kind == StyleKind {
			cur = makeStyled(c.style, kids)
		} else {
			cur = c.withKids(kids)
		}
	}
	res, err := f(cur)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: replacement for %s node is nil", errs.ErrInvalidArgument, cur.kind)
	}
	res = res.RemoveParent()
	if res != cur && res.DescendantEqual(cur) {
		res = cur
	}
	return res, nil
}

// Resolver maps placeholder names to content.
type Resolver func(name string) (*Node, bool)

// MapResolver resolves names from m.
func MapResolver(m map[string]*Node) Resolver {
	return func(name string) (*Node, bool) {
		r, ok := m[name]
		return r, ok && r != nil
	}
}

// ResolvePlaceholders replaces the placeholders below n which resolve
// resolves. Unresolved placeholders are kept.
func (n *Node) ResolvePlaceholders(resolve Resolver) (*Node, error) {
	return n.Replace(func(c *Node) (*Node, error) {
		if c.kind != PlaceholderKind {
			return c, nil
		}
		if r, ok := resolve(c.value); ok {
			return r, nil
		}
		return c, nil
	})
}

// Placeholders returns the names of the placeholders below n in document
// order, without duplicates.
func (n *Node) Placeholders() []string {
	var res []string
	var walk func(*Node)
	walk = func(c *Node) {
		if c.kind == PlaceholderKind && !slices.Contains(res, c.value) {
			res = append(res, c.value)
		}
		for _, k := range c.children {
			walk(k)
		}
	}
	walk(n.RemoveParent())
	return res
}
