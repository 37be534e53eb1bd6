package tree

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/property"
	"github.com/signadot/richtext/style"
)

// NoIndex is the Index of a node without a parent.
const NoIndex = -1

// Node is an immutable document node.
type Node struct {
	kind     Kind
	value    string
	style    *style.Style
	children []*Node // parentless

	parent *Node
	index  int
	// content is the parentless node this attached node views, nil for
	// parentless nodes.
	content *Node

	once     sync.Once
	attached []*Node
}

func newNode(kind Kind, v string, s *style.Style, children []*Node) *Node {
	return &Node{kind: kind, value: v, style: s, children: children, index: NoIndex}
}

// Text returns a plain text leaf.
func Text(s string) *Node {
	return newNode(TextKind, s, style.Empty, nil)
}

// Image returns an image leaf.
func Image(u string) (*Node, error) {
	if err := checkURL(u); err != nil {
		return nil, err
	}
	return newNode(ImageKind, u, style.Empty, nil), nil
}

// Flag returns a country flag leaf. code must be two ASCII letters; it is
// upper cased.
func Flag(code string) (*Node, error) {
	c, err := checkFlag(code)
	if err != nil {
		return nil, err
	}
	return newNode(FlagKind, c, style.Empty, nil), nil
}

// Placeholder returns an unresolved placeholder leaf. Names follow the
// property name rules.
func Placeholder(name string) (*Node, error) {
	if err := checkPlaceholder(name); err != nil {
		return nil, err
	}
	return newNode(PlaceholderKind, name, style.Empty, nil), nil
}

// Styled returns a style node. A style node with an empty style and a
// single child is that child.
func Styled(s *style.Style, children ...*Node) (*Node, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil style", errs.ErrInvalidArgument)
	}
	kids, err := detachAll(children)
	if err != nil {
		return nil, err
	}
	return makeStyled(s, kids), nil
}

func makeStyled(s *style.Style, kids []*Node) *Node {
	if s.IsEmpty() && len(kids) == 1 {
		return kids[0]
	}
	return newNode(StyleKind, "", s, kids)
}

// Join groups children in a style node without properties.
func Join(children ...*Node) (*Node, error) {
	return Styled(style.Empty, children...)
}

// StyleName returns a node marking children with a named style.
func StyleName(name string, children ...*Node) (*Node, error) {
	if err := checkNonEmpty(StyleNameKind, name); err != nil {
		return nil, err
	}
	kids, err := detachAll(children)
	if err != nil {
		return nil, err
	}
	return newNode(StyleNameKind, name, style.Empty, kids), nil
}

// Hyperlink returns a link to u around children.
func Hyperlink(u string, children ...*Node) (*Node, error) {
	if err := checkURL(u); err != nil {
		return nil, err
	}
	kids, err := detachAll(children)
	if err != nil {
		return nil, err
	}
	return newNode(HyperlinkKind, u, style.Empty, kids), nil
}

// Badge returns a badge labelled text around children.
func Badge(text string, children ...*Node) (*Node, error) {
	if err := checkNonEmpty(BadgeKind, text); err != nil {
		return nil, err
	}
	kids, err := detachAll(children)
	if err != nil {
		return nil, err
	}
	return newNode(BadgeKind, text, style.Empty, kids), nil
}

func detachAll(children []*Node) ([]*Node, error) {
	if len(children) == 0 {
		return nil, nil
	}
	res := make([]*Node, len(children))
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("%w: nil child at %d", errs.ErrInvalidArgument, i)
		}
		res[i] = c.RemoveParent()
	}
	return res, nil
}

func checkURL(u string) error {
	if strings.TrimSpace(u) == "" {
		return fmt.Errorf("%w: empty url", errs.ErrValidation)
	}
	if _, err := url.Parse(u); err != nil {
		return fmt.Errorf("%w: bad url %q: %w", errs.ErrValidation, u, err)
	}
	return nil
}

func checkFlag(code string) (string, error) {
	if len(code) != 2 || !isASCIILetter(code[0]) || !isASCIILetter(code[1]) {
		return "", fmt.Errorf("%w: flag %q must be two letters", errs.ErrValidation, code)
	}
	return strings.ToUpper(code), nil
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func checkPlaceholder(name string) error {
	if err := property.CheckName(name); err != nil {
		return fmt.Errorf("%w: placeholder: %w", errs.ErrValidation, err)
	}
	return nil
}

func checkNonEmpty(k Kind, v string) error {
	if v == "" {
		return fmt.Errorf("%w: empty %s", errs.ErrValidation, k)
	}
	return nil
}

// checkValue validates and normalises a leaf value or container payload
// for kind k.
func checkValue(k Kind, v string) (string, error) {
	switch k {
	case TextKind:
		return v, nil
	case ImageKind, HyperlinkKind:
		return v, checkURL(v)
	case FlagKind:
		return checkFlag(v)
	case PlaceholderKind:
		return v, checkPlaceholder(v)
	case StyleNameKind, BadgeKind:
		return v, checkNonEmpty(k, v)
	case StyleKind:
		return "", fmt.Errorf("%w: style nodes have no value", errs.ErrUnsupportedOperation)
	}
	return "", fmt.Errorf("%w: kind %s", errs.ErrUnhandledCase, k)
}

func (n *Node) Kind() Kind { return n.kind }

// Value returns the payload of n: the text, url, flag code, placeholder
// name, style name or badge text. It is empty for style nodes.
func (n *Node) Value() string { return n.value }

// Style returns the style of a style node, and style.Empty otherwise.
func (n *Node) Style() *style.Style { return n.style }

func (n *Node) NumChildren() int { return len(n.children) }

// Children returns the children of n attached to n.
func (n *Node) Children() []*Node {
	return slices.Clone(n.attach())
}

// Child returns child i attached to n, or nil if there is none.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.attach()[i]
}

func (n *Node) attach() []*Node {
	n.once.Do(func() {
		if len(n.children) == 0 {
			return
		}
		n.attached = make([]*Node, len(n.children))
		for i, c := range n.children {
			n.attached[i] = &Node{
				kind:     c.kind,
				value:    c.value,
				style:    c.style,
				children: c.children,
				parent:   n,
				index:    i,
				content:  c,
			}
		}
	})
	return n.attached
}

// Parent returns the node n was reached from, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Index returns the position of n among its parent's children, or NoIndex.
func (n *Node) Index() int { return n.index }

func (n *Node) IsRoot() bool { return n.parent == nil }

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Path returns the position of n below its root, such as "$[0][2]".
func (n *Node) Path() string {
	var b strings.Builder
	b.WriteString("$")
	for _, i := range n.indices() {
		b.WriteString("[" + strconv.Itoa(i) + "]")
	}
	return b.String()
}

// RemoveParent returns n without its parent. The result is the content
// shared by every tree containing n; n itself if it has no parent.
func (n *Node) RemoveParent() *Node {
	if n.content != nil {
		return n.content
	}
	return n
}

// indices returns the child indices leading from the root to n.
func (n *Node) indices() []int {
	var res []int
	for x := n; x.parent != nil; x = x.parent {
		res = append(res, x.index)
	}
	slices.Reverse(res)
	return res
}

// At returns the descendant of n reached by the child indices path, or nil.
func (n *Node) At(path ...int) *Node {
	res := n
	for _, i := range path {
		if res = res.Child(i); res == nil {
			return nil
		}
	}
	return res
}

func (n *Node) String() string {
	s, err := encodeString(n)
	if err != nil {
		return fmt.Sprintf("<%s %q>", n.kind, n.value)
	}
	return s
}
