package tree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/signadot/richtext/debug"
	"github.com/signadot/richtext/errs"
)

type renderOpts struct {
	indent string
}

type RenderOption func(*renderOpts)

// MarkupIndent puts the content of style and style name nodes on their own
// lines, indented by s per level.
func MarkupIndent(s string) RenderOption {
	return func(o *renderOpts) { o.indent = s }
}

// Markup renders n as HTML.
func Markup(n *Node, opts ...RenderOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := WriteMarkup(buf, n, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteMarkup renders n as HTML to w. Placeholders cannot be rendered and
// must be resolved first.
func WriteMarkup(w io.Writer, n *Node, opts ...RenderOption) error {
	o := &renderOpts{}
	for _, opt := range opts {
		opt(o)
	}
	doc := &html.Node{Type: html.DocumentNode}
	b := &markupBuilder{indent: o.indent}
	if err := b.build(doc, n.RemoveParent()); err != nil {
		return err
	}
	if debug.Render() {
		debug.Logf("render %s", n)
	}
	return html.Render(w, doc)
}

// markupBuilder threads the indentation flag: pending is set around style
// and style name elements, and means the next node starts a new line.
type markupBuilder struct {
	indent  string
	depth   int
	started bool
	pending bool
}

func (b *markupBuilder) place(parent, child *html.Node) {
	if b.indent != "" && b.pending && b.started {
		parent.AppendChild(textNode("\n" + strings.Repeat(b.indent, b.depth)))
	}
	b.pending = false
	b.started = true
	parent.AppendChild(child)
}

func (b *markupBuilder) build(parent *html.Node, n *Node) error {
	switch n.kind {
	case TextKind:
		b.place(parent, textNode(n.value))
		return nil
	case ImageKind:
		b.place(parent, element(atom.Img, attr("src", n.value)))
		return nil
	case FlagKind:
		el := element(atom.Span, attr("class", "flag"), attr("title", n.value))
		el.AppendChild(textNode(flagEmoji(n.value)))
		b.place(parent, el)
		return nil
	case PlaceholderKind:
		return fmt.Errorf("%w: cannot render unresolved placeholder %q", errs.ErrUnsupportedOperation, n.value)
	case StyleKind:
		var attrs []html.Attribute
		if !n.style.IsEmpty() {
			attrs = append(attrs, attr("style", n.style.String()))
		}
		return b.block(parent, element(atom.Span, attrs...), n)
	case StyleNameKind:
		return b.block(parent, element(atom.Span, attr("class", n.value)), n)
	case HyperlinkKind:
		return b.inline(parent, element(atom.A, attr("href", n.value)), n)
	case BadgeKind:
		return b.inline(parent, element(atom.Span, attr("class", "badge"), attr("data-badge", n.value)), n)
	}
	return fmt.Errorf("%w: render %s", errs.ErrUnhandledCase, n.kind)
}

func (b *markupBuilder) inline(parent, el *html.Node, n *Node) error {
	b.place(parent, el)
	for _, c := range n.children {
		if err := b.build(el, c); err != nil {
			return err
		}
	}
	return nil
}

func (b *markupBuilder) block(parent, el *html.Node, n *Node) error {
	b.pending = true
	b.place(parent, el)
	b.depth++
	b.pending = true
	for _, c := range n.children {
		if err := b.build(el, c); err != nil {
			return err
		}
	}
	b.depth--
	if b.indent != "" && len(n.children) != 0 {
		el.AppendChild(textNode("\n" + strings.Repeat(b.indent, b.depth)))
	}
	b.pending = true
	return nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// flagEmoji spells a country code with regional indicator symbols.
func flagEmoji(code string) string {
	var b strings.Builder
	for _, c := range code {
		b.WriteRune(0x1F1E6 + c - 'A')
	}
	return b.String()
}
