package tree

import (
	"errors"
	"testing"

	"github.com/signadot/richtext/errs"
)

func TestMarkup(t *testing.T) {
	cases := []struct {
		name   string
		node   func(t *testing.T) *Node
		indent string
		want   string
	}{
		{
			name: "text",
			node: func(*testing.T) *Node { return Text("a<b & c") },
			want: "a&lt;b &amp; c",
		},
		{
			name: "styled link",
			node: func(t *testing.T) *Node {
				link := must(t)(Hyperlink("https://x.y/?q=1&r=2", Text("link")))
				return must(t)(Styled(red(t), Text("a<b"), link))
			},
			want: `<span style="color: #ff0000">a&lt;b<a href="https://x.y/?q=1&amp;r=2">link</a></span>`,
		},
		{
			name: "styled link indented",
			node: func(t *testing.T) *Node {
				link := must(t)(Hyperlink("https://x.y/", Text("link")))
				return must(t)(Styled(red(t), Text("a"), link))
			},
			indent: "  ",
			want:   "<span style=\"color: #ff0000\">\n  a<a href=\"https://x.y/\">link</a>\n</span>",
		},
		{
			name: "nested blocks indented",
			node: func(t *testing.T) *Node {
				title := must(t)(StyleName("title", Text("T")))
				return must(t)(Join(title, Text("body")))
			},
			indent: "  ",
			want:   "<span>\n  <span class=\"title\">\n    T\n  </span>\n  body\n</span>",
		},
		{
			name: "flag",
			node: func(t *testing.T) *Node { return must(t)(Flag("au")) },
			want: `<span class="flag" title="AU">🇦🇺</span>`,
		},
		{
			name: "image",
			node: func(t *testing.T) *Node { return must(t)(Image("https://i.example/x.png")) },
			want: `<img src="https://i.example/x.png"/>`,
		},
		{
			name: "badge",
			node: func(t *testing.T) *Node { return must(t)(Badge("new", Text("x"))) },
			want: `<span class="badge" data-badge="new">x</span>`,
		},
		{
			name:   "empty join",
			node:   func(t *testing.T) *Node { return must(t)(Join()) },
			indent: "  ",
			want:   "<span></span>",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var opts []RenderOption
			if c.indent != "" {
				opts = append(opts, MarkupIndent(c.indent))
			}
			got, err := Markup(c.node(t), opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("got\n%s\nwant\n%s", got, c.want)
			}
		})
	}
}

func TestMarkupAttached(t *testing.T) {
	root := sample(t)
	got, err := Markup(root.Child(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := `<a href="https://example.com">c</a>`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestMarkupPlaceholder(t *testing.T) {
	p := must(t)(Placeholder("who"))
	doc := must(t)(Badge("b", Text("hi "), p))
	if _, err := Markup(doc); !errors.Is(err, errs.ErrUnsupportedOperation) {
		t.Errorf("got %v", err)
	}
}
