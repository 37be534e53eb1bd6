package exprenv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/property"
	"github.com/signadot/richtext/style"
	"github.com/signadot/richtext/tree"
)

func doc(t *testing.T) *tree.Node {
	t.Helper()
	s, err := style.Parse(property.Default(), "color: red")
	if err != nil {
		t.Fatal(err)
	}
	st, err := tree.Styled(s, tree.Text("hello "), tree.Text("world"))
	if err != nil {
		t.Fatal(err)
	}
	link, err := tree.Hyperlink("https://example.com", tree.Text("!"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := tree.Badge("new", st, link)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestEval(t *testing.T) {
	cases := []struct {
		src  string
		want any
	}{
		{`node != nil`, true},
		{`kind(node)`, "badge"},
		{`value(node)`, "new"},
		{`text(node)`, "hello world!"},
		{`len(children(node))`, 2},
		{`kind(child(node, 1))`, "hyperlink"},
		{`value(child(node, 1))`, "https://example.com"},
		{`path(child(child(node, 0), 1))`, "$[0][1]"},
		{`styleOf(child(node, 0), "color")`, "#ff0000"},
		{`styleOf(node, "color") == nil`, true},
		{`parent(node) == nil`, true},
		{`kind(parent(child(node, 0)))`, "badge"},
		{`map(children(node), kind(#))`, []any{"style", "hyperlink"}},
		{`filter(children(child(node, 0)), text(#) startsWith "w") | len()`, 1},
	}
	n := doc(t)
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			got, err := Eval(c.src, n)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestProgramReuse(t *testing.T) {
	p, err := Compile(`kind(node) + ":" + text(node)`)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []*tree.Node{tree.Text("a"), doc(t).Child(1)} {
		if _, err := p.Run(n); err != nil {
			t.Error(err)
		}
	}
	got, err := p.Run(tree.Text("a"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "text:a" {
		t.Errorf("got %v", got)
	}
}

func TestEvalErrors(t *testing.T) {
	n := doc(t)
	cases := []struct {
		src string
		err error
	}{
		{`kind(`, errs.ErrParse},
		{`kind(1)`, errs.ErrParse},
		{`nosuch(node)`, errs.ErrParse},
		{`child(node, 5)`, errs.ErrInvalidArgument},
		{`kind(parent(node))`, errs.ErrInvalidArgument},
		{`styleOf(node, "Not A Name")`, errs.ErrInvalidName},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := Eval(c.src, n)
			if !errors.Is(err, c.err) {
				t.Errorf("got %v want %v", err, c.err)
			}
		})
	}
	p, err := Compile(`text(node)`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Run(nil); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("nil node: %v", err)
	}
}

func TestEvalRegistry(t *testing.T) {
	reg := property.NewRegistry()
	s, err := style.Parse(reg, "x-size: 3")
	if err != nil {
		t.Fatal(err)
	}
	n, err := tree.Styled(s, tree.Text("a"), tree.Text("b"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Eval(`styleOf(node, "x-size")`, n, WithRegistry(reg))
	if err != nil {
		t.Fatal(err)
	}
	if got != "3" {
		t.Errorf("got %v", got)
	}
}
