package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/property"
	"github.com/signadot/richtext/style"
	"github.com/signadot/richtext/value"
)

func must(t *testing.T) func(*Node, error) *Node {
	return func(n *Node, err error) *Node {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return n
	}
}

func red(t *testing.T) *style.Style {
	t.Helper()
	s, err := style.Set(style.Empty, property.Color, value.RGB(255, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// sample returns
//
//	badge "b"
//	  style color: red
//	    "a"
//	    "b"
//	  hyperlink https://example.com
//	    "c"
func sample(t *testing.T) *Node {
	t.Helper()
	st := must(t)(Styled(red(t), Text("a"), Text("b")))
	link := must(t)(Hyperlink("https://example.com", Text("c")))
	return must(t)(Badge("b", st, link))
}

func TestFlag(t *testing.T) {
	f := must(t)(Flag("au"))
	if f.Value() != "AU" {
		t.Errorf("got %q", f.Value())
	}
	if !f.DescendantEqual(must(t)(Flag("AU"))) {
		t.Error("au and AU differ")
	}
	for _, bad := range []string{"aus", "a", "", "a1", "éa"} {
		if _, err := Flag(bad); !errors.Is(err, errs.ErrValidation) {
			t.Errorf("Flag(%q): %v", bad, err)
		}
	}
}

func TestFactoryValidation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		f    func() (*Node, error)
	}{
		{"empty image", errs.ErrValidation, func() (*Node, error) { return Image("") }},
		{"bad image url", errs.ErrValidation, func() (*Node, error) { return Image("http://x/%zz") }},
		{"bad placeholder", errs.ErrValidation, func() (*Node, error) { return Placeholder("first name") }},
		{"empty badge", errs.ErrValidation, func() (*Node, error) { return Badge("") }},
		{"empty style name", errs.ErrValidation, func() (*Node, error) { return StyleName("") }},
		{"nil child", errs.ErrInvalidArgument, func() (*Node, error) { return Hyperlink("https://a", nil) }},
		{"nil style", errs.ErrInvalidArgument, func() (*Node, error) { return Styled(nil, Text("x")) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.f(); !errors.Is(err, c.err) {
				t.Errorf("got %v want %v", err, c.err)
			}
		})
	}
	if n, err := Image("img/logo.png"); err != nil || n.Kind() != ImageKind {
		t.Errorf("relative image: %v", err)
	}
}

func TestStyleCollapse(t *testing.T) {
	hi := Text("hi")
	n := must(t)(Styled(style.Empty, hi))
	if n.Kind() != TextKind || !n.Equal(Text("hi")) {
		t.Errorf("empty style did not collapse: %s", n)
	}
	if n != hi {
		t.Error("collapse did not reuse the child")
	}
	two := must(t)(Join(Text("a"), Text("b")))
	if two.Kind() != StyleKind {
		t.Errorf("join of two is %s", two.Kind())
	}

	styled := must(t)(Styled(red(t), Text("hi")))
	if styled.Kind() != StyleKind {
		t.Fatalf("styled is %s", styled.Kind())
	}
	cleared := must(t)(styled.UpdateStyle(func(s *style.Style) (*style.Style, error) {
		return s.Remove(property.Color.Name), nil
	}))
	if cleared.Kind() != TextKind || cleared.Value() != "hi" {
		t.Errorf("removing the last property gave %s", cleared)
	}

	doc := must(t)(Badge("x", styled))
	inner := doc.Child(0)
	cleared = must(t)(inner.SetStyle(style.Empty))
	if cleared.Kind() != TextKind || cleared.Parent().Kind() != BadgeKind || cleared.Index() != 0 {
		t.Errorf("nested collapse gave %s under %s", cleared, cleared.Parent())
	}
	if one := must(t)(two.RemoveChild(0)); one.Kind() != TextKind || one.Value() != "b" {
		t.Errorf("join left with one child gave %s", one)
	}
}

func TestNoOpEdits(t *testing.T) {
	root := sample(t)
	b := root.At(0, 1)
	if b.Value() != "b" || b.Parent().Parent() != root {
		t.Fatalf("at: %s", b)
	}
	same := must(t)(b.SetValue("b"))
	if same != b || same.Root() != root {
		t.Error("setting an equal value rebuilt the tree")
	}
	link := root.Child(1)
	equalLink := must(t)(Hyperlink("https://example.com", Text("c")))
	if got := must(t)(root.SetChild(1, equalLink)); got != root {
		t.Error("replacing a child with an equal child rebuilt the tree")
	}
	if got := must(t)(link.SetChildren(Text("c"))); got != link {
		t.Error("equal children rebuilt the link")
	}
	st := root.Child(0)
	if got := must(t)(st.SetStyle(red(t))); got != st {
		t.Error("equal style rebuilt the style node")
	}
	if got := must(t)(root.AppendChild()); got != root {
		t.Error("appending nothing rebuilt the tree")
	}
	if got := must(t)(root.Replace(func(n *Node) (*Node, error) { return n, nil })); got != root {
		t.Error("identity replace rebuilt the tree")
	}
}

func TestEditRebuildsPath(t *testing.T) {
	root := sample(t)
	b := root.At(0, 1)
	changed := must(t)(b.SetValue("B"))
	if changed.Value() != "B" || changed.Index() != 1 || changed.Path() != "$[0][1]" {
		t.Errorf("changed %s at %s", changed, changed.Path())
	}
	newRoot := changed.Root()
	if newRoot == root || changed.Parent() == b.Parent() {
		t.Fatal("ancestors were not rebuilt")
	}
	if root.At(0, 1).Value() != "b" {
		t.Error("edit changed the old tree")
	}
	if newRoot.Text() != "aBc" || root.Text() != "abc" {
		t.Errorf("texts %q %q", newRoot.Text(), root.Text())
	}
	if newRoot.Child(1).RemoveParent() != root.Child(1).RemoveParent() {
		t.Error("untouched sibling subtree is not shared")
	}
	if newRoot.At(0, 0).RemoveParent() != root.At(0, 0).RemoveParent() {
		t.Error("untouched leaf is not shared")
	}
	for _, c := range newRoot.Children() {
		if c.Parent() != newRoot {
			t.Errorf("child %d has a stale parent", c.Index())
		}
	}
}

func TestChildEdits(t *testing.T) {
	j := must(t)(Join(Text("a"), Text("b"), Text("c")))
	cases := []struct {
		name string
		edit func() (*Node, error)
		want string
	}{
		{"remove", func() (*Node, error) { return j.RemoveChild(1) }, "ac"},
		{"insert", func() (*Node, error) { return j.InsertChild(0, Text("z")) }, "zabc"},
		{"insert end", func() (*Node, error) { return j.InsertChild(3, Text("z")) }, "abcz"},
		{"append", func() (*Node, error) { return j.AppendChild(Text("d"), Text("e")) }, "abcde"},
		{"set", func() (*Node, error) { return j.SetChild(2, Text("C")) }, "abC"},
		{"set children", func() (*Node, error) { return j.SetChildren(Text("x"), Text("y")) }, "xy"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := must(t)(c.edit())
			if got.Text() != c.want {
				t.Errorf("got %q want %q", got.Text(), c.want)
			}
		})
	}
	if j.Text() != "abc" {
		t.Errorf("receiver changed to %q", j.Text())
	}
	if _, err := j.RemoveChild(3); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("remove out of range: %v", err)
	}
	if _, err := j.SetChild(-1, Text("x")); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("set out of range: %v", err)
	}
	if _, err := j.SetChild(0, nil); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("set nil: %v", err)
	}
}

func TestUnsupportedEdits(t *testing.T) {
	leaf := Text("x")
	if _, err := leaf.AppendChild(Text("y")); !errors.Is(err, errs.ErrUnsupportedOperation) {
		t.Errorf("append to leaf: %v", err)
	}
	if _, err := leaf.SetChildren(); !errors.Is(err, errs.ErrUnsupportedOperation) {
		t.Errorf("set children of leaf: %v", err)
	}
	badge := must(t)(Badge("b"))
	if _, err := badge.SetStyle(style.Empty); !errors.Is(err, errs.ErrUnsupportedOperation) {
		t.Errorf("style of badge: %v", err)
	}
	if _, err := badge.SetStyleName("n"); !errors.Is(err, errs.ErrUnsupportedOperation) {
		t.Errorf("style name of badge: %v", err)
	}
	j := must(t)(Join(Text("a"), Text("b")))
	if _, err := j.SetValue("v"); !errors.Is(err, errs.ErrUnsupportedOperation) {
		t.Errorf("value of style node: %v", err)
	}
	if _, err := j.SetStyle(nil); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("nil style: %v", err)
	}
	flag := must(t)(Flag("nz"))
	if _, err := flag.SetValue("nzl"); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("bad flag value: %v", err)
	}
	if got := must(t)(flag.SetValue("fr")); got.Value() != "FR" {
		t.Errorf("flag value %q", got.Value())
	}
	sn := must(t)(StyleName("h1", Text("t")))
	if got := must(t)(sn.SetStyleName("h2")); got.Value() != "h2" {
		t.Errorf("style name %q", got.Value())
	}
}

func TestEquality(t *testing.T) {
	a1 := must(t)(Badge("x", Text("t")))
	a2 := must(t)(Badge("y", Text("t")))
	c1, c2 := a1.Child(0), a2.Child(0)
	if !c1.DescendantEqual(c2) {
		t.Error("equal leaves are not descendant equal")
	}
	if c1.Equal(c2) {
		t.Error("leaves under different parents are equal")
	}
	b1 := must(t)(Badge("x", Text("t")))
	if !b1.Child(0).Equal(c1) {
		t.Error("leaves under equal parents are not equal")
	}
	if Text("t").Equal(c1) {
		t.Error("root and attached leaf are equal")
	}
	if !Text("t").Equal(c1.RemoveParent()) {
		t.Error("detached leaf is not equal to a new leaf")
	}
	s1 := must(t)(Styled(red(t), Text("x"), Text("y")))
	s2 := must(t)(Join(Text("x"), Text("y")))
	if s1.DescendantEqual(s2) {
		t.Error("styles are ignored")
	}
	var nilNode *Node
	if nilNode.Equal(Text("x")) || !nilNode.DescendantEqual(nil) {
		t.Error("nil equality")
	}
}

func TestRemoveParent(t *testing.T) {
	root := sample(t)
	if root.RemoveParent() != root {
		t.Error("root detach is not a no-op")
	}
	c := root.Child(1)
	d := c.RemoveParent()
	if d.Parent() != nil || d.Index() != NoIndex || !d.IsRoot() {
		t.Errorf("detached node has parent %v index %d", d.Parent(), d.Index())
	}
	if !d.DescendantEqual(c) || d.Equal(c) {
		t.Error("detached equality")
	}
	if root.Child(1) != c {
		t.Error("detach changed the tree")
	}
}

func TestWalk(t *testing.T) {
	root := sample(t)
	var got []string
	err := root.Walk(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			got = append(got, "/"+n.Kind().String())
			return true, nil
		}
		got = append(got, n.Kind().String()+":"+n.Path())
		return n.Kind() != HyperlinkKind, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"badge:$", "style:$[0]", "text:$[0][0]", "/text", "text:$[0][1]", "/text", "/style",
		"hyperlink:$[1]", "/hyperlink", "/badge",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestResolvePlaceholders(t *testing.T) {
	name := must(t)(Placeholder("name"))
	other := must(t)(Placeholder("other"))
	doc := must(t)(Join(Text("hello "), name, Text(" and "), other))
	if _, err := Markup(doc); !errors.Is(err, errs.ErrUnsupportedOperation) {
		t.Errorf("render placeholder: %v", err)
	}
	if diff := cmp.Diff([]string{"name", "other"}, doc.Placeholders()); diff != "" {
		t.Errorf("placeholders (-want +got):\n%s", diff)
	}
	bs, err := style.Parse(property.Default(), "font-weight: bold")
	if err != nil {
		t.Fatal(err)
	}
	bold := must(t)(Styled(bs, Text("Ada")))
	got := must(t)(doc.ResolvePlaceholders(MapResolver(map[string]*Node{"name": bold})))
	if got.Text() != "hello Ada and " {
		t.Errorf("text %q", got.Text())
	}
	if diff := cmp.Diff([]string{"other"}, got.Placeholders()); diff != "" {
		t.Errorf("unresolved (-want +got):\n%s", diff)
	}
	if got.Child(0).RemoveParent() != doc.Child(0).RemoveParent() {
		t.Error("unresolved content is not shared")
	}
	none := must(t)(doc.ResolvePlaceholders(MapResolver(nil)))
	if none != doc {
		t.Error("resolving nothing rebuilt the tree")
	}
}

func TestReplaceAttached(t *testing.T) {
	root := sample(t)
	upper := func(n *Node) (*Node, error) {
		if n.Kind() == TextKind {
			return n.SetValue(n.Value() + "!")
		}
		return n, nil
	}
	st := root.Child(0)
	got := must(t)(st.Replace(upper))
	if got.Path() != "$[0]" || got.Root().Text() != "a!b!c" {
		t.Errorf("replace below %s gave %q", got.Path(), got.Root().Text())
	}
	if _, err := st.Replace(func(*Node) (*Node, error) { return nil, nil }); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("nil replacement: %v", err)
	}
}

func TestKinds(t *testing.T) {
	leaves := 0
	for _, k := range Kinds() {
		if k.IsLeaf() {
			leaves++
		}
	}
	if len(Kinds()) != 8 || leaves != 4 {
		t.Errorf("%d kinds, %d leaves", len(Kinds()), leaves)
	}
	if StyleNameKind.String() != "styleName" {
		t.Errorf("got %s", StyleNameKind)
	}
}
