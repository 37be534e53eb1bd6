package tree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/richtext/encode"
	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/format"
	"github.com/signadot/richtext/parse"
	"github.com/signadot/richtext/property"
	"github.com/signadot/richtext/style"
	"github.com/signadot/richtext/value"
)

// everyKind returns a document with a node of each kind.
func everyKind(t *testing.T) *Node {
	t.Helper()
	s, err := style.Parse(property.Default(), "color: #336699; font-weight: bold; margin-top: 4px")
	if err != nil {
		t.Fatal(err)
	}
	img := must(t)(Image("https://i.example/x.png"))
	flag := must(t)(Flag("nz"))
	who := must(t)(Placeholder("who"))
	link := must(t)(Hyperlink("https://example.com/a?b=c", Text("see "), img))
	badge := must(t)(Badge("beta", flag))
	name := must(t)(StyleName("em", Text("hello "), who))
	return must(t)(Styled(s, name, link, badge, Text("")))
}

func TestWireRoundTrip(t *testing.T) {
	doc := everyKind(t)
	cases := []struct {
		name string
		opts []CodecOption
	}{
		{"yaml", nil},
		{"yaml brackets", []CodecOption{WithEncodeOptions(encode.EncodeBrackets(true))}},
		{"yaml brackets wire", []CodecOption{WithEncodeOptions(encode.EncodeBrackets(true), encode.EncodeWire(true))}},
		{"ir", []CodecOption{
			WithEncodeOptions(encode.EncodeFormat(format.IRFormat)),
			WithParseOptions(parse.ParseFormat(format.IRFormat)),
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(buf, doc, c.opts...); err != nil {
				t.Fatal(err)
			}
			got, err := Decode(buf.Bytes(), c.opts...)
			if err != nil {
				t.Fatalf("decode %s: %v", buf.String(), err)
			}
			if !got.DescendantEqual(doc) {
				t.Errorf("got %s want %s", got, doc)
			}
		})
	}
}

func TestUntypedPropertyRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		opts []CodecOption
	}{
		{"yaml", nil},
		{"yaml brackets", []CodecOption{WithEncodeOptions(encode.EncodeBrackets(true))}},
		{"yaml brackets wire", []CodecOption{WithEncodeOptions(encode.EncodeBrackets(true), encode.EncodeWire(true))}},
	}
	for _, text := range []string{"x-i: 12", "x-b: true", "x-f: 1.5", "x-f: 1.0", `x-s: "hi"`, "x-w: 4px"} {
		s, err := style.Parse(property.Default(), text)
		if err != nil {
			t.Fatal(err)
		}
		doc := must(t)(Styled(s, Text("a"), Text("b")))
		for _, c := range cases {
			t.Run(text+"/"+c.name, func(t *testing.T) {
				buf := bytes.NewBuffer(nil)
				if err := Encode(buf, doc, c.opts...); err != nil {
					t.Fatal(err)
				}
				got, err := Decode(buf.Bytes(), c.opts...)
				if err != nil {
					t.Fatalf("decode %s: %v", buf.String(), err)
				}
				if !got.DescendantEqual(doc) {
					t.Errorf("got %s want %s", got, doc)
				}
			})
		}
	}
}

func TestToIRFromIR(t *testing.T) {
	doc := everyKind(t)
	err := doc.Walk(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		node, err := ToIR(n)
		if err != nil {
			return false, err
		}
		got, err := FromIR(node)
		if err != nil {
			return false, err
		}
		if !got.DescendantEqual(n) {
			t.Errorf("%s: got %s want %s", n.Path(), got, n)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestEncodeShape(t *testing.T) {
	link := must(t)(Hyperlink("https://example.com", Text("go")))
	doc := must(t)(Badge("b", link, must(t)(Flag("au"))))
	want := `!badge {badgeText: b, children: [!hyperlink {url: "https://example.com", children: [go]}, !flag AU]}`
	if got := doc.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	empty := must(t)(Join())
	if got := empty.String(); got != "!style {}" {
		t.Errorf("empty join: %s", got)
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want func(t *testing.T) *Node
	}{
		{
			name: "text",
			in:   "hello",
			want: func(*testing.T) *Node { return Text("hello") },
		},
		{
			name: "array joins",
			in:   "[a, !flag fr]",
			want: func(t *testing.T) *Node { return must(t)(Join(Text("a"), must(t)(Flag("FR")))) },
		},
		{
			name: "single element array",
			in:   "[a]",
			want: func(*testing.T) *Node { return Text("a") },
		},
		{
			name: "style without styles",
			in:   "!style {children: [a]}",
			want: func(*testing.T) *Node { return Text("a") },
		},
		{
			name: "style",
			in:   "!style {styles: {color: red}, children: [a]}",
			want: func(t *testing.T) *Node {
				s, err := style.Set(style.Empty, property.Color, value.RGB(255, 0, 0))
				if err != nil {
					t.Fatal(err)
				}
				return must(t)(Styled(s, Text("a")))
			},
		},
		{
			name: "badge without children",
			in:   "!badge {badgeText: x}",
			want: func(t *testing.T) *Node { return must(t)(Badge("x")) },
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Decode([]byte(c.in))
			if err != nil {
				t.Fatal(err)
			}
			if want := c.want(t); !got.DescendantEqual(want) {
				t.Errorf("got %s want %s", got, want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"empty", "", errs.ErrInvalidArgument},
		{"missing badge text", "!badge {children: []}", errs.ErrMissingRequiredProperty},
		{"missing url", "!hyperlink {children: [a]}", errs.ErrMissingRequiredProperty},
		{"missing style name", "!styleName {}", errs.ErrMissingRequiredProperty},
		{"unknown key", "!badge {badgeText: x, extra: 1}", errs.ErrUnhandledCase},
		{"payload key of other kind", "!style {url: x}", errs.ErrUnhandledCase},
		{"unknown tag", "!bold x", errs.ErrUnhandledCase},
		{"untagged number", "12", errs.ErrUnhandledCase},
		{"untagged object", "{a: b}", errs.ErrUnhandledCase},
		{"bad flag", "!flag aus", errs.ErrValidation},
		{"leaf object", "!image {url: x}", errs.ErrValidation},
		{"container string", "!badge x", errs.ErrValidation},
		{"children not array", "!badge {badgeText: x, children: a}", errs.ErrValidation},
		{"payload not string", "!hyperlink {url: [x]}", errs.ErrValidation},
		{"bad style value", "!style {styles: {opacity: 2}}", errs.ErrValidation},
		{"styles not object", "!style {styles: [a]}", errs.ErrValidation},
		{"bad child", "[a, !flag x1]", errs.ErrValidation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode([]byte(c.in))
			if !errors.Is(err, c.err) {
				t.Errorf("got %v want %v", err, c.err)
			}
		})
	}
}

func TestDecodeJSONRejectsTags(t *testing.T) {
	doc := must(t)(Badge("b", Text("x")))
	json := WithEncodeOptions(encode.EncodeFormat(format.JSONFormat))
	if err := Encode(bytes.NewBuffer(nil), doc, json); !errors.Is(err, encode.ErrEncoding) {
		t.Errorf("got %v", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(buf, Text("plain"), json); err != nil {
		t.Fatal(err)
	}
	got, err := Decode(buf.Bytes(), WithParseOptions(parse.ParseJSON()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Value() != "plain" {
		t.Errorf("got %s", got)
	}
}

func TestDiff(t *testing.T) {
	a := must(t)(Badge("b", Text("one"), Text("two")))
	same := must(t)(Badge("b", Text("one"), Text("two")))
	got, err := Diff(a, same)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("diff of equal documents:\n%s", got)
	}
	b := must(t)(a.SetChild(1, Text("three")))
	got, err = Diff(a, b.Root())
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		" !badge",
		" badgeText: b",
		" children:",
		"   - one",
		"-  - two",
		"+  - three",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
