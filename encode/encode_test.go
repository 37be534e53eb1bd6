package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/richtext/format"
	"github.com/signadot/richtext/ir"
)

func sampleDoc() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("x")})},
		{Key: ir.FromString("b"), Val: ir.FromMap(nil)},
	})
}

func TestEncode(t *testing.T) {
	badge := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("badgeText"), Val: ir.FromString("b")},
		{Key: ir.FromString("children"), Val: ir.FromSlice([]*ir.Node{ir.FromString("one"), ir.FromString("two")})},
	}).WithTag("!badge")
	items := ir.FromSlice([]*ir.Node{
		ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("a"), Val: ir.FromInt(1)},
			{Key: ir.FromString("b"), Val: ir.FromBool(false)},
		}),
		ir.Null(),
	})
	cases := []struct {
		name string
		node *ir.Node
		opts []EncodeOption
		want string
	}{
		{"tagged block", badge, nil, "!badge\nbadgeText: b\nchildren:\n  - one\n  - two\n"},
		{"tagged flow", badge, []EncodeOption{EncodeBrackets(true), EncodeWire(true)},
			"!badge {badgeText: b, children: [one, two]}\n"},
		{"array of objects", items, nil, "- a: 1\n  b: false\n- null\n"},
		{"flow", sampleDoc(), []EncodeOption{EncodeBrackets(true)}, "{\n  a: [\n    1,\n    x\n  ],\n  b: {}\n}\n"},
		{"flow indent", sampleDoc(), []EncodeOption{EncodeBrackets(true), Indent(1)}, "{\n a: [\n  1,\n  x\n ],\n b: {}\n}\n"},
		{"wire", sampleDoc(), []EncodeOption{EncodeBrackets(true), EncodeWire(true)}, "{a: [1, x], b: {}}\n"},
		{"json", sampleDoc(), []EncodeOption{EncodeFormat(format.JSONFormat)}, "{\n  \"a\": [\n    1,\n    \"x\"\n  ],\n  \"b\": {}\n}\n"},
		{"json wire", sampleDoc(), []EncodeOption{EncodeFormat(format.JSONFormat), EncodeWire(true)}, "{\"a\":[1,\"x\"],\"b\":{}}\n"},
		{"float", ir.FromFloat(0.25), nil, "0.25\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(c.node, buf, c.opts...); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != c.want {
				t.Errorf("got\n%q\nwant\n%q", got, c.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"", `""`},
		{"true", `"true"`},
		{"No", `"No"`},
		{"12", `"12"`},
		{"1.5e3", `"1.5e3"`},
		{"a: b", `"a: b"`},
		{"-x", `"-x"`},
		{"!tag", `"!tag"`},
		{"#ff0000", `"#ff0000"`},
		{"trailing ", `"trailing "`},
		{"line\nbreak", `"line\nbreak"`},
	}
	for _, c := range cases {
		if got := MustString(ir.FromString(c.in)); got != c.want {
			t.Errorf("%q: got %s want %s", c.in, got, c.want)
		}
	}
}

func TestJSONRejectsTags(t *testing.T) {
	node := ir.FromString("AU").WithTag("!flag")
	err := Encode(node, bytes.NewBuffer(nil), EncodeFormat(format.JSONFormat))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("got %v", err)
	}
}

func TestColors(t *testing.T) {
	c := &Colors{Default: func(s string, _ ...any) string { return "<" + s + ">" }}
	node := ir.FromString("AU").WithTag("!flag")
	got := MustString(node, EncodeBrackets(true), EncodeColors(c))
	if want := "<!flag> <AU>"; got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if NewColors().Color(ir.StringType, ValueColor, "x") == "" {
		t.Error("empty colored string")
	}
}

func TestFormatFromOpts(t *testing.T) {
	if got := FormatFromOpts(EncodeWire(true), EncodeFormat(format.IRFormat)); got != format.IRFormat {
		t.Errorf("got %s", got)
	}
}
