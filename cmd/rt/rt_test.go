package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/richtext/encode"
	"github.com/signadot/richtext/tree"

	"github.com/scott-cotton/cli"
)

func TestValueFunc(t *testing.T) {
	values := map[string]*tree.Node{}
	for _, a := range []string{"who=Ada", "flag=!flag nz", "blank="} {
		if err := valueFunc(values, a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	if got := values["who"]; got.Kind() != tree.TextKind || got.Value() != "Ada" {
		t.Errorf("who: %s", got)
	}
	if got := values["flag"]; got.Kind() != tree.FlagKind || got.Value() != "NZ" {
		t.Errorf("flag: %s", got)
	}
	if got := values["blank"]; got.Kind() != tree.TextKind || got.Value() != "" {
		t.Errorf("blank: %s", got)
	}
	for _, bad := range []string{"noequals", "bad name=x", "x=!flag abc"} {
		if err := valueFunc(values, bad); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%s: %v", bad, err)
		}
	}
}

func TestFromAny(t *testing.T) {
	badge, err := tree.Badge("b", tree.Text("x"))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"s", "s"},
		{true, "true"},
		{3, "3"},
		{1.5, "1.5"},
		{[]any{"a", 1}, "[a, 1]"},
		{map[string]any{"b": 1, "a": "x"}, "{a: x, b: 1}"},
		{badge, "!badge {badgeText: b, children: [x]}"},
		{[]*tree.Node{tree.Text("a"), badge}, "[a, !badge {badgeText: b, children: [x]}]"},
	}
	for _, c := range cases {
		node, err := fromAny(c.in)
		if err != nil {
			t.Fatal(err)
		}
		got := encode.MustString(node, encode.EncodeBrackets(true), encode.EncodeWire(true))
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%v (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestWriteDiff(t *testing.T) {
	d := " a\n-b\n+c\n"
	buf := bytes.NewBuffer(nil)
	if err := writeDiff(buf, d, false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != d {
		t.Errorf("got %q", buf.String())
	}
}
