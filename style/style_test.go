package style

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/property"
	"github.com/signadot/richtext/value"
)

func mustParse(t *testing.T, text string) *Style {
	t.Helper()
	s, err := Parse(property.Default(), text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return s
}

func TestSetBold(t *testing.T) {
	s, err := Set(Empty, property.FontWeight, value.BoldWeight)
	if err != nil {
		t.Fatal(err)
	}
	w, ok := Get(s, property.FontWeight)
	if !ok || w != value.BoldWeight {
		t.Errorf("got %v %v", w, ok)
	}
	if s.Len() != 1 {
		t.Errorf("got %d entries", s.Len())
	}
	if !Empty.IsEmpty() || Empty.Len() != 0 {
		t.Error("Empty changed")
	}
}

func TestSetNoOp(t *testing.T) {
	s := mustParse(t, "color: red; margin-top: 4px")
	same, err := s.Set(property.Color.Name, value.RGB(255, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if same != s {
		t.Error("setting an equal value allocated")
	}
	same, _ = s.SetText(property.MarginTop.Name, "4px")
	if same != s {
		t.Error("setting equal text allocated")
	}
	changed, _ := s.SetText(property.MarginTop.Name, "5px")
	if changed == s || changed.Len() != 2 {
		t.Errorf("got %s", changed)
	}
}

func TestSetValidation(t *testing.T) {
	if _, err := Empty.Set(property.FontWeight.Name, "bold"); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("wrong type: %v", err)
	}
	if _, err := Empty.Set(property.Opacity.Name, value.Opacity(1.5)); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("out of range: %v", err)
	}
	if _, err := Empty.SetText(property.Color.Name, "#12"); !errors.Is(err, errs.ErrParse) {
		t.Errorf("bad color: %v", err)
	}
	if _, err := Empty.Set(property.All, "x"); !errors.Is(err, errs.ErrUnsupportedOperation) {
		t.Errorf("set all: %v", err)
	}
	if _, err := Empty.Set(nil, "x"); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("nil name: %v", err)
	}
}

func TestRemove(t *testing.T) {
	s := mustParse(t, "color: red; opacity: 0.5")
	if s.Remove(property.FontSize.Name) != s {
		t.Error("removing absent property allocated")
	}
	one := s.Remove(property.Color.Name)
	if one.Len() != 1 || one.Has(property.Color.Name) {
		t.Errorf("got %s", one)
	}
	if one.Remove(property.Opacity.Name) != Empty {
		t.Error("removing last property did not give Empty")
	}
	if s.Remove(property.All) != Empty {
		t.Error("removing all did not give Empty")
	}
	m := mustParse(t, "margin: 3px; color: blue")
	if got := m.Remove(property.Margin.Name); got.Len() != 1 {
		t.Errorf("shorthand remove left %s", got)
	}
}

func TestMerge(t *testing.T) {
	a := mustParse(t, "color: red; font-weight: bold")
	b := mustParse(t, "color: blue; opacity: 0.5")
	m := a.Merge(b)
	for _, n := range []*property.Name{property.Color.Name, property.FontWeight.Name, property.Opacity.Name} {
		want, ok := a.Get(n)
		if !ok {
			want, _ = b.Get(n)
		}
		if got, _ := m.Get(n); got != want {
			t.Errorf("%s: got %v want %v", n, got, want)
		}
	}
	if a.Merge(a) != a {
		t.Error("a.Merge(a) != a")
	}
	if Empty.Merge(b) != b {
		t.Error("Empty.Merge(b) != b")
	}
	if a.Merge(Empty) != a {
		t.Error("a.Merge(Empty) != a")
	}
	covered := mustParse(t, "color: green")
	if a.Merge(covered) != a {
		t.Error("covering receiver allocated")
	}
	if b.Merge(a).Equal(a.Merge(b)) {
		t.Error("merge is symmetric")
	}
}

func TestSetTopLeftRightBottom(t *testing.T) {
	names := [4]*property.Name{
		property.BorderTopWidth.Name, property.BorderLeftWidth.Name,
		property.BorderRightWidth.Name, property.BorderBottomWidth.Name,
	}
	s, err := Empty.SetTopLeftRightBottom(names, value.Pixels(5))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range s.Entries() {
		got = append(got, e.Name.String()+"="+Text(e.Value))
	}
	want := []string{"border-bottom-width=5px", "border-left-width=5px", "border-right-width=5px", "border-top-width=5px"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if w, _ := s.Border(All).Width(); w != value.Pixels(5) {
		t.Errorf("shorthand width %v", w)
	}
	if again, _ := s.SetTopLeftRightBottom(names, value.Pixels(5)); again != s {
		t.Error("no-op batch set allocated")
	}
}

func TestParseAndString(t *testing.T) {
	reg := property.NewRegistry()
	text := `color: #ff000080; font-family: "Inter Tight"; margin: 2px; text-overflow: ellipsis; hyphenate-character: "-"; x-level: 3`
	s, err := Parse(reg, text)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 9 {
		t.Errorf("got %d properties: %s", s.Len(), s)
	}
	back, err := Parse(reg, s.String())
	if err != nil {
		t.Fatalf("reparse %q: %v", s.String(), err)
	}
	if !back.Equal(s) {
		t.Errorf("round trip:\n%s\n%s", s, back)
	}
	n, _ := reg.Get("x-level")
	if v, _ := s.Get(n); v != int64(3) {
		t.Errorf("untyped value %#v", v)
	}
	if _, err := Parse(reg, "color: red; bad--name: 1"); !errors.Is(err, errs.ErrInvalidName) {
		t.Errorf("bad name: %v", err)
	}
	if _, err := Parse(reg, "line-height: 3em"); !errors.Is(err, errs.ErrParse) {
		t.Errorf("bad length: %v", err)
	}
}

func TestIR(t *testing.T) {
	reg := property.NewRegistry()
	s, err := Parse(reg, "font-size: 12px; border-style: solid; x-tint: rgb(1,2,3); opacity: 0.25")
	if err != nil {
		t.Fatal(err)
	}
	node, err := s.ToIR()
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromIR(reg, node)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(s) {
		t.Errorf("round trip: %s vs %s", back, s)
	}
}

func TestBoxEdge(t *testing.T) {
	flips := map[BoxEdge]BoxEdge{Top: Bottom, Bottom: Top, Left: Right, Right: Left, All: All}
	for e, want := range flips {
		if got := e.Flip(); got != want {
			t.Errorf("%s.Flip() = %s", e, got)
		}
		if e.Flip().Flip() != e {
			t.Errorf("%s does not flip back", e)
		}
		parsed, err := ParseBoxEdge(e.String())
		if err != nil || parsed != e {
			t.Errorf("parse %s: %v %v", e, parsed, err)
		}
	}
	if _, err := ParseBoxEdge("middle"); !errors.Is(err, errs.ErrParse) {
		t.Errorf("bad edge: %v", err)
	}
}

func TestEdgeViews(t *testing.T) {
	b, err := Empty.Border(Top).SetColor(value.Black)
	if err != nil {
		t.Fatal(err)
	}
	if c, ok := b.Style.Get(property.BorderTopColor.Name); !ok || c != value.Black {
		t.Errorf("top color %v", c)
	}
	if _, ok := b.Flip().Color(); ok {
		t.Error("bottom color set")
	}
	same, _ := b.SetColor(value.Black)
	if same.Style != b.Style {
		t.Error("no-op edge set allocated")
	}
	b, _ = b.SetLineStyle(value.BorderStyleDashed)
	if ls, _ := b.LineStyle(); ls != value.BorderStyleDashed {
		t.Errorf("line style %v", ls)
	}
	if _, err := b.SetWidth(value.Normal); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("normal border width: %v", err)
	}

	all, _ := Empty.Margin(All).SetLength(value.Pixels(8))
	for _, e := range []BoxEdge{Top, Right, Bottom, Left} {
		if l, _ := all.Style.Margin(e).Length(); l != value.Pixels(8) {
			t.Errorf("margin %s = %v", e, l)
		}
	}
	left, _ := all.Style.Margin(Left).SetLength(value.Pixels(1))
	if _, ok := left.Style.Margin(All).Length(); ok {
		t.Error("margin shorthand set with unequal edges")
	}
	if l, _ := left.Flip().Length(); l != value.Pixels(8) {
		t.Errorf("right margin %v", l)
	}

	p, _ := Padding{Edge: Bottom}.SetLength(value.Pixels(2))
	if !p.Style.Has(property.PaddingBottom.Name) || p.Style.Len() != 1 {
		t.Errorf("padding %s", p.Style)
	}
}

func TestApplyJSONPatch(t *testing.T) {
	reg := property.NewRegistry()
	s := mustParse(t, "color: red; font-weight: bold")
	patch := []byte(`[
		{"op": "replace", "path": "/color", "value": "#00ff00"},
		{"op": "remove", "path": "/font-weight"},
		{"op": "add", "path": "/opacity", "value": 0.5}
	]`)
	got, err := ApplyJSONPatch(reg, s, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, "color: #00ff00; opacity: 0.5")
	if !got.Equal(want) {
		t.Errorf("got %s want %s", got, want)
	}
	same, err := ApplyJSONPatch(reg, s, []byte(`[{"op": "test", "path": "/font-weight", "value": 700}]`))
	if err != nil || same != s {
		t.Errorf("test op changed style: %v", err)
	}
	if _, err := ApplyJSONPatch(reg, s, []byte(`[{"op": "add", "path": "/font-weight", "value": 5000}]`)); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("invalid result: %v", err)
	}
	if _, err := ApplyJSONPatch(reg, s, []byte(`{`)); !errors.Is(err, errs.ErrParse) {
		t.Errorf("bad patch: %v", err)
	}
}
