package style

import (
	"fmt"
	"strings"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/property"
	"github.com/signadot/richtext/value"
)

// BoxEdge is a side of a box, or All of them.
type BoxEdge int

const (
	Top BoxEdge = iota
	Right
	Bottom
	Left
	All
)

var edgeNames = [...]string{Top: "top", Right: "right", Bottom: "bottom", Left: "left", All: "all"}

func (e BoxEdge) Valid() bool { return e >= Top && e <= All }

func (e BoxEdge) String() string {
	if !e.Valid() {
		return fmt.Sprintf("BoxEdge(%d)", int(e))
	}
	return edgeNames[e]
}

// Flip returns the opposite edge. All is its own opposite.
func (e BoxEdge) Flip() BoxEdge {
	switch e {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	}
	return e
}

func ParseBoxEdge(s string) (BoxEdge, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range edgeNames {
		if name == v {
			return BoxEdge(i), nil
		}
	}
	return 0, fmt.Errorf("%w: bad box edge %q", errs.ErrParse, s)
}

// edgeTable indexes typed names by BoxEdge.
type edgeTable[T any] [5]property.Typed[T]

func (t *edgeTable[T]) name(e BoxEdge) property.Typed[T] {
	if !e.Valid() {
		return t[All]
	}
	return t[e]
}

var (
	borderColors = edgeTable[value.Color]{
		Top: property.BorderTopColor, Right: property.BorderRightColor,
		Bottom: property.BorderBottomColor, Left: property.BorderLeftColor,
		All: property.BorderColor,
	}
	borderStyles = edgeTable[value.BorderStyle]{
		Top: property.BorderTopStyle, Right: property.BorderRightStyle,
		Bottom: property.BorderBottomStyle, Left: property.BorderLeftStyle,
		All: property.BorderStyle,
	}
	borderWidths = edgeTable[value.Length]{
		Top: property.BorderTopWidth, Right: property.BorderRightWidth,
		Bottom: property.BorderBottomWidth, Left: property.BorderLeftWidth,
		All: property.BorderWidth,
	}
	margins = edgeTable[value.Length]{
		Top: property.MarginTop, Right: property.MarginRight,
		Bottom: property.MarginBottom, Left: property.MarginLeft,
		All: property.Margin,
	}
	paddings = edgeTable[value.Length]{
		Top: property.PaddingTop, Right: property.PaddingRight,
		Bottom: property.PaddingBottom, Left: property.PaddingLeft,
		All: property.Padding,
	}
)

// Border views the border properties of one edge of a style.
type Border struct {
	Edge  BoxEdge
	Style *Style
}

// Border returns the border view of s for edge e.
func (s *Style) Border(e BoxEdge) Border { return Border{Edge: e, Style: s} }

func (b Border) Color() (value.Color, bool) {
	return Get(orEmpty(b.Style), borderColors.name(b.Edge))
}

func (b Border) LineStyle() (value.BorderStyle, bool) {
	return Get(orEmpty(b.Style), borderStyles.name(b.Edge))
}

func (b Border) Width() (value.Length, bool) {
	return Get(orEmpty(b.Style), borderWidths.name(b.Edge))
}

func (b Border) SetColor(c value.Color) (Border, error) {
	return b.with(Set(orEmpty(b.Style), borderColors.name(b.Edge), c))
}

func (b Border) SetLineStyle(ls value.BorderStyle) (Border, error) {
	return b.with(Set(orEmpty(b.Style), borderStyles.name(b.Edge), ls))
}

func (b Border) SetWidth(l value.Length) (Border, error) {
	return b.with(Set(orEmpty(b.Style), borderWidths.name(b.Edge), l))
}

// Flip returns the view of the opposite edge.
func (b Border) Flip() Border { return Border{Edge: b.Edge.Flip(), Style: b.Style} }

func (b Border) with(s *Style, err error) (Border, error) {
	if err != nil {
		return b, err
	}
	return Border{Edge: b.Edge, Style: s}, nil
}

// Margin views the margin of one edge of a style.
type Margin struct {
	Edge  BoxEdge
	Style *Style
}

func (s *Style) Margin(e BoxEdge) Margin { return Margin{Edge: e, Style: s} }

func (m Margin) Length() (value.Length, bool) {
	return Get(orEmpty(m.Style), margins.name(m.Edge))
}

func (m Margin) SetLength(l value.Length) (Margin, error) {
	s, err := Set(orEmpty(m.Style), margins.name(m.Edge), l)
	if err != nil {
		return m, err
	}
	return Margin{Edge: m.Edge, Style: s}, nil
}

func (m Margin) Flip() Margin { return Margin{Edge: m.Edge.Flip(), Style: m.Style} }

// Padding views the padding of one edge of a style.
type Padding struct {
	Edge  BoxEdge
	Style *Style
}

func (s *Style) Padding(e BoxEdge) Padding { return Padding{Edge: e, Style: s} }

func (p Padding) Length() (value.Length, bool) {
	return Get(orEmpty(p.Style), paddings.name(p.Edge))
}

func (p Padding) SetLength(l value.Length) (Padding, error) {
	s, err := Set(orEmpty(p.Style), paddings.name(p.Edge), l)
	if err != nil {
		return p, err
	}
	return Padding{Edge: p.Edge, Style: s}, nil
}

func (p Padding) Flip() Padding { return Padding{Edge: p.Edge.Flip(), Style: p.Style} }

func orEmpty(s *Style) *Style {
	if s == nil {
		return Empty
	}
	return s
}
