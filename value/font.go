package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/ir"
)

const (
	fontWeightType = "font-weight"
	fontSizeType   = "font-size"
	fontFamilyType = "font-family"
)

// FontWeight is a numeric weight in [1, 1000].
type FontWeight int

const (
	NormalWeight FontWeight = 400
	BoldWeight   FontWeight = 700
)

func NewFontWeight(v int) (FontWeight, error) {
	if v < 1 || v > 1000 {
		return 0, fmt.Errorf("%w: font weight %d not in [1, 1000]", errs.ErrValidation, v)
	}
	return FontWeight(v), nil
}

func ParseFontWeight(s string) (FontWeight, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "normal":
		return NormalWeight, nil
	case "bold":
		return BoldWeight, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: bad font weight %q", errs.ErrParse, s)
	}
	return NewFontWeight(n)
}

func (w FontWeight) Valid() bool { return w >= 1 && w <= 1000 }

func (w FontWeight) String() string {
	switch w {
	case NormalWeight:
		return "normal"
	case BoldWeight:
		return "bold"
	}
	return strconv.Itoa(int(w))
}

func (w FontWeight) TypeName() string { return fontWeightType }

func (w FontWeight) ToIR() *ir.Node { return ir.FromInt(int64(w)) }

func FontWeightFromIR(node *ir.Node) (FontWeight, error) {
	if node != nil && node.Type == ir.StringType {
		return ParseFontWeight(node.String)
	}
	n, ok := numberInt(node)
	if !ok {
		return 0, wireTypeError(fontWeightType, node)
	}
	return NewFontWeight(int(n))
}

// FontSize is a positive size in pixels.
type FontSize int

func NewFontSize(v int) (FontSize, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%w: font size %d must be positive", errs.ErrValidation, v)
	}
	return FontSize(v), nil
}

func ParseFontSize(s string) (FontSize, error) {
	v := strings.TrimSuffix(strings.TrimSpace(s), "px")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: bad font size %q", errs.ErrParse, s)
	}
	return NewFontSize(n)
}

func (s FontSize) Valid() bool { return s > 0 }

func (s FontSize) String() string { return strconv.Itoa(int(s)) + "px" }

func (s FontSize) TypeName() string { return fontSizeType }

func (s FontSize) ToIR() *ir.Node { return ir.FromInt(int64(s)) }

func FontSizeFromIR(node *ir.Node) (FontSize, error) {
	if node != nil && node.Type == ir.StringType {
		return ParseFontSize(node.String)
	}
	n, ok := numberInt(node)
	if !ok {
		return 0, wireTypeError(fontSizeType, node)
	}
	return NewFontSize(int(n))
}

// FontFamily is a single non-empty family name.
type FontFamily string

func NewFontFamily(name string) (FontFamily, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: empty font family", errs.ErrValidation)
	}
	return FontFamily(name), nil
}

// ParseFontFamily accepts a quoted or bare name.
func ParseFontFamily(s string) (FontFamily, error) {
	name, err := Unquote(s)
	if err != nil {
		return "", err
	}
	return NewFontFamily(name)
}

func (f FontFamily) String() string { return Quote(string(f)) }

func (f FontFamily) TypeName() string { return fontFamilyType }

func (f FontFamily) ToIR() *ir.Node { return ir.FromString(string(f)) }

func FontFamilyFromIR(node *ir.Node) (FontFamily, error) {
	s, err := stringFromIR(fontFamilyType, node)
	if err != nil {
		return "", err
	}
	return NewFontFamily(s)
}

func numberInt(node *ir.Node) (int64, bool) {
	if node == nil {
		return 0, false
	}
	return node.NumberInt()
}
