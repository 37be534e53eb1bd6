package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/ir"
)

const lengthType = "length"

// LengthKind is the unit kind of a Length.
type LengthKind int

const (
	NoneLength LengthKind = iota
	NormalLength
	NumberLength
	PixelLength
)

func (k LengthKind) String() string {
	switch k {
	case NoneLength:
		return "none"
	case NormalLength:
		return "normal"
	case NumberLength:
		return "number"
	case PixelLength:
		return "pixel"
	}
	return "<unknown length kind>"
}

// Length is a css-like length. Value is meaningful for NumberLength and
// PixelLength only.
type Length struct {
	Kind  LengthKind
	Value float64
}

var (
	None   = Length{Kind: NoneLength}
	Normal = Length{Kind: NormalLength}
)

func Pixels(v float64) Length { return Length{Kind: PixelLength, Value: v} }
func Number(v float64) Length { return Length{Kind: NumberLength, Value: v} }

// ParseLength parses "none", "normal", a bare number or a number with a
// "px" suffix.
func ParseLength(s string) (Length, error) {
	v := strings.TrimSpace(s)
	switch v {
	case "none":
		return None, nil
	case "normal":
		return Normal, nil
	}
	kind := NumberLength
	if num, ok := strings.CutSuffix(v, "px"); ok {
		v, kind = num, PixelLength
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || v == "" || strings.ContainsAny(v, "eExX_") {
		return Length{}, fmt.Errorf("%w: bad length %q", errs.ErrParse, s)
	}
	return Length{Kind: kind, Value: f}, nil
}

func (l Length) String() string {
	switch l.Kind {
	case NoneLength:
		return "none"
	case NormalLength:
		return "normal"
	case PixelLength:
		return strconv.FormatFloat(l.Value, 'f', -1, 64) + "px"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64)
}

func (l Length) TypeName() string { return lengthType }

func (l Length) ToIR() *ir.Node { return ir.FromString(l.String()) }

// LengthFromIR decodes a length from its string form. Bare numbers are
// number lengths.
func LengthFromIR(node *ir.Node) (Length, error) {
	if node != nil && node.Type == ir.NumberType {
		f, _ := node.NumberFloat()
		return Number(f), nil
	}
	s, err := stringFromIR(lengthType, node)
	if err != nil {
		return Length{}, err
	}
	return ParseLength(s)
}
