package value

import (
	"fmt"
	"strings"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/ir"
)

const textOverflowType = "text-overflow"

// TextOverflow is clip, ellipsis or a custom marker string.
type TextOverflow struct {
	custom string
}

var (
	Clip     = TextOverflow{}
	Ellipsis = TextOverflow{custom: "…"}
)

// OverflowString returns a TextOverflow rendering s at the clip edge.
func OverflowString(s string) (TextOverflow, error) {
	if s == "" {
		return TextOverflow{}, fmt.Errorf("%w: empty text overflow string", errs.ErrValidation)
	}
	return TextOverflow{custom: s}, nil
}

func ParseTextOverflow(s string) (TextOverflow, error) {
	v := strings.TrimSpace(s)
	switch v {
	case "clip":
		return Clip, nil
	case "ellipsis":
		return Ellipsis, nil
	}
	if !strings.HasPrefix(v, `"`) {
		return TextOverflow{}, fmt.Errorf("%w: bad text overflow %q", errs.ErrParse, s)
	}
	str, err := Unquote(v)
	if err != nil {
		return TextOverflow{}, err
	}
	return OverflowString(str)
}

// Marker returns the string drawn at the clip edge, empty for clip.
func (t TextOverflow) Marker() string { return t.custom }

func (t TextOverflow) String() string {
	switch t {
	case Clip:
		return "clip"
	case Ellipsis:
		return "ellipsis"
	}
	return Quote(t.custom)
}

func (t TextOverflow) TypeName() string { return textOverflowType }

func (t TextOverflow) ToIR() *ir.Node { return ir.FromString(t.String()) }

func TextOverflowFromIR(node *ir.Node) (TextOverflow, error) {
	s, err := stringFromIR(textOverflowType, node)
	if err != nil {
		return TextOverflow{}, err
	}
	return ParseTextOverflow(s)
}
