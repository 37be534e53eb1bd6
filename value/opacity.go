package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/ir"
)

const opacityType = "opacity"

// Opacity is in [0, 1].
type Opacity float64

const (
	Transparent Opacity = 0
	Opaque      Opacity = 1
)

func NewOpacity(v float64) (Opacity, error) {
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: opacity %v not in [0, 1]", errs.ErrValidation, v)
	}
	return Opacity(v), nil
}

func ParseOpacity(s string) (Opacity, error) {
	v := strings.TrimSpace(s)
	switch v {
	case "transparent":
		return Transparent, nil
	case "opaque":
		return Opaque, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad opacity %q", errs.ErrParse, s)
	}
	return NewOpacity(f)
}

func (o Opacity) Valid() bool { return o >= 0 && o <= 1 }

func (o Opacity) String() string {
	switch o {
	case Transparent:
		return "transparent"
	case Opaque:
		return "opaque"
	}
	return strconv.FormatFloat(float64(o), 'f', -1, 64)
}

func (o Opacity) TypeName() string { return opacityType }

func (o Opacity) ToIR() *ir.Node { return ir.FromFloat(float64(o)) }

func OpacityFromIR(node *ir.Node) (Opacity, error) {
	if node != nil && node.Type == ir.StringType {
		return ParseOpacity(node.String)
	}
	if node == nil {
		return 0, wireTypeError(opacityType, node)
	}
	f, ok := node.NumberFloat()
	if !ok {
		return 0, wireTypeError(opacityType, node)
	}
	return NewOpacity(f)
}
