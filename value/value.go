package value

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/ir"
)

// Value is a typed property value.
type Value interface {
	fmt.Stringer
	// TypeName names the type on the wire, e.g. "color".
	TypeName() string
	ToIR() *ir.Node
}

// Codec parses and decodes one Value type.
type Codec struct {
	TypeName string
	Parse    func(string) (Value, error)
	FromIR   func(*ir.Node) (Value, error)
}

func codecOf[T Value](name string, parse func(string) (T, error), fromIR func(*ir.Node) (T, error)) *Codec {
	return &Codec{
		TypeName: name,
		Parse: func(s string) (Value, error) {
			return parse(s)
		},
		FromIR: func(n *ir.Node) (Value, error) {
			return fromIR(n)
		},
	}
}

var codecs = func() map[string]*Codec {
	res := map[string]*Codec{}
	for _, c := range []*Codec{
		codecOf(colorType, ParseColor, ColorFromIR),
		codecOf(lengthType, ParseLength, LengthFromIR),
		codecOf(fontWeightType, ParseFontWeight, FontWeightFromIR),
		codecOf(fontSizeType, ParseFontSize, FontSizeFromIR),
		codecOf(fontFamilyType, ParseFontFamily, FontFamilyFromIR),
		codecOf(opacityType, ParseOpacity, OpacityFromIR),
		codecOf(textOverflowType, ParseTextOverflow, TextOverflowFromIR),
	} {
		res[c.TypeName] = c
	}
	for _, c := range enumCodecs() {
		res[c.TypeName] = c
	}
	return res
}()

// CodecFor returns the codec for a wire type name.
func CodecFor(typeName string) (*Codec, bool) {
	c, ok := codecs[typeName]
	return c, ok
}

// TypeNames returns the names of all value types, sorted.
func TypeNames() []string {
	res := make([]string, 0, len(codecs))
	for name := range codecs {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// FromIR decodes a value of the named type.
func FromIR(typeName string, node *ir.Node) (Value, error) {
	c, ok := codecs[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: unknown value type %q", errs.ErrUnhandledCase, typeName)
	}
	return c.FromIR(node)
}

// Unquote returns the contents of a double quoted string, or s itself if it
// is not quoted.
func Unquote(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s, nil
	}
	res, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("%w: bad string %s", errs.ErrParse, s)
	}
	return res, nil
}

// Quote returns s as a double quoted string.
func Quote(s string) string {
	return strconv.Quote(s)
}

func stringFromIR(typeName string, node *ir.Node) (string, error) {
	if node == nil || node.Type != ir.StringType {
		return "", wireTypeError(typeName, node)
	}
	return node.String, nil
}

func wireTypeError(typeName string, node *ir.Node) error {
	if node == nil {
		return fmt.Errorf("%w: %s: missing value", errs.ErrValidation, typeName)
	}
	return fmt.Errorf("%w: %s: unexpected %s at %s", errs.ErrValidation, typeName, node.Type, node.Path())
}
