package property

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/ir"
	"github.com/signadot/richtext/value"
)

// Handler gives a property name its value semantics. Validate returns the
// canonical form of a value (for example, untyped ints become int64) and
// every other function produces or consumes validated values. Values must
// be comparable with ==.
type Handler struct {
	// Type describes the accepted values, e.g. "color" or
	// "length(pixel|normal)".
	Type     string
	Validate func(any) (any, error)
	Parse    func(string) (any, error)
	ToIR     func(any) (*ir.Node, error)
	FromIR   func(*ir.Node) (any, error)
}

// UntypedTag is the head of the wire tag carried by values of untyped
// properties.
const UntypedTag = "!untyped"

type validValue interface {
	value.Value
	Valid() bool
}

// EnumHandler accepts the members of an enumeration.
func EnumHandler[T validValue](parse func(string) (T, error), fromIR func(*ir.Node) (T, error)) *Handler {
	return valueHandler("", parse, fromIR, func(v T) error {
		if !v.Valid() {
			return fmt.Errorf("%w: %s is not a %s", errs.ErrValidation, v, v.TypeName())
		}
		return nil
	})
}

// ValueHandler accepts values of type T, checking Valid when T has it.
func ValueHandler[T value.Value](parse func(string) (T, error), fromIR func(*ir.Node) (T, error)) *Handler {
	return valueHandler("", parse, fromIR, func(v T) error {
		if vv, ok := any(v).(interface{ Valid() bool }); ok && !vv.Valid() {
			return fmt.Errorf("%w: %s out of range for %s", errs.ErrValidation, v, v.TypeName())
		}
		return nil
	})
}

// LengthHandler accepts lengths of the given kinds.
func LengthHandler(kinds ...value.LengthKind) *Handler {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	desc := strings.Join(names, "|")
	return valueHandler("length("+desc+")", value.ParseLength, value.LengthFromIR, func(l value.Length) error {
		if slices.Contains(kinds, l.Kind) {
			return nil
		}
		return fmt.Errorf("%w: length %s must be %s", errs.ErrValidation, l, desc)
	})
}

func valueHandler[T value.Value](typ string, parse func(string) (T, error), fromIR func(*ir.Node) (T, error), check func(T) error) *Handler {
	var zero T
	if typ == "" {
		typ = zero.TypeName()
	}
	validate := func(v any) (any, error) {
		t, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("%w: expected %s, got %T", errs.ErrValidation, typ, v)
		}
		if err := check(t); err != nil {
			return nil, err
		}
		return t, nil
	}
	return &Handler{
		Type:     typ,
		Validate: validate,
		Parse: func(s string) (any, error) {
			t, err := parse(s)
			if err != nil {
				return nil, err
			}
			return validate(t)
		},
		ToIR: func(v any) (*ir.Node, error) {
			vv, err := validate(v)
			if err != nil {
				return nil, err
			}
			return vv.(T).ToIR(), nil
		},
		FromIR: func(node *ir.Node) (any, error) {
			t, err := fromIR(node)
			if err != nil {
				return nil, err
			}
			return validate(t)
		},
	}
}

// StringHandler accepts non-empty strings. Text may be double quoted.
func StringHandler() *Handler {
	validate := func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string, got %T", errs.ErrValidation, v)
		}
		if s == "" {
			return nil, fmt.Errorf("%w: empty string", errs.ErrValidation)
		}
		return s, nil
	}
	return &Handler{
		Type:     "string",
		Validate: validate,
		Parse: func(text string) (any, error) {
			s, err := value.Unquote(text)
			if err != nil {
				return nil, err
			}
			return validate(s)
		},
		ToIR: func(v any) (*ir.Node, error) {
			s, err := validate(v)
			if err != nil {
				return nil, err
			}
			return ir.FromString(s.(string)), nil
		},
		FromIR: func(node *ir.Node) (any, error) {
			if node == nil || node.Type != ir.StringType {
				return nil, fmt.Errorf("%w: expected string", errs.ErrValidation)
			}
			return validate(node.String)
		},
	}
}

// UntypedHandler accepts strings, bools, integers, floats and comparable
// value.Value implementations.
func UntypedHandler() *Handler {
	return &Handler{
		Type:     "untyped",
		Validate: untypedValidate,
		Parse:    untypedParse,
		ToIR:     untypedToIR,
		FromIR:   untypedFromIR,
	}
}

func untypedValidate(v any) (any, error) {
	switch x := v.(type) {
	case string, bool, int64, float64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case float32:
		return float64(x), nil
	case value.Value:
		if !reflect.TypeOf(x).Comparable() {
			return nil, fmt.Errorf("%w: %T is not comparable", errs.ErrValidation, v)
		}
		return x, nil
	}
	return nil, fmt.Errorf("%w: unsupported untyped value %T", errs.ErrValidation, v)
}

func untypedParse(text string) (any, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, fmt.Errorf("%w: empty value", errs.ErrParse)
	}
	if s[0] == '"' {
		return value.Unquote(s)
	}
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return s, nil
}

func untypedTypeName(v any) string {
	switch x := v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case value.Value:
		return x.TypeName()
	}
	return ""
}

func untypedToIR(v any) (*ir.Node, error) {
	v, err := untypedValidate(v)
	if err != nil {
		return nil, err
	}
	var node *ir.Node
	switch x := v.(type) {
	case string:
		node = ir.FromString(x)
	case bool:
		node = ir.FromBool(x)
	case int64:
		node = ir.FromInt(x)
	case float64:
		node = ir.FromFloat(x)
	case value.Value:
		node = x.ToIR()
	}
	return node.WithTag(ir.TagCompose(UntypedTag, []string{untypedTypeName(v)}, "")), nil
}

func untypedFromIR(node *ir.Node) (any, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: missing value", errs.ErrValidation)
	}
	args, tagged := ir.TagGet(node.Tag, UntypedTag)
	if !tagged {
		return untypedInfer(node)
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: tag %s needs one type argument", errs.ErrUnhandledCase, node.Tag)
	}
	typ := args[0]
	switch typ {
	case "string":
		if node.Type == ir.StringType {
			return node.String, nil
		}
	case "bool":
		if node.Type == ir.BoolType {
			return node.Bool, nil
		}
		if node.Type == ir.StringType {
			if b, err := strconv.ParseBool(node.String); err == nil {
				return b, nil
			}
		}
	case "int":
		if i, ok := node.NumberInt(); ok {
			return i, nil
		}
		if node.Type == ir.StringType {
			if i, err := strconv.ParseInt(node.String, 10, 64); err == nil {
				return i, nil
			}
		}
	case "float":
		if f, ok := node.NumberFloat(); ok {
			return f, nil
		}
		if node.Type == ir.StringType {
			if f, err := strconv.ParseFloat(node.String, 64); err == nil {
				return f, nil
			}
		}
	default:
		return value.FromIR(typ, node)
	}
	return nil, fmt.Errorf("%w: %s value is a %s", errs.ErrValidation, typ, node.Type)
}

func untypedInfer(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if i, ok := node.NumberInt(); ok {
			return i, nil
		}
		if f, ok := node.NumberFloat(); ok {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: untyped value cannot be a %s at %s", errs.ErrValidation, node.Type, node.Path())
}

// VoidHandler rejects every value.
func VoidHandler() *Handler {
	fail := func() error {
		return fmt.Errorf("%w: property takes no value", errs.ErrUnsupportedOperation)
	}
	return &Handler{
		Type:     "void",
		Validate: func(any) (any, error) { return nil, fail() },
		Parse:    func(string) (any, error) { return nil, fail() },
		ToIR:     func(any) (*ir.Node, error) { return nil, fail() },
		FromIR:   func(*ir.Node) (any, error) { return nil, fail() },
	}
}
