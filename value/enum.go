package value

import (
	"fmt"
	"strings"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/ir"
)

// enum describes a keyword enumeration; values index names.
type enum struct {
	typeName string
	names    []string
}

func (e *enum) valid(i int) bool { return i >= 0 && i < len(e.names) }

func (e *enum) name(i int) string {
	if !e.valid(i) {
		return fmt.Sprintf("<bad %s %d>", e.typeName, i)
	}
	return e.names[i]
}

func enumValues[T ~int](e *enum) []T {
	res := make([]T, len(e.names))
	for i := range e.names {
		res[i] = T(i)
	}
	return res
}

func parseEnum[T ~int](e *enum, s string) (T, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range e.names {
		if name == v {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: bad %s %q, expected one of %s", errs.ErrParse, e.typeName, s, strings.Join(e.names, ", "))
}

func enumFromIR[T ~int](e *enum, node *ir.Node) (T, error) {
	s, err := stringFromIR(e.typeName, node)
	if err != nil {
		return 0, err
	}
	return parseEnum[T](e, s)
}
