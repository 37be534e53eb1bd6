package property

import (
	"fmt"

	"github.com/signadot/richtext/errs"
)

const maxNameLen = 255

// Name is a registered property name.
type Name struct {
	name    string
	index   int
	handler *Handler
	// top, left, right, bottom for shorthand names
	edges *[4]*Name
	// nil for well-known names, which every registry shares
	reg *Registry
}

func (n *Name) String() string      { return n.name }
func (n *Name) Index() int          { return n.index }
func (n *Name) Handler() *Handler   { return n.handler }
func (n *Name) IsShorthand() bool   { return n.edges != nil }
func (n *Name) GoString() string    { return fmt.Sprintf("property.Name(%q)", n.name) }
func (n *Name) sameAs(o *Name) bool { return n == o || (o != nil && n.name == o.name) }

// Edges returns the edge names of a shorthand in top, left, right, bottom
// order.
func (n *Name) Edges() ([4]*Name, bool) {
	if n.edges == nil {
		return [4]*Name{}, false
	}
	return *n.edges, true
}

// Typed is a name whose values have Go type T.
type Typed[T any] struct {
	*Name
}

// Value converts a stored value to T.
func (t Typed[T]) Value(v any) (T, bool) {
	res, ok := v.(T)
	return res, ok
}

// CheckName reports whether s may be used as a property name: 1 to 255
// letters, digits and '-', starting with a letter, with no "--" and no
// trailing '-'.
func CheckName(s string) error {
	if len(s) == 0 || len(s) > maxNameLen {
		return fmt.Errorf("%w: %q must have 1 to %d characters", errs.ErrInvalidName, s, maxNameLen)
	}
	if !isLetter(s[0]) {
		return fmt.Errorf("%w: %q must start with a letter", errs.ErrInvalidName, s)
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case isLetter(c), '0' <= c && c <= '9':
		case c == '-':
			if s[i-1] == '-' {
				return fmt.Errorf("%w: %q has consecutive separators", errs.ErrInvalidName, s)
			}
		default:
			return fmt.Errorf("%w: %q has invalid character %q", errs.ErrInvalidName, s, c)
		}
	}
	if s[len(s)-1] == '-' {
		return fmt.Errorf("%w: %q ends with a separator", errs.ErrInvalidName, s)
	}
	return nil
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
