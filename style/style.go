package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/ir"
	"github.com/signadot/richtext/property"
	"github.com/signadot/richtext/styletext"
	"github.com/signadot/richtext/value"
)

// Style is an immutable set of validated property values.
type Style struct {
	store *property.Store
}

// Empty is the style without properties.
var Empty = &Style{store: property.EmptyStore}

// FromStore returns the style over st.
func FromStore(st *property.Store) *Style {
	if st == nil || st.Len() == 0 {
		return Empty
	}
	return &Style{store: st}
}

// New builds a style from entries as property.FromEntries does.
func New(entries ...property.Entry) (*Style, error) {
	st, err := property.FromEntries(entries)
	if err != nil {
		return nil, err
	}
	return FromStore(st), nil
}

// derive wraps st, reusing s when st is its store.
func (s *Style) derive(st *property.Store) *Style {
	if st == s.store {
		return s
	}
	return FromStore(st)
}

func (s *Style) Store() *property.Store { return s.store }

func (s *Style) Len() int { return s.store.Len() }

func (s *Style) IsEmpty() bool { return s.store.Len() == 0 }

// Entries returns the properties in ascending index order.
func (s *Style) Entries() []property.Entry { return s.store.Entries() }

func (s *Style) Get(n *property.Name) (any, bool) {
	if n == nil {
		return nil, false
	}
	return s.store.Get(n)
}

func (s *Style) Has(n *property.Name) bool {
	_, ok := s.Get(n)
	return ok
}

// Get returns the value of n in s with its Go type.
func Get[T any](s *Style, n property.Typed[T]) (T, bool) {
	v, ok := s.Get(n.Name)
	if !ok {
		var zero T
		return zero, false
	}
	return n.Value(v)
}

// Set returns a style with n set to v. It returns s if n already has the
// value v.
func (s *Style) Set(n *property.Name, v any) (*Style, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil property name", errs.ErrInvalidArgument)
	}
	st, err := s.store.With(n, v)
	if err != nil {
		return nil, err
	}
	return s.derive(st), nil
}

// Set is the typed form of (*Style).Set.
func Set[T any](s *Style, n property.Typed[T], v T) (*Style, error) {
	return s.Set(n.Name, v)
}

// SetText parses text with the handler of n and sets the result.
func (s *Style) SetText(n *property.Name, text string) (*Style, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil property name", errs.ErrInvalidArgument)
	}
	v, err := n.Handler().Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n, err)
	}
	return s.Set(n, v)
}

// SetTopLeftRightBottom sets four edge names, in that order, to v with a
// single allocation.
func (s *Style) SetTopLeftRightBottom(names [4]*property.Name, v any) (*Style, error) {
	st, err := s.store.WithEdges(names, v)
	if err != nil {
		return nil, err
	}
	return s.derive(st), nil
}

// Remove returns a style without n. It returns s if n is not set, and
// Empty if n is the last property or property.All.
func (s *Style) Remove(n *property.Name) *Style {
	if n == nil {
		return s
	}
	return s.derive(s.store.Without(n))
}

// Merge returns a style with every property of s and, where s does not set
// a property, that of o. The receiver wins: s.Merge(o) is s when s sets
// every property o sets, and is o when s is empty.
func (s *Style) Merge(o *Style) *Style {
	if o == nil {
		return s
	}
	st := s.store.Merge(o.store)
	if st == o.store {
		return o
	}
	return s.derive(st)
}

func (s *Style) Equal(o *Style) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	return s.store.Equal(o.store)
}

// String returns s as style text which Parse accepts.
func (s *Style) String() string {
	decls := make([]styletext.Declaration, 0, s.Len())
	for n, v := range s.store.All() {
		decls = append(decls, styletext.Declaration{Name: n.String(), Value: Text(v)})
	}
	return styletext.Format(decls)
}

// Text returns the style text form of a property value.
func Text(v any) string {
	switch x := v.(type) {
	case string:
		return value.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		res := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.ContainsAny(res, ".NI") {
			res += ".0"
		}
		return res
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// Parse parses style text, looking names up in reg.
func Parse(reg *property.Registry, text string) (*Style, error) {
	decls, err := styletext.Parse(text)
	if err != nil {
		return nil, err
	}
	entries := make([]property.Entry, 0, len(decls))
	for _, d := range decls {
		n, err := reg.Lookup(d.Name)
		if err != nil {
			return nil, fmt.Errorf("%d:%d: %w", d.Line, d.Column, err)
		}
		v, err := n.Handler().Parse(d.Value)
		if err != nil {
			return nil, fmt.Errorf("%d:%d: %s: %w", d.Line, d.Column, n, err)
		}
		entries = append(entries, property.Entry{Name: n, Value: v})
	}
	return New(entries...)
}

// ToIR encodes s as an object keyed by property name.
func (s *Style) ToIR() (*ir.Node, error) {
	return s.store.ToIR()
}

// FromIR decodes a style object, looking names up in reg.
func FromIR(reg *property.Registry, node *ir.Node) (*Style, error) {
	st, err := property.StoreFromIR(reg, node)
	if err != nil {
		return nil, err
	}
	return FromStore(st), nil
}
