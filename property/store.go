package property

import (
	"fmt"
	"iter"

	"github.com/signadot/richtext/debug"
	"github.com/signadot/richtext/errs"
	"github.com/signadot/richtext/ir"
)

// Entry pairs a name with a value.
type Entry struct {
	Name  *Name
	Value any
}

// Store is an immutable mapping from names to validated values, stored
// densely by name index. Stores should hold names from one Registry; only
// Merge reconciles names from different registries.
type Store struct {
	slots []Entry
	n     int
}

// EmptyStore holds no properties. Every operation which leaves a store
// empty returns it.
var EmptyStore = &Store{}

// FromEntries validates entries and builds a store. Later entries override
// earlier ones, and shorthand names set their four edges.
func FromEntries(entries []Entry) (*Store, error) {
	type slot struct {
		n *Name
		v any
	}
	work := make([]slot, 0, len(entries))
	high := -1
	for _, e := range entries {
		if e.Name == nil {
			return nil, fmt.Errorf("%w: nil property name", errs.ErrInvalidArgument)
		}
		v, err := e.Name.handler.Validate(e.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		for _, n := range expand(e.Name) {
			work = append(work, slot{n, v})
			high = max(high, n.index)
		}
	}
	if len(work) == 0 {
		return EmptyStore, nil
	}
	res := &Store{slots: make([]Entry, high+1)}
	for _, w := range work {
		if res.slots[w.n.index].Name == nil {
			res.n++
		}
		res.slots[w.n.index] = Entry{Name: w.n, Value: w.v}
	}
	return res, nil
}

func expand(n *Name) []*Name {
	if n.edges == nil {
		return []*Name{n}
	}
	return n.edges[:]
}

func (s *Store) get(n *Name) (any, bool) {
	if n.index >= len(s.slots) {
		return nil, false
	}
	e := s.slots[n.index]
	if e.Name == nil || !e.Name.sameAs(n) {
		return nil, false
	}
	return e.Value, true
}

// Get returns the value of n. For a shorthand, it returns the value shared
// by all four edges, if they are set and equal.
func (s *Store) Get(n *Name) (any, bool) {
	if n.edges == nil {
		return s.get(n)
	}
	var res any
	for i, edge := range n.edges {
		v, ok := s.get(edge)
		if !ok || (i > 0 && v != res) {
			return nil, false
		}
		res = v
	}
	return res, true
}

func (s *Store) Has(n *Name) bool {
	_, ok := s.Get(n)
	return ok
}

// Len returns the number of properties set. Shorthands count as their
// edges.
func (s *Store) Len() int { return s.n }

// Entries returns the properties in ascending index order.
func (s *Store) Entries() []Entry {
	res := make([]Entry, 0, s.n)
	for _, e := range s.slots {
		if e.Name != nil {
			res = append(res, e)
		}
	}
	return res
}

// All iterates over the properties in ascending index order.
func (s *Store) All() iter.Seq2[*Name, any] {
	return func(yield func(*Name, any) bool) {
		for _, e := range s.slots {
			if e.Name == nil {
				continue
			}
			if !yield(e.Name, e.Value) {
				return
			}
		}
	}
}

func (s *Store) Equal(o *Store) bool {
	if s == o {
		return true
	}
	if s.n != o.n {
		return false
	}
	for n, v := range s.All() {
		ov, ok := o.get(n)
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// With returns a store with n set to v, or s if n already has value v.
func (s *Store) With(n *Name, v any) (*Store, error) {
	v, err := n.handler.Validate(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n, err)
	}
	if n.edges != nil {
		return s.withValues(*n.edges, [4]any{v, v, v, v}), nil
	}
	if cur, ok := s.get(n); ok && cur == v {
		return s, nil
	}
	res := s.grow(n.index)
	if res.slots[n.index].Name == nil {
		res.n++
	}
	res.slots[n.index] = Entry{Name: n, Value: v}
	return res, nil
}

// WithEdges sets four names, in top, left, right, bottom order, to v with
// one allocation. It returns s if all four already have value v.
func (s *Store) WithEdges(edges [4]*Name, v any) (*Store, error) {
	var vals [4]any
	for i, n := range edges {
		if n == nil {
			return nil, fmt.Errorf("%w: nil property name", errs.ErrInvalidArgument)
		}
		if n.edges != nil {
			return nil, fmt.Errorf("%w: %s is a shorthand", errs.ErrInvalidArgument, n)
		}
		vv, err := n.handler.Validate(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}
		vals[i] = vv
	}
	return s.withValues(edges, vals), nil
}

func (s *Store) withValues(edges [4]*Name, vals [4]any) *Store {
	high := -1
	same := true
	for i, n := range edges {
		cur, ok := s.get(n)
		if !ok || cur != vals[i] {
			same = false
		}
		high = max(high, n.index)
	}
	if same {
		return s
	}
	res := s.grow(high)
	for i, n := range edges {
		if res.slots[n.index].Name == nil {
			res.n++
		}
		res.slots[n.index] = Entry{Name: n, Value: vals[i]}
	}
	return res
}

// grow copies s into a store with room for index i.
func (s *Store) grow(i int) *Store {
	res := &Store{slots: make([]Entry, max(len(s.slots), i+1)), n: s.n}
	copy(res.slots, s.slots)
	return res
}

// Without returns a store without n, or s if n is not set. Removing All
// or the last property returns EmptyStore.
func (s *Store) Without(n *Name) *Store {
	if n.sameAs(All) {
		return EmptyStore
	}
	var present []*Name
	for _, nn := range expand(n) {
		if _, ok := s.get(nn); ok {
			present = append(present, nn)
		}
	}
	if len(present) == 0 {
		return s
	}
	if len(present) == s.n {
		return EmptyStore
	}
	res := &Store{slots: make([]Entry, len(s.slots)), n: s.n - len(present)}
	copy(res.slots, s.slots)
	for _, nn := range present {
		res.slots[nn.index] = Entry{}
	}
	high := len(res.slots) - 1
	for res.slots[high].Name == nil {
		high--
	}
	res.slots = res.slots[:high+1]
	return res
}

// Merge returns a store with the properties of s, plus those of o which s
// does not set. The receiver wins: s.Merge(o) is s when s sets everything
// o sets, and is o when s is empty. Registered names of o from another
// registry are first adopted into the registry of s, so no slot collides.
func (s *Store) Merge(o *Store) *Store {
	if o.n == 0 || s == o {
		return s
	}
	if s.n == 0 {
		return o
	}
	owner := s.registry()
	var res *Store
	for _, e := range o.slots {
		if e.Name == nil {
			continue
		}
		if owner != nil && e.Name.reg != nil && e.Name.reg != owner {
			n := owner.adopt(e.Name)
			v, err := n.handler.Validate(e.Value)
			if err != nil {
				if debug.Registry() {
					debug.Logf("merge: dropped %s: %v", n, err)
				}
				continue
			}
			e = Entry{Name: n, Value: v}
		}
		cur := s
		if res != nil {
			cur = res
		}
		i := e.Name.index
		if i < len(cur.slots) && cur.slots[i].Name != nil {
			continue
		}
		if res == nil {
			res = s.grow(i)
		} else if i >= len(res.slots) {
			res = res.grow(i)
		}
		res.slots[i] = e
		res.n++
	}
	if res == nil {
		return s
	}
	return res
}

// registry returns the registry of the first registered name in s, or nil
// if s holds only well-known names.
func (s *Store) registry() *Registry {
	for _, e := range s.slots {
		if e.Name != nil && e.Name.reg != nil {
			return e.Name.reg
		}
	}
	return nil
}

// ToIR encodes s as an object keyed by property name in index order.
func (s *Store) ToIR() (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, s.n)
	for n, v := range s.All() {
		node, err := n.handler.ToIR(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(n.name), Val: node})
	}
	return ir.FromKeyVals(kvs), nil
}

// StoreFromIR decodes an object of properties, looking names up in reg.
func StoreFromIR(reg *Registry, node *ir.Node) (*Store, error) {
	if node == nil || node.Type == ir.NullType {
		return EmptyStore, nil
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: styles must be an object, got %s at %s", errs.ErrValidation, node.Type, node.Path())
	}
	entries := make([]Entry, 0, len(node.Fields))
	for i, field := range node.Fields {
		n, err := reg.Lookup(field.String)
		if err != nil {
			return nil, err
		}
		v, err := n.handler.FromIR(node.Values[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}
		entries = append(entries, Entry{Name: n, Value: v})
	}
	return FromEntries(entries)
}
