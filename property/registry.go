package property

import (
	"fmt"
	"slices"
	"sync"

	"github.com/signadot/richtext/debug"
	"github.com/signadot/richtext/errs"
)

// Registry catalogs property names. It starts with the well-known names and
// only grows. A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	names  []*Name
	byName map[string]*Name
}

// NewRegistry returns a registry holding the well-known names.
func NewRegistry() *Registry {
	r := &Registry{
		names:  slices.Clone(wellKnown),
		byName: make(map[string]*Name, len(wellKnown)),
	}
	for _, n := range wellKnown {
		if _, dup := r.byName[n.name]; dup {
			panic("duplicate well-known property " + n.name)
		}
		r.byName[n.name] = n
	}
	return r
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns the process wide registry.
func Default() *Registry {
	return defaultRegistry()
}

// Register adds name with handler h at the next index.
func (r *Registry) Register(name string, h *Handler) (*Name, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("%w: nil handler for %s", errs.ErrInvalidArgument, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, present := r.byName[name]; present {
		return nil, fmt.Errorf("%w: %s", errs.ErrDuplicateRegistration, name)
	}
	n := r.add(name, h)
	if debug.Registry() {
		debug.Logf("registered %s (%s) at %d", name, h.Type, n.index)
	}
	return n, nil
}

// Lookup returns the name registered as name, interning it with the
// untyped handler if there is none.
func (r *Registry) Lookup(name string) (*Name, error) {
	if n, ok := r.Get(name); ok {
		return n, nil
	}
	if err := CheckName(name); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.byName[name]; ok {
		return n, nil
	}
	n := r.add(name, untyped)
	if debug.Registry() {
		debug.Logf("interned untyped %s at %d", name, n.index)
	}
	return n, nil
}

func (r *Registry) add(name string, h *Handler) *Name {
	n := &Name{name: name, index: len(r.names), handler: h, reg: r}
	r.names = append(r.names, n)
	r.byName[name] = n
	return n
}

// adopt returns the name in r with the name of n, adding it with the
// handler of n if r has none.
func (r *Registry) adopt(n *Name) *Name {
	if m, ok := r.Get(n.name); ok {
		return m
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.byName[n.name]; ok {
		return m
	}
	m := r.add(n.name, n.handler)
	if debug.Registry() {
		debug.Logf("adopted %s (%s) at %d", m.name, m.handler.Type, m.index)
	}
	return m
}

// Get returns the name registered as name without interning.
func (r *Registry) Get(name string) (*Name, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.byName[name]
	return n, ok
}

func (r *Registry) ByIndex(i int) (*Name, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.names) {
		return nil, false
	}
	return r.names[i], true
}

// Names returns the registered names in index order.
func (r *Registry) Names() []*Name {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}
