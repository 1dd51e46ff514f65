package component

import (
	"slices"
	"sync"

	"github.com/matzehuels/architectus/pkg/errors"
)

// Registry maps names to components. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Component
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]Component)}
}

// Default returns a registry holding the built-in archetypes.
func Default() *Registry {
	r := NewRegistry()
	for _, c := range Builtins() {
		r.MustRegister(c)
	}
	return r
}

// Builtins lists the built-in archetypes.
func Builtins() []Component {
	return []Component{Tiny{}, TwoRoom{}, Family{}}
}

// Register adds c under c.Name(). Names must be lowercase kebab-case and
// unique within the registry.
func (r *Registry) Register(c Component) error {
	name := c.Name()
	if err := errors.ValidateComponentName(name); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.components[name]; dup {
		return errors.New(errors.ErrCodeInvalidComponent, "component %q already registered", name)
	}
	r.components[name] = c
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(c Component) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Get returns the component registered under name.
func (r *Registry) Get(name string) (Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeComponentNotFound, "no component named %q", name)
	}
	return c, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for n := range r.components {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Components returns the registered components sorted by name.
func (r *Registry) Components() []Component {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Component, 0, len(names))
	for _, n := range names {
		out = append(out, r.components[n])
	}
	return out
}

// Fingerprint lists the registered names in sorted order, each followed by
// "@hash" when the component implements [Hasher]. Two registries with the
// same fingerprint expand the same seed identically.
func (r *Registry) Fingerprint() []string {
	comps := r.Components()
	out := make([]string, len(comps))
	for i, c := range comps {
		out[i] = c.Name()
		if h := HashOf(c); h != "" {
			out[i] += "@" + h
		}
	}
	return out
}
