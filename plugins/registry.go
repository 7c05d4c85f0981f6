// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package plugins

import (
	"sort"
	"sync"

	"github.com/gogpu/timeline"
	"github.com/samber/lo"
)

// Factory creates a new, unregistered plugin instance.
// Each call must return a fresh plugin so charts never share state.
type Factory func() *timeline.Plugin

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry maps plugin names to factories.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Factory
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Factory),
	}
}

// Register adds a factory to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(name string, factory Factory) {
	globalRegistry.Register(name, factory)
}

// Unregister removes a factory from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered plugin names in lexical order.
func List() []string {
	return globalRegistry.List()
}

// New builds the named plugin using the global registry.
func New(name string) (*timeline.Plugin, error) {
	return globalRegistry.New(name)
}

// NewAll builds the named plugins, in order, using the global registry.
func NewAll(names ...string) ([]*timeline.Plugin, error) {
	return globalRegistry.NewAll(names...)
}

// Register adds a factory to this registry.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]Factory)
	}
	r.entries[name] = factory
}

// Unregister removes a factory from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered names in lexical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.entries)
	sort.Strings(names)
	return names
}

// New builds the named plugin. The plugin's Name is set to the registry
// name when the factory leaves it empty.
func (r *Registry) New(name string) (*timeline.Plugin, error) {
	r.mu.RLock()
	factory, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	p := factory()
	if p != nil && p.Name == "" {
		p.Name = name
	}
	timeline.Logger().Debug("plugins: created", "name", name)
	return p, nil
}

// NewAll builds the named plugins in order. It stops at the first
// unknown name.
func (r *Registry) NewAll(names ...string) ([]*timeline.Plugin, error) {
	out := make([]*timeline.Plugin, 0, len(names))
	for _, name := range names {
		p, err := r.New(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// NotFoundError indicates a plugin name is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "plugins: plugin not found: " + e.Name
}
